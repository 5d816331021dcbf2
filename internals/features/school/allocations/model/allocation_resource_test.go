package model

import "testing"

func TestKindDispatch(t *testing.T) {
	for _, k := range AllKinds() {
		if !k.Valid() {
			t.Errorf("kind %s should be valid", k)
		}
		m, err := k.NewModel()
		if err != nil {
			t.Fatalf("NewModel(%s): %v", k, err)
		}
		if m.Kind() != k {
			t.Errorf("NewModel(%s).Kind() = %s", k, m.Kind())
		}
		if k.Table() == "" || k.IDColumn() == "" || k.AvailColumn() == "" || k.MembersColumn() == "" {
			t.Errorf("kind %s has empty dispatch columns", k)
		}
	}

	if ResourceKind("library").Valid() {
		t.Error("unknown kind should not validate")
	}
	if _, err := ResourceKind("library").NewModel(); err == nil {
		t.Error("NewModel for unknown kind should error")
	}
}

func TestCheckInvariant(t *testing.T) {
	bus := &BusModel{BusMaxSeats: 2, BusAvailableSeats: 2}
	if err := bus.CheckInvariant(); err != nil {
		t.Errorf("empty bus should satisfy invariant: %v", err)
	}

	bus.BusAvailableSeats = 1
	bus.BusMembers = []string{"a"}
	if err := bus.CheckInvariant(); err != nil {
		t.Errorf("one grant: %v", err)
	}

	bus.BusAvailableSeats = 0
	bus.BusMembers = []string{"a", "b"}
	if err := bus.CheckInvariant(); err != nil {
		t.Errorf("full bus: %v", err)
	}

	// available + |members| != capacity
	bus.BusMembers = []string{"a"}
	if err := bus.CheckInvariant(); err == nil {
		t.Error("mismatched members must violate invariant")
	}

	// available negatif
	bus.BusAvailableSeats = -1
	bus.BusMembers = []string{"a", "b", "c"}
	if err := bus.CheckInvariant(); err == nil {
		t.Error("negative available must violate invariant")
	}

	// available > capacity
	room := &HostelRoomModel{HostelRoomMaxBeds: 1, HostelRoomAvailableBeds: 2}
	if err := room.CheckInvariant(); err == nil {
		t.Error("available above capacity must violate invariant")
	}
}
