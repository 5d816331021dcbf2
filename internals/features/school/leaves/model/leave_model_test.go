package model

import "testing"

func TestBalanceColumn(t *testing.T) {
	for _, tc := range []struct {
		kind OwnerKind
		typ  LeaveType
		want string
	}{
		{OwnerTeacher, LeaveCasual, "teacher_casual_leave"},
		{OwnerTeacher, LeaveEarned, "teacher_earned_leave"},
		{OwnerTeacher, LeaveSick, "teacher_sick_leave"},
		{OwnerAdmin, LeaveCasual, "admin_casual_leave"},
		{OwnerAdmin, LeaveEarned, "admin_earned_leave"},
		{OwnerAdmin, LeaveSick, "admin_sick_leave"},
	} {
		got, err := BalanceColumn(tc.kind, tc.typ)
		if err != nil {
			t.Errorf("BalanceColumn(%s, %s): %v", tc.kind, tc.typ, err)
			continue
		}
		if got != tc.want {
			t.Errorf("BalanceColumn(%s, %s) = %q, want %q", tc.kind, tc.typ, got, tc.want)
		}
	}
}

func TestBalanceColumnRejectsUnknown(t *testing.T) {
	if _, err := BalanceColumn("student", LeaveCasual); err == nil {
		t.Error("unknown owner kind should error")
	}
	if _, err := BalanceColumn(OwnerTeacher, "maternity"); err == nil {
		t.Error("unknown leave type should error")
	}
}

func TestCanTransitionTo(t *testing.T) {
	for _, tc := range []struct {
		name      string
		status    string
		reversed  bool
		newStatus string
		wantErr   bool
	}{
		{"approve pending", LeaveStatusPending, false, LeaveStatusApproved, false},
		{"approve approved", LeaveStatusApproved, false, LeaveStatusApproved, true},
		{"approve rejected", LeaveStatusRejected, true, LeaveStatusApproved, true},
		{"reject pending", LeaveStatusPending, false, LeaveStatusRejected, false},
		{"reject approved", LeaveStatusApproved, false, LeaveStatusRejected, false},
		{"double reject", LeaveStatusRejected, true, LeaveStatusRejected, true},
		{"reject after reversal", LeaveStatusPending, true, LeaveStatusRejected, true},
		{"unknown status", LeaveStatusPending, false, "cancelled", true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			l := &LeaveModel{LeaveStatus: tc.status, LeaveReversed: tc.reversed}
			err := l.CanTransitionTo(tc.newStatus)
			if (err != nil) != tc.wantErr {
				t.Errorf("CanTransitionTo(%q) err=%v, wantErr=%v", tc.newStatus, err, tc.wantErr)
			}
		})
	}
}

func TestNeedsReversal(t *testing.T) {
	l := &LeaveModel{LeaveReversed: false}
	if !l.NeedsReversal() {
		t.Error("fresh leave should need reversal")
	}
	l.LeaveReversed = true
	if l.NeedsReversal() {
		t.Error("reversed leave must never credit twice")
	}
}
