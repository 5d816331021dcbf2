package helper

import (
	"testing"
	"time"
)

func TestInclusiveDayCount(t *testing.T) {
	for _, tc := range []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"same day", "2024-01-01", "2024-01-01", 1},
		{"five days", "2024-01-01", "2024-01-05", 5},
		{"month boundary", "2024-01-31", "2024-02-02", 3},
		{"leap day", "2024-02-28", "2024-03-01", 3},
		{"year boundary", "2023-12-30", "2024-01-02", 4},
		{"end before start", "2024-01-05", "2024-01-01", 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			start, err := ParseDate(tc.start)
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tc.start, err)
			}
			end, err := ParseDate(tc.end)
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tc.end, err)
			}
			if got := InclusiveDayCount(start, end); got != tc.want {
				t.Errorf("InclusiveDayCount(%s, %s) = %d, want %d", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestInclusiveDayCountIgnoresTimeZone(t *testing.T) {
	// Tanggal yang sama di zona berbeda tidak boleh menggeser jumlah hari.
	jkt := time.FixedZone("WIB", 7*3600)
	start := time.Date(2024, 3, 1, 23, 30, 0, 0, jkt)
	end := time.Date(2024, 3, 3, 0, 15, 0, 0, jkt)
	// 2024-03-01 23:30 WIB adalah 2024-03-01 16:30 UTC; midnight UTC tetap 03-01.
	if got := InclusiveDayCount(start, end); got != 2 {
		t.Errorf("InclusiveDayCount across zones = %d, want 2", got)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "01-02-2024", "2024/01/02", "yesterday"} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) expected error", s)
		}
	}
}
