package helper

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate membaca tanggal format YYYY-MM-DD sebagai UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("tanggal tidak valid (harus YYYY-MM-DD): %w", err)
	}
	return t, nil
}

// FormatDate menulis balik tanggal ke format YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// InclusiveDayCount menghitung jumlah hari antara dua tanggal, kedua ujung
// ikut dihitung: cuti satu hari (start == end) = 1 hari. Kedua tanggal
// dinormalisasi ke UTC midnight dulu supaya zona waktu tidak menggeser hasil.
func InclusiveDayCount(start, end time.Time) int {
	s := utcMidnight(start)
	e := utcMidnight(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

func utcMidnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
