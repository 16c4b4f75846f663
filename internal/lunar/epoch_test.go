package lunar

import (
	"math"
	"testing"
	"time"
)

func TestJ2000DayNearEpoch(t *testing.T) {
	// At the J2000.0 reference instant itself (2000-01-01 12:00) the day
	// count reduces to the small rotation-lag correction.
	got := j2000Day(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), 0)
	if math.Abs(got) > 0.01 {
		t.Errorf("j2000Day(J2000.0) = %v, want ~0", got)
	}
}

func TestJ2000DayMonotonic(t *testing.T) {
	// Includes the February/March seam (month 13/14 folding) and a year
	// boundary.
	times := []time.Time{
		time.Date(1999, 11, 14, 0, 0, 0, 0, time.UTC),
		time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2000, 2, 28, 12, 0, 0, 0, time.UTC),
		time.Date(2000, 2, 29, 12, 0, 0, 0, time.UTC),
		time.Date(2000, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2005, 6, 15, 6, 30, 0, 0, time.UTC),
		time.Date(2024, 3, 20, 3, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 20, 3, 0, 1, 0, time.UTC),
	}

	prev := math.Inf(-1)
	for _, tm := range times {
		d := j2000Day(tm, 9)
		if d <= prev {
			t.Fatalf("j2000Day not increasing at %v: %v <= %v", tm, d, prev)
		}
		prev = d
	}
}

func TestJ2000DayZoneOffsetShift(t *testing.T) {
	// The same wall clock read at UTC+9 is 9/24 day earlier than at UTC.
	wall := time.Date(2010, 7, 4, 18, 0, 0, 0, time.UTC)
	utc := j2000Day(wall, 0)
	jst := j2000Day(wall, 9)
	if math.Abs((utc-jst)-9.0/24) > 1e-9 {
		t.Errorf("offset shift = %v days, want %v", utc-jst, 9.0/24)
	}
}

func TestJ2000YearScale(t *testing.T) {
	tm := time.Date(2012, 8, 1, 0, 0, 0, 0, time.UTC)
	day := j2000Day(tm, 9)
	year := j2000Year(tm, 9)
	if math.Abs(year*365.25-day) > 1e-9 {
		t.Errorf("j2000Year*365.25 = %v, want %v", year*365.25, day)
	}
}

func TestSiderealTimeOffsetTerm(t *testing.T) {
	// The civil-zone correction enters as -15° per offset hour on top of
	// the epoch shift.
	midnight := time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)
	utc := siderealTime(midnight, 0)
	jst := siderealTime(midnight, 9)
	if utc == jst {
		t.Error("sidereal time should depend on the zone offset")
	}
}
