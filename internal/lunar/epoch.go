package lunar

import (
	"math"
	"time"
)

// j2000Day returns the day count from the J2000.0 epoch (2000-01-01 noon
// dynamical time) for a civil wall-clock time at the given fixed zone
// offset. The time.Time fields are read as a zone-naive wall clock; its
// location is ignored.
//
// January and February count as months 13 and 14 of the previous year, so
// the year boundary of the count lands in March (Julian-day convention)
// and the leap-day term stays a simple floor(year/4).
func j2000Day(t time.Time, zoneOffsetHours float64) float64 {
	year := t.Year()
	month := float64(t.Month())
	day := float64(t.Day())

	y := float64(year - 2000)
	if t.Month() <= time.February {
		month += 12
		y--
	}

	dayFrac := float64(t.Hour()*3600+t.Minute()*60+t.Second()) / 86400

	// Empirical Earth-rotation lag (accumulated leap-second drift). The
	// linear fit is anchored around 1990 and slowly diverges from the
	// published ΔT outside roughly 1990-2020; that drift is part of the
	// model's accuracy ceiling.
	rotationLag := (57.0 + 0.8*(float64(year)-1990.0)) / 86400

	return 365*y + 30*month + day - 33.5 - zoneOffsetHours/24 +
		math.Floor(3*(month+1)/5) +
		math.Floor(y/4) +
		dayFrac + rotationLag
}

// j2000Year returns the J2000.0 day count scaled by the series' year-like
// unit of 365.25 days. This is the sole independent variable of every
// trigonometric series in this package.
func j2000Year(t time.Time, zoneOffsetHours float64) float64 {
	return j2000Day(t, zoneOffsetHours) / 365.25
}

// siderealTime returns the apparent sidereal time in degrees at the given
// reference instant, already shifted to the configured civil zone. The
// rise/set solver calls it with local civil midnight and the result is
// used raw (unfolded) inside the hour-angle balance.
func siderealTime(t time.Time, zoneOffsetHours float64) float64 {
	jy := j2000Year(t, zoneOffsetHours)
	return 100.4606 + 360.007700536*jy + 0.00000003879*jy*jy - 15*zoneOffsetHours
}
