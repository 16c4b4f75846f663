package lunar

import (
	"math"
	"time"
)

// Mode selects which horizon crossing the rise/set solver converges to.
// The two crossings are the two roots of the hour-angle equation; Rise is
// the negative branch, Set the positive one.
type Mode int

const (
	Rise Mode = iota
	Set
)

func (m Mode) String() string {
	switch m {
	case Rise:
		return "rise"
	case Set:
		return "set"
	default:
		return "unknown"
	}
}

// RiseSet returns the day fraction (0 = local civil midnight, 1 = next
// midnight) at which the Moon crosses the observer's horizon on the given
// civil date. Only the calendar date of the argument is used; the caller
// converts the fraction into an absolute timestamp.
//
// The target altitude is -R + parallax, which folds the Moon's angular
// radius, mean refraction, and the observer's displacement from the
// geocenter. Obliquity and sidereal time are taken once, at local
// midnight; the Moon's position and parallax are re-evaluated at every
// trial instant.
//
// Returns a CircumpolarError when the horizon equation has no real root
// (the Moon stays above or below the horizon all day) and
// ErrNoConvergence when the iteration budget runs out.
func (c Config) RiseSet(date time.Time, obs Observer, mode Mode) (float64, error) {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	base := midnight.Unix()

	eps := obliquity(j2000Year(midnight, c.ZoneOffsetHours))
	sidereal := siderealTime(midnight, c.ZoneOffsetHours)

	latRad := degToRad(obs.LatDeg)

	d := 0.5
	deltaD := 0.0

	for i := 0; i < c.maxIterations(); i++ {
		d += deltaD

		wt := time.Unix(base+int64(86400*d), 0).UTC()
		ty := j2000Year(wt, c.ZoneOffsetHours)

		parallax := moonParallax(ty)
		eq := eclipticToEquatorial(moonEcliptic(ty), eps)
		decRad := degToRad(eq.DecDeg)

		// Altitude the Moon's center must reach at the crossing.
		k := -c.horizonDepression() + parallax

		denom := math.Cos(decRad) * math.Cos(latRad)
		if denom == 0 {
			// Observer at a pole: the Moon's altitude equals its
			// declination (sign-flipped in the south) all day long.
			alt := eq.DecDeg
			if obs.LatDeg < 0 {
				alt = -alt
			}
			return 0, &CircumpolarError{AlwaysAbove: alt > k}
		}

		cosTk := (math.Sin(degToRad(k)) - math.Sin(decRad)*math.Sin(latRad)) / denom
		if cosTk > 1 {
			return 0, &CircumpolarError{AlwaysAbove: false}
		}
		if cosTk < -1 {
			return 0, &CircumpolarError{AlwaysAbove: true}
		}

		tk := radToDeg(math.Acos(cosTk))
		if mode == Rise {
			tk = -tk
		}

		// Hour angle of the Moon at the trial instant.
		ha := sidereal + earthRotationRateDeg*d + obs.LonDeg - eq.RAdeg

		deltaD = norm180(tk-ha) / horizonRateDeg
		if math.Abs(deltaD) < riseSetThresholdDay {
			return d + deltaD, nil
		}
	}

	return 0, ErrNoConvergence
}
