package lunar

import (
	"math"
	"time"
)

// Age returns the Moon's synodic age in days for the given civil date:
// the time elapsed since the most recent new Moon, measured back from
// local noon. Only the calendar date of the argument is used.
//
// The solver is a fixed-point iteration: at each trial instant it
// evaluates the Sun-Moon elongation and steps backward by
// elongation / 12.1908 days until the elongation residual drops below
// 0.05°. Returns ErrNoConvergence if the iteration budget runs out.
func (c Config) Age(date time.Time) (float64, error) {
	noon := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, time.UTC)
	t0 := float64(noon.Unix())
	tn := t0

	for i := 0; i < c.maxIterations(); i++ {
		wt := time.Unix(int64(tn), 0).UTC()
		ty := j2000Year(wt, c.ZoneOffsetHours)

		elongation := moonLongitude(ty) - sunLongitude(ty)

		// Only the very first step folds the elongation into [0, 360):
		// the raw difference can straddle the 0°/360° seam and a naive
		// step would jump a whole synodic month. Later iterations sit
		// close to the root, where folding would flip the sign of small
		// negative residuals and push the iteration away again.
		step := elongation
		if tn == t0 {
			step = norm360(elongation)
		}

		tn -= step / newMoonRateDeg * 86400

		if math.Abs(elongation) < ageThresholdDeg {
			return (t0 - tn) / 86400, nil
		}
	}

	return 0, ErrNoConvergence
}
