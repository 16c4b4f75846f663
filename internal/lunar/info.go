package lunar

import (
	"fmt"
	"time"
)

// Info is the full per-day moon report for one observer.
type Info struct {
	Date     time.Time // Civil date at the configured zone (midnight)
	Observer Observer

	AgeDays      float64 // Days since the most recent new Moon
	Phase        string  // Conventional phase name
	Illumination float64 // Illuminated fraction of the disc (0-1)

	// Rise and Set are absolute timestamps at the configured zone. They
	// are zero when the matching Always flag is set.
	Rise time.Time
	Set  time.Time

	AlwaysUp   bool // Moon never sets on this date at this latitude
	AlwaysDown bool // Moon never rises
}

// Info computes age, phase, and rise/set times for one civil date in a
// single call. A circumpolar Moon is an expected outcome and is reported
// through the AlwaysUp/AlwaysDown flags; solver non-convergence aborts
// the report with an error wrapping ErrNoConvergence.
func (c Config) Info(date time.Time, obs Observer) (Info, error) {
	age, err := c.Age(date)
	if err != nil {
		return Info{}, fmt.Errorf("moon age for %s: %w", date.Format("2006-01-02"), err)
	}

	loc := c.Location()
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

	info := Info{
		Date:         midnight,
		Observer:     obs,
		AgeDays:      age,
		Phase:        PhaseName(age),
		Illumination: Illumination(age),
	}

	for _, mode := range []Mode{Rise, Set} {
		d, err := c.RiseSet(date, obs, mode)
		if ce, ok := AsCircumpolar(err); ok {
			info.AlwaysUp = info.AlwaysUp || ce.AlwaysAbove
			info.AlwaysDown = info.AlwaysDown || !ce.AlwaysAbove
			continue
		}
		if err != nil {
			return Info{}, fmt.Errorf("moon %s for %s: %w", mode, date.Format("2006-01-02"), err)
		}

		at := midnight.Add(dayFraction(d))
		if mode == Rise {
			info.Rise = at
		} else {
			info.Set = at
		}
	}

	return info, nil
}

// dayFraction converts a fraction of a civil day into a duration.
func dayFraction(d float64) time.Duration {
	return time.Duration(d * 86400 * float64(time.Second))
}
