// Package lunar computes the Moon's synodic age and local rise and set
// times from a reduced trigonometric ephemeris. Accuracy is on the order
// of 0.1-1 degree, which keeps rise/set times within a few minutes —
// sufficient for display, not for astrometry.
//
// All entry points are pure functions of their inputs and are safe to
// call concurrently.
package lunar

import (
	"errors"
	"fmt"
	"time"
)

// Solver constants. Rates are empirical correction slopes for the
// fixed-point iterations, in degrees per day.
const (
	// newMoonRateDeg is the mean rate at which the Sun-Moon elongation grows.
	newMoonRateDeg = 12.1908

	// horizonRateDeg is the rate at which the hour-angle balance changes.
	horizonRateDeg = 347.8

	// earthRotationRateDeg is the sidereal rotation of the Earth per day.
	earthRotationRateDeg = 360.9856474

	// ageThresholdDeg terminates the age solver (elongation residual).
	ageThresholdDeg = 0.05

	// riseSetThresholdDay terminates the rise/set solver (~0.4 s).
	riseSetThresholdDay = 5e-6

	// defaultMaxIterations bounds both solvers when Config leaves
	// MaxIterations at zero.
	defaultMaxIterations = 50
)

// ErrNoConvergence is returned when a solver exhausts its iteration
// budget without meeting its termination threshold.
var ErrNoConvergence = errors.New("solver exceeded iteration budget without converging")

// Observer is a ground-based observer location.
type Observer struct {
	LatDeg float64 // Latitude in degrees (north positive)
	LonDeg float64 // Longitude in degrees (east positive)
	Name   string  // Optional name for the site
}

// Config carries the deployment-dependent parameters of the engine.
// The zero value is usable: it means UTC civil time, the standard horizon
// depression, and the default iteration budget.
type Config struct {
	// ZoneOffsetHours is the fixed civil time zone offset, in hours east
	// of UTC. Input dates and output timestamps are interpreted at this
	// offset.
	ZoneOffsetHours float64

	// HorizonDepressionDeg is the altitude below the geometric horizon at
	// which the Moon's center is considered to rise or set. It folds the
	// Moon's angular radius and mean atmospheric refraction together.
	HorizonDepressionDeg float64

	// MaxIterations bounds each solver run. Zero selects the default.
	MaxIterations int
}

// DefaultConfig returns the standard deployment configuration (JST).
func DefaultConfig() Config {
	return Config{
		ZoneOffsetHours:      9.0,
		HorizonDepressionDeg: 0.585556,
		MaxIterations:        defaultMaxIterations,
	}
}

// Location returns the fixed time zone the engine computes in.
func (c Config) Location() *time.Location {
	sec := int(c.ZoneOffsetHours * 3600)
	if sec == 0 {
		return time.UTC
	}
	return time.FixedZone(fmt.Sprintf("UTC%+g", c.ZoneOffsetHours), sec)
}

func (c Config) maxIterations() int {
	if c.MaxIterations > 0 {
		return c.MaxIterations
	}
	return defaultMaxIterations
}

func (c Config) horizonDepression() float64 {
	if c.HorizonDepressionDeg != 0 {
		return c.HorizonDepressionDeg
	}
	return 0.585556
}

// CircumpolarError reports that the horizon-crossing equation has no real
// solution for the requested date and latitude: the Moon stays entirely
// above or entirely below the horizon for the whole civil day.
type CircumpolarError struct {
	AlwaysAbove bool
}

func (e *CircumpolarError) Error() string {
	if e.AlwaysAbove {
		return "moon stays above the horizon all day"
	}
	return "moon stays below the horizon all day"
}

// AsCircumpolar unwraps err as a CircumpolarError if it is one.
func AsCircumpolar(err error) (*CircumpolarError, bool) {
	var ce *CircumpolarError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
