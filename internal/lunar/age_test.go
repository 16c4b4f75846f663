package lunar

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestAgeDayAfterNewMoon(t *testing.T) {
	// New Moon: 2000-01-06 18:14 UTC, i.e. 2000-01-07 03:14 JST. Noon JST
	// on the 7th is about 0.36 days later.
	cfg := DefaultConfig()

	age, err := cfg.Age(time.Date(2000, 1, 7, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Age() error: %v", err)
	}
	if age < 0 || age >= 1.0 {
		t.Errorf("age = %v days, want [0, 1) on the day after new Moon", age)
	}
}

func TestAgeFirstIterationSeam(t *testing.T) {
	// Two days before a new Moon the raw elongation sits near 340°. The
	// first-iteration fold must send the search backward to the previous
	// new Moon (age ~28) instead of forward to the upcoming one, which
	// would produce a negative age.
	cfg := DefaultConfig()

	age, err := cfg.Age(time.Date(2000, 1, 5, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Age() error: %v", err)
	}
	if age < 27 || age >= 29.6 {
		t.Errorf("age = %v days, want [27, 29.6) just before new Moon", age)
	}
}

func TestAgeAlwaysInSynodicRange(t *testing.T) {
	cfg := DefaultConfig()

	for month := time.January; month <= time.December; month++ {
		for _, day := range []int{3, 11, 19, 27} {
			date := time.Date(2024, month, day, 0, 0, 0, 0, time.UTC)
			age, err := cfg.Age(date)
			if err != nil {
				t.Fatalf("Age(%v) error: %v", date, err)
			}
			if age < 0 || age >= 29.6 {
				t.Errorf("Age(%v) = %v, outside [0, 29.6)", date, age)
			}
		}
	}
}

func TestAgeDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	date := time.Date(2019, 10, 3, 0, 0, 0, 0, time.UTC)

	first, err := cfg.Age(date)
	if err != nil {
		t.Fatalf("Age() error: %v", err)
	}
	second, err := cfg.Age(date)
	if err != nil {
		t.Fatalf("Age() error: %v", err)
	}
	if first != second {
		t.Errorf("Age not deterministic: %v != %v", first, second)
	}
}

func TestAgeIterationBudget(t *testing.T) {
	// With a single iteration allowed, a mid-cycle date (elongation far
	// from zero) cannot converge.
	cfg := DefaultConfig()
	cfg.MaxIterations = 1

	_, err := cfg.Age(time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC))
	if !errors.Is(err, ErrNoConvergence) {
		t.Errorf("err = %v, want ErrNoConvergence", err)
	}
}

func TestAgeZoneOffsetMatters(t *testing.T) {
	// Shifting the civil zone moves local noon, so the age shifts by the
	// same few hours (modulo the cycle seam).
	jst := Config{ZoneOffsetHours: 9}
	utc := Config{ZoneOffsetHours: 0}
	date := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)

	a, err := jst.Age(date)
	if err != nil {
		t.Fatalf("Age() error: %v", err)
	}
	b, err := utc.Age(date)
	if err != nil {
		t.Fatalf("Age() error: %v", err)
	}

	diff := math.Abs(a - b)
	if diff < 0.1 || diff > 0.7 {
		t.Errorf("JST/UTC age difference = %v days, want roughly 9h", diff)
	}
}
