package lunar

import (
	"testing"
	"time"
)

func TestInfoTokyoFullReport(t *testing.T) {
	cfg := DefaultConfig()
	date := time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC)

	info, err := cfg.Info(date, tokyo)
	if err != nil {
		t.Fatalf("Info() error: %v", err)
	}

	if info.AgeDays < 0 || info.AgeDays >= 29.6 {
		t.Errorf("AgeDays = %v, outside [0, 29.6)", info.AgeDays)
	}
	if info.Phase == "" {
		t.Error("Phase name is empty")
	}
	if info.Illumination < 0 || info.Illumination > 1 {
		t.Errorf("Illumination = %v, outside [0, 1]", info.Illumination)
	}
	if info.AlwaysUp || info.AlwaysDown {
		t.Errorf("unexpected circumpolar flags at Tokyo: up=%v down=%v",
			info.AlwaysUp, info.AlwaysDown)
	}
	if info.Rise.IsZero() || info.Set.IsZero() {
		t.Fatalf("rise/set timestamps missing: rise=%v set=%v", info.Rise, info.Set)
	}

	// Timestamps carry the configured fixed civil zone.
	if _, off := info.Rise.Zone(); off != 9*3600 {
		t.Errorf("rise zone offset = %d, want %d", off, 9*3600)
	}

	// Both events occur within roughly the civil day in question.
	dayStart := info.Date
	if info.Rise.Before(dayStart.Add(-6*time.Hour)) || info.Rise.After(dayStart.Add(30*time.Hour)) {
		t.Errorf("rise %v outside the civil day around %v", info.Rise, dayStart)
	}
}

func TestInfoCircumpolarFlags(t *testing.T) {
	cfg := DefaultConfig()
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	info, err := cfg.Info(date, Observer{LatDeg: 89.9, LonDeg: 0})
	if err != nil {
		t.Fatalf("Info() error: %v", err)
	}

	if !info.AlwaysUp && !info.AlwaysDown {
		t.Error("expected a circumpolar flag near the pole")
	}
	if !info.Rise.IsZero() || !info.Set.IsZero() {
		t.Errorf("circumpolar report should have zero timestamps, got rise=%v set=%v",
			info.Rise, info.Set)
	}
}

func TestInfoNonConvergenceSurfaces(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxIterations = 1

	if _, err := cfg.Info(time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC), tokyo); err == nil {
		t.Error("expected an error when the iteration budget is exhausted")
	}
}

func TestDayFraction(t *testing.T) {
	if got := dayFraction(0.5); got != 12*time.Hour {
		t.Errorf("dayFraction(0.5) = %v, want 12h", got)
	}
}
