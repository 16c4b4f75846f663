package lunar

import (
	"math"
	"testing"
)

func TestEclipticToEquatorialCardinalPoints(t *testing.T) {
	const eps = 23.439291

	tests := []struct {
		name    string
		ec      Ecliptic
		wantRA  float64
		wantDec float64
		tol     float64
	}{
		{"vernal point", Ecliptic{LonDeg: 0, LatDeg: 0}, 0, 0, 1e-9},
		{"summer point", Ecliptic{LonDeg: 90, LatDeg: 0}, 90, eps, 1e-6},
		{"autumn point", Ecliptic{LonDeg: 180, LatDeg: 0}, 180, 0, 1e-6},
		{"winter point", Ecliptic{LonDeg: 270, LatDeg: 0}, 270, -eps, 1e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := eclipticToEquatorial(tt.ec, eps)

			if math.Abs(norm180(got.RAdeg-tt.wantRA)) > tt.tol {
				t.Errorf("RA = %v, want %v", got.RAdeg, tt.wantRA)
			}
			if math.Abs(got.DecDeg-tt.wantDec) > tt.tol {
				t.Errorf("Dec = %v, want %v", got.DecDeg, tt.wantDec)
			}
		})
	}
}

func TestEclipticToEquatorialBounds(t *testing.T) {
	const eps = 23.44

	for lon := 0.0; lon < 360; lon += 7.3 {
		for lat := -5.3; lat <= 5.3; lat += 1.06 {
			got := eclipticToEquatorial(Ecliptic{LonDeg: lon, LatDeg: lat}, eps)

			if got.RAdeg < 0 || got.RAdeg >= 360 {
				t.Fatalf("RA(%v, %v) = %v, outside [0, 360)", lon, lat, got.RAdeg)
			}
			if got.DecDeg < -90 || got.DecDeg > 90 {
				t.Fatalf("Dec(%v, %v) = %v, outside [-90, 90]", lon, lat, got.DecDeg)
			}
		}
	}
}

func TestObliquity(t *testing.T) {
	// Obliquity drifts only ~0.0001° per series year; any epoch in the
	// supported range stays near 23.44°.
	for ty := -10.0; ty <= 30.0; ty += 1.0 {
		e := obliquity(ty)
		if e < 23.42 || e > 23.45 {
			t.Fatalf("obliquity(%v) = %v, outside [23.42, 23.45]", ty, e)
		}
	}
}
