package lunar

import "math"

// Ecliptic is a position relative to the plane of Earth's orbit.
type Ecliptic struct {
	LonDeg float64 // Ecliptic longitude in degrees (0-360)
	LatDeg float64 // Ecliptic latitude in degrees
}

// Equatorial is a position relative to Earth's rotational equator.
type Equatorial struct {
	RAdeg  float64 // Right Ascension in degrees (0-360)
	DecDeg float64 // Declination in degrees (-90 to +90)
}

// obliquity returns the tilt of the ecliptic against the equator in
// degrees at series time t.
func obliquity(t float64) float64 {
	return norm360(23.439291 - 0.000130042*t)
}

// eclipticToEquatorial rotates an ecliptic position into equatorial
// coordinates using the given obliquity.
//
// Right ascension uses a two-argument arctangent folded into [0, 360).
// The reference model computed atan(v/u) and added 180° when u < 0, which
// is the same fold for every u != 0; Atan2 additionally stays defined on
// the u = 0 meridians. Declination is bounded to [-90, 90], so a plain
// arctangent suffices there.
func eclipticToEquatorial(ec Ecliptic, obliquityDeg float64) Equatorial {
	lon := degToRad(ec.LonDeg)
	lat := degToRad(ec.LatDeg)
	eps := degToRad(obliquityDeg)

	u := math.Cos(lat) * math.Cos(lon)
	v := -math.Sin(lat)*math.Sin(eps) + math.Cos(lat)*math.Sin(lon)*math.Cos(eps)
	w := math.Sin(lat)*math.Cos(eps) + math.Cos(lat)*math.Sin(lon)*math.Sin(eps)

	ra := norm360(radToDeg(math.Atan2(v, u)))
	dec := radToDeg(math.Atan(w / math.Sqrt(u*u+v*v)))

	return Equatorial{RAdeg: ra, DecDeg: dec}
}

// moonEcliptic bundles the longitude and latitude series at series time t.
func moonEcliptic(t float64) Ecliptic {
	return Ecliptic{
		LonDeg: moonLongitude(t),
		LatDeg: moonLatitude(t),
	}
}
