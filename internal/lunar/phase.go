package lunar

import "math"

// SynodicMonth is the mean length of the lunar cycle in days.
const SynodicMonth = 29.530588853

// Illumination returns the illuminated fraction of the Moon's disc for a
// given synodic age, in [0, 1]: 0 at new Moon, 1 at full.
func Illumination(ageDays float64) float64 {
	frac := math.Mod(ageDays/SynodicMonth, 1)
	if frac < 0 {
		frac++
	}
	return (1 - math.Cos(2*math.Pi*frac)) / 2
}

// PhaseName returns the conventional name for a synodic age. Boundaries
// sit halfway between the principal phases (eighths of the cycle).
func PhaseName(ageDays float64) string {
	switch f := cycleFraction(ageDays); {
	case f < 1.0/16:
		return "New Moon"
	case f < 3.0/16:
		return "Waxing Crescent"
	case f < 5.0/16:
		return "First Quarter"
	case f < 7.0/16:
		return "Waxing Gibbous"
	case f < 9.0/16:
		return "Full Moon"
	case f < 11.0/16:
		return "Waning Gibbous"
	case f < 13.0/16:
		return "Last Quarter"
	case f < 15.0/16:
		return "Waning Crescent"
	default:
		return "New Moon"
	}
}

// PhaseGlyph returns a single-rune depiction of the phase for terminal
// display, matching the PhaseName boundaries.
func PhaseGlyph(ageDays float64) string {
	glyphs := []string{"🌑", "🌒", "🌓", "🌔", "🌕", "🌖", "🌗", "🌘"}
	f := cycleFraction(ageDays)
	idx := int(math.Floor(f*8 + 0.5))
	return glyphs[idx%8]
}

// cycleFraction maps a synodic age onto [0, 1) of the lunar cycle.
func cycleFraction(ageDays float64) float64 {
	f := math.Mod(ageDays/SynodicMonth, 1)
	if f < 0 {
		f++
	}
	return f
}
