package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-lunar/internal/lunar"
)

// Panel display colors
const (
	colorPhaseLabel = "135"     // Purple - field labels
	colorMoonUp     = "#7CFC00" // Lawn green - rise/set times
	colorMoonDown   = "#FF6347" // Tomato - never rises
	colorMoonHigh   = "#FFD700" // Gold - never sets
	colorValue      = "#C8D3F5" // Pale blue - values
)

// renderDetails renders the main panel for the selected date:
//
//	🌔  Waxing Gibbous
//	Age           11.3 days
//	Illuminated   87%
//	Moonrise      15:42
//	Moonset       03:10
func (m Model) renderDetails() string {
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	if m.infoErr != nil {
		return "  " + errorStyle.Render("ERROR: "+m.infoErr.Error()) + "\n"
	}

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorPhaseLabel)).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorValue))

	info := m.info

	var lines []string
	lines = append(lines,
		fmt.Sprintf("%s  %s", lunar.PhaseGlyph(info.AgeDays), valueStyle.Render(info.Phase)))
	lines = append(lines,
		labelStyle.Render(fmt.Sprintf("%-13s", "Age"))+
			valueStyle.Render(fmt.Sprintf("%.1f days", info.AgeDays)))
	lines = append(lines,
		labelStyle.Render(fmt.Sprintf("%-13s", "Illuminated"))+
			valueStyle.Render(fmt.Sprintf("%.0f%%", info.Illumination*100)))
	lines = append(lines, renderRiseSetLine("Moonrise", info.Rise, info))
	lines = append(lines, renderRiseSetLine("Moonset", info.Set, info))

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("60")).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))

	return indent(panel, 2) + "\n"
}

func renderRiseSetLine(label string, at time.Time, info lunar.Info) string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorPhaseLabel)).Bold(true)
	line := labelStyle.Render(fmt.Sprintf("%-13s", label))

	switch {
	case info.AlwaysUp:
		return line + lipgloss.NewStyle().Foreground(lipgloss.Color(colorMoonHigh)).Render("Up all day")
	case info.AlwaysDown:
		return line + lipgloss.NewStyle().Foreground(lipgloss.Color(colorMoonDown)).Render("Below horizon all day")
	default:
		return line + lipgloss.NewStyle().Foreground(lipgloss.Color(colorMoonUp)).Render(at.Format("15:04"))
	}
}

// renderWeekStrip renders a seven-day strip centered on the selected date,
// one glyph and weekday per column, with the selection highlighted.
func (m Model) renderWeekStrip() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)

	var glyphs, labels []string
	for offset := -3; offset <= 3; offset++ {
		day := m.date.AddDate(0, 0, offset)

		glyph := "· "
		if age, err := m.engine.Age(day); err == nil {
			glyph = lunar.PhaseGlyph(age)
		}
		glyphs = append(glyphs, " "+glyph+" ")

		label := day.Format("Mon")
		if offset == 0 {
			labels = append(labels, activeStyle.Render("["+label+"]"))
		} else {
			labels = append(labels, dimStyle.Render(" "+label+" "))
		}
	}

	return "  " + strings.Join(glyphs, " ") + "\n  " + strings.Join(labels, " ") + "\n"
}

// parseLocation parses an observer from "lat, lon" text input.
func parseLocation(s string) (lunar.Observer, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return lunar.Observer{}, fmt.Errorf("expected \"lat, lon\", got %q", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return lunar.Observer{}, fmt.Errorf("latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return lunar.Observer{}, fmt.Errorf("longitude: %w", err)
	}

	if lat < -90 || lat > 90 {
		return lunar.Observer{}, fmt.Errorf("latitude %g out of range [-90, 90]", lat)
	}
	if lon < -180 || lon > 180 {
		return lunar.Observer{}, fmt.Errorf("longitude %g out of range [-180, 180]", lon)
	}

	return lunar.Observer{LatDeg: lat, LonDeg: lon}, nil
}

// indent prefixes every line of a multi-line block with n spaces.
func indent(block string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
