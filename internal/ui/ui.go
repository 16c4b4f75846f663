// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-lunar/internal/lunar"
	"github.com/litescript/ls-lunar/internal/version"
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic UI updates.
	TickMsg time.Time
)

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	engine lunar.Config

	// Domain state
	observer lunar.Observer
	date     time.Time // Selected civil date (midnight at the engine zone)
	info     lunar.Info
	infoErr  error

	// UI state
	width     int
	height    int
	ready     bool
	editing   bool
	input     textinput.Model
	statusMsg string
}

// New creates a new root UI model for the given engine and observer.
func New(engine lunar.Config, obs lunar.Observer) Model {
	ti := textinput.New()
	ti.Placeholder = "35.6544, 139.7447"
	ti.CharLimit = 48
	ti.Width = 30

	m := Model{
		engine:   engine,
		observer: obs,
		input:    ti,
	}
	m.date = m.today()
	m.recompute()
	return m
}

// today returns midnight of the current civil date at the engine zone.
func (m Model) today() time.Time {
	now := time.Now().In(m.engine.Location())
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, m.engine.Location())
}

func (m *Model) recompute() {
	m.info, m.infoErr = m.engine.Info(m.date, m.observer)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "left", "h":
			m.date = m.date.AddDate(0, 0, -1)
			m.recompute()
		case "right", "l":
			m.date = m.date.AddDate(0, 0, 1)
			m.recompute()

		case "t":
			m.date = m.today()
			m.statusMsg = ""
			m.recompute()

		case "e":
			m.editing = true
			m.statusMsg = ""
			m.input.SetValue(fmt.Sprintf("%.4f, %.4f", m.observer.LatDeg, m.observer.LonDeg))
			m.input.CursorEnd()
			return m, m.input.Focus()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case TickMsg:
		// Keep "today" fresh across midnight without user input.
		return m, tickCmd()
	}

	return m, nil
}

// updateEditing handles key input while the location field is focused.
func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		obs, err := parseLocation(m.input.Value())
		if err != nil {
			m.statusMsg = "Invalid location: " + err.Error()
			return m, nil
		}
		m.observer = obs
		m.editing = false
		m.input.Blur()
		m.statusMsg = ""
		m.recompute()
		return m, nil

	case "esc":
		m.editing = false
		m.input.Blur()
		m.statusMsg = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(renderLogo())
	b.WriteString(m.renderDateLine())
	b.WriteString("\n")
	b.WriteString(m.renderDetails())
	b.WriteString("\n")
	b.WriteString(m.renderWeekStrip())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderDateLine() string {
	dateStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#C8D3F5")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	line := "  " + dateStyle.Render(m.date.Format("Mon 2006-01-02"))
	if m.date.Equal(m.today()) {
		line += dimStyle.Render("  (today)")
	}

	site := m.observer.Name
	if site == "" {
		site = fmt.Sprintf("%.4f, %.4f", m.observer.LatDeg, m.observer.LonDeg)
	}
	line += dimStyle.Render("  @ " + site)

	return line + "\n"
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))

	if m.editing {
		return "  Location (lat, lon): " + m.input.View() + "\n" +
			"  " + dimStyle.Render("enter: apply | esc: cancel")
	}

	help := dimStyle.Render("←/→: day | t: today | e: location | q: quit")
	footer := "  " + help
	if m.statusMsg != "" {
		footer += "\n  " + errorStyle.Render(m.statusMsg)
	}
	return footer
}

func renderLogo() string {
	// ASCII art with a horizontal truecolor gradient
	logo := []string{
		`  ██╗     ███████╗      ██╗     ██╗   ██╗███╗   ██╗ █████╗ ██████╗ `,
		`  ██║     ██╔════╝      ██║     ██║   ██║████╗  ██║██╔══██╗██╔══██╗`,
		`  ██║     ███████╗█████╗██║     ██║   ██║██╔██╗ ██║███████║██████╔╝`,
		`  ██║     ╚════██║╚════╝██║     ██║   ██║██║╚██╗██║██╔══██║██╔══██╗`,
		`  ███████╗███████║      ███████╗╚██████╔╝██║ ╚████║██║  ██║██║  ██║`,
		`  ╚══════╝╚══════╝      ╚══════╝ ╚═════╝ ╚═╝  ╚═══╝╚═╝  ╚═╝╚═╝  ╚═╝`,
	}

	var b strings.Builder
	b.WriteString("\n")

	for row, line := range logo {
		runes := []rune(line)
		for col, r := range runes {
			color := gradientColor(col, row, len(runes), len(logo))
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			b.WriteString(style.Render(string(r)))
		}
		b.WriteString("\n")
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	b.WriteString(muted.Render("  Lunar Age & Rise/Set Almanac"))
	b.WriteString("\n")
	b.WriteString(muted.Render(fmt.Sprintf("  (c) 2026 litescript.net | v%s", version.Version)))
	b.WriteString("\n\n")

	return b.String()
}

// gradientColor returns a hex color for a position in the logo gradient.
// Moonlit palette: deep indigo fading through slate blue into silver.
func gradientColor(col, row, width, height int) string {
	xRatio := float64(col) / float64(width)
	yRatio := float64(row) / float64(height)

	// Indigo (#4C4CB3) -> Slate (#7A8FD4) -> Silver (#C9D4E8)
	var r, g, b float64
	if xRatio < 0.5 {
		t := xRatio / 0.5
		r = 76 + t*(122-76)
		g = 76 + t*(143-76)
		b = 179 + t*(212-179)
	} else {
		t := (xRatio - 0.5) / 0.5
		r = 122 + t*(201-122)
		g = 143 + t*(212-143)
		b = 212 + t*(232-212)
	}

	// Brighter at top, darker toward bottom
	brightness := 1.0 - (yRatio * 0.4)
	ri := clamp8(int(r * brightness))
	gi := clamp8(int(g * brightness))
	bi := clamp8(int(b * brightness))

	return fmt.Sprintf("#%02X%02X%02X", ri, gi, bi)
}

func clamp8(v int) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return v
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
