package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/litescript/ls-lunar/internal/lunar"
	"github.com/litescript/ls-lunar/internal/ui"
	"github.com/litescript/ls-lunar/internal/version"
)

var (
	// Global flags
	lat        float64
	lon        float64
	zoneOffset float64
	siteName   string
	verbose    bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ls-lunar",
	Short: "Moon age, phase, and rise/set almanac",
	Long: `ls-lunar computes the Moon's synodic age, phase, and local moonrise
and moonset times from a reduced trigonometric ephemeris. Accuracy is a
few minutes for rise/set, which is plenty for planning an evening.

Run without arguments to start the interactive dashboard.`,
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip logger init for interactive mode (it has its own UI)
		if cmd.CalledAs() == "ls-lunar" {
			return nil
		}

		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard()
	},
}

func init() {
	rootCmd.PersistentFlags().Float64Var(&lat, "lat", 35.6544, "observer latitude in degrees (north positive)")
	rootCmd.PersistentFlags().Float64Var(&lon, "lon", 139.7447, "observer longitude in degrees (east positive)")
	rootCmd.PersistentFlags().Float64Var(&zoneOffset, "zone-offset", 9.0, "civil time zone offset in hours east of UTC")
	rootCmd.PersistentFlags().StringVar(&siteName, "site", "", "optional observer site name")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(serveCmd)
}

func engineFromFlags() lunar.Config {
	cfg := lunar.DefaultConfig()
	cfg.ZoneOffsetHours = zoneOffset
	return cfg
}

func observerFromFlags() (lunar.Observer, error) {
	if lat < -90 || lat > 90 {
		return lunar.Observer{}, fmt.Errorf("latitude %g out of range [-90, 90]", lat)
	}
	if lon < -180 || lon > 180 {
		return lunar.Observer{}, fmt.Errorf("longitude %g out of range [-180, 180]", lon)
	}
	return lunar.Observer{LatDeg: lat, LonDeg: lon, Name: siteName}, nil
}

// runDashboard starts the interactive TUI, or falls back to a one-shot
// text report when stdout is not a terminal.
func runDashboard() error {
	engine := engineFromFlags()
	obs, err := observerFromFlags()
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		info, err := engine.Info(todayAt(engine), obs)
		if err != nil {
			return err
		}
		printReport(os.Stdout, info)
		return nil
	}

	p := tea.NewProgram(ui.New(engine, obs), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// printReport writes the plain-text almanac for one day.
func printReport(w io.Writer, info lunar.Info) {
	site := info.Observer.Name
	if site == "" {
		site = fmt.Sprintf("%.4f, %.4f", info.Observer.LatDeg, info.Observer.LonDeg)
	}

	fmt.Fprintf(w, "Date:         %s\n", info.Date.Format("2006-01-02 (Mon)"))
	fmt.Fprintf(w, "Observer:     %s\n", site)
	fmt.Fprintf(w, "Phase:        %s %s\n", lunar.PhaseGlyph(info.AgeDays), info.Phase)
	fmt.Fprintf(w, "Age:          %.1f days\n", info.AgeDays)
	fmt.Fprintf(w, "Illuminated:  %.0f%%\n", info.Illumination*100)

	switch {
	case info.AlwaysUp:
		fmt.Fprintln(w, "Moonrise:     up all day")
		fmt.Fprintln(w, "Moonset:      up all day")
	case info.AlwaysDown:
		fmt.Fprintln(w, "Moonrise:     below horizon all day")
		fmt.Fprintln(w, "Moonset:      below horizon all day")
	default:
		fmt.Fprintf(w, "Moonrise:     %s\n", info.Rise.Format("15:04"))
		fmt.Fprintf(w, "Moonset:      %s\n", info.Set.Format("15:04"))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
