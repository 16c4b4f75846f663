package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/litescript/ls-lunar/internal/lunar"
)

var (
	calcDate string
	calcJSON bool
)

// calcCmd computes a one-shot report for a single date.
var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Print the moon report for one date",
	Long: `Computes age, phase, illumination, and local moonrise/moonset for a
single civil date and prints the result to stdout.

Example:
  ls-lunar calc --date 2026-01-15 --lat 51.48 --lon 0.0 --zone-offset 0`,
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().StringVar(&calcDate, "date", "", "civil date as YYYY-MM-DD (default: today)")
	calcCmd.Flags().BoolVar(&calcJSON, "json", false, "emit the report as JSON")
}

// calcReport is the JSON shape of a one-shot report.
type calcReport struct {
	Date         string  `json:"date"`
	Latitude     float64 `json:"lat"`
	Longitude    float64 `json:"lon"`
	AgeDays      float64 `json:"age_days"`
	Phase        string  `json:"phase"`
	Illumination float64 `json:"illumination"`
	Moonrise     *string `json:"moonrise,omitempty"`
	Moonset      *string `json:"moonset,omitempty"`
	AlwaysUp     bool    `json:"always_up,omitempty"`
	AlwaysDown   bool    `json:"always_down,omitempty"`
}

func runCalc(cmd *cobra.Command, args []string) error {
	engine := engineFromFlags()
	obs, err := observerFromFlags()
	if err != nil {
		return err
	}

	date := todayAt(engine)
	if calcDate != "" {
		date, err = time.ParseInLocation("2006-01-02", calcDate, engine.Location())
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", calcDate, err)
		}
	}

	logger.Debug("computing report",
		zap.String("date", date.Format("2006-01-02")),
		zap.Float64("lat", obs.LatDeg),
		zap.Float64("lon", obs.LonDeg))

	info, err := engine.Info(date, obs)
	if err != nil {
		return err
	}

	if calcJSON {
		return printJSONReport(info)
	}
	printReport(os.Stdout, info)
	return nil
}

func printJSONReport(info lunar.Info) error {
	report := calcReport{
		Date:         info.Date.Format("2006-01-02"),
		Latitude:     info.Observer.LatDeg,
		Longitude:    info.Observer.LonDeg,
		AgeDays:      info.AgeDays,
		Phase:        info.Phase,
		Illumination: info.Illumination,
		AlwaysUp:     info.AlwaysUp,
		AlwaysDown:   info.AlwaysDown,
	}
	if !info.Rise.IsZero() {
		s := info.Rise.Format(time.RFC3339)
		report.Moonrise = &s
	}
	if !info.Set.IsZero() {
		s := info.Set.Format(time.RFC3339)
		report.Moonset = &s
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// todayAt returns midnight of the current civil date at the engine zone.
func todayAt(engine lunar.Config) time.Time {
	now := time.Now().In(engine.Location())
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, engine.Location())
}
