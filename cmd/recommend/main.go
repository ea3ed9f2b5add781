// Command recommend prints seat-side advice for one flight.
//
//	recommend -from "New York" -to London -departure 2024-06-29T08:00 -duration 7
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/yegors/seat-side/internal/advisor"
	"github.com/yegors/seat-side/internal/airports"
	"github.com/yegors/seat-side/internal/config"
	"github.com/yegors/seat-side/internal/seating"
	"github.com/yegors/seat-side/pkg/logger"
)

func main() {
	from := flag.String("from", "", "Departure city or IATA code")
	to := flag.String("to", "", "Arrival city or IATA code")
	departure := flag.String("departure", time.Now().Format("2006-01-02T15:04"), "Departure date and time (e.g. 2024-06-29T08:00)")
	duration := flag.Float64("duration", 0, "Flight duration in hours")
	configPath := flag.String("config", "", "Path to configuration file (optional)")
	asJSON := flag.Bool("json", false, "Print the full result as JSON")
	verbose := flag.Bool("verbose", false, "Log to stdout")
	flag.Parse()

	if err := run(*from, *to, *departure, *duration, *configPath, *asJSON, *verbose, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(from, to, departure string, duration float64, configPath string, asJSON, verbose bool, out io.Writer) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.NewNop()
	if verbose {
		if log, err = logger.New(logger.Config{Level: cfg.Logging.Level, Format: "console"}); err != nil {
			return err
		}
		defer log.Sync()
	}

	catalog, err := airports.Load(cfg.Catalog.Path, log)
	if err != nil {
		return err
	}

	service := advisor.NewService(
		airports.NewLookup(catalog),
		seating.NewEngine(seating.Options{MagneticVariation: cfg.Recommend.MagneticVariation}, log),
		nil,
		cfg.Recommend.PathPoints,
		log,
	)

	result, err := service.Advise(context.Background(), advisor.Request{
		Source:        from,
		Destination:   to,
		Departure:     departure,
		DurationHours: duration,
	})
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	return printResult(out, result)
}

func printResult(out io.Writer, r *advisor.Result) error {
	a := r.Analysis

	fmt.Fprintf(out, "%s (%s) -> %s (%s)\n", r.Source.City, r.Source.Code, r.Destination.City, r.Destination.Code)
	fmt.Fprintf(out, "Bearing: %.1f° %s", a.Bearing.Degrees, a.Bearing.Compass)
	if a.Bearing.MagneticDegrees != nil {
		fmt.Fprintf(out, " (magnetic %.1f°)", *a.Bearing.MagneticDegrees)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Sun at mid-flight: azimuth %.1f°, elevation %.1f°\n", a.MidFlight.AzimuthDeg, a.MidFlight.ElevationDeg)
	fmt.Fprintf(out, "Exposure: left %.0f%%, right %.0f%%\n\n", a.Exposure.LeftFraction*100, a.Exposure.RightFraction*100)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SIDE\tRECOMMENDATION\tREASON")
	for _, rec := range r.Recommendations {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", rec.SeatSide, rec.Recommendation, rec.Reason)
	}
	return tw.Flush()
}
