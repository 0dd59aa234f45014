package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"capacity-planner/engine"
	apperrors "capacity-planner/errors"
	"capacity-planner/formatter"
	"capacity-planner/metrics"
	"capacity-planner/models"
	"capacity-planner/parser"
	"capacity-planner/registry"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
)

func main() {
	// Define flags
	input := flag.String("input", "", "Parameter CSV file (empty = built-in defaults)")
	seed := flag.String("seed", "", "YAML seed file overriding the built-in defaults")
	days := flag.Int("days", 180, "Simulation horizon in days (must be >= 1)")
	format := flag.String("format", "text", "Output format: text|json|csv")
	table := flag.String("table", "summary", "Table for csv output: summary|detail")
	metricsAddr := flag.String("metrics-addr", "", "Address to expose Prometheus metrics (e.g., :9090)")
	pushGateway := flag.String("push-url", "", "Pushgateway URL to push metrics to (e.g., http://localhost:9091)")
	wait := flag.Bool("wait", false, "Keep process running after completion to allow for metric scraping")

	// Parse command-line flags
	flag.Parse()

	// Start metrics server if address provided
	if *metricsAddr != "" {
		go func() {
			http.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
			fmt.Printf("Metrics server listening on %s/metrics\n", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
				fmt.Printf("Metrics server error: %v\n", err)
			}
		}()
	}

	// Validate format enum
	validFormats := map[string]bool{"text": true, "json": true, "csv": true}
	if !validFormats[*format] {
		fmt.Printf("Error: format must be one of: text, json, csv (got: %s)\n", *format)
		os.Exit(1)
	}

	validTables := map[string]bool{"summary": true, "detail": true}
	if !validTables[*table] {
		fmt.Printf("Error: table must be one of: summary, detail (got: %s)\n", *table)
		os.Exit(1)
	}

	// The engine accepts any positive horizon; the flag only rejects
	// nonsense, it does not clamp to the 30-365 range the dashboard uses.
	if *days < 1 {
		fmt.Println("Error: days must be at least 1")
		os.Exit(1)
	}

	configs, err := loadConfigs(*input, *seed)
	if err != nil {
		fmt.Printf("Error loading parameters: %v\n", err)
		os.Exit(1)
	}

	metrics.ResetRunGauges()
	start := time.Now()
	result := engine.Run(&models.SimulationRequest{
		Configs:     configs,
		HorizonDays: *days,
	})
	metrics.EngineDurationSeconds.Observe(time.Since(start).Seconds())
	metrics.RecordRun(result)

	// Invalid rows are skipped, not fatal; the run only fails when nothing
	// could be computed at all.
	for _, rej := range result.Rejected {
		fmt.Fprintf(os.Stderr, "Warning: skipping config %d: %v\n", rej.Index, rej.Err)
	}
	if len(result.Summary) == 0 && len(result.Rejected) > 0 {
		fmt.Fprintln(os.Stderr, "Error: every specialty config was rejected")
		os.Exit(1)
	}

	// Output based on format
	switch *format {
	case "json":
		fmt.Print(formatter.FormatJSON(result))
	case "csv":
		if *table == "detail" {
			fmt.Print(formatter.FormatDetailCSV(result))
		} else {
			fmt.Print(formatter.FormatSummaryCSV(result))
		}
	default: // "text"
		fmt.Print(formatter.FormatText(result))
	}

	// Handle metrics pushing or waiting
	if *pushGateway != "" {
		jobName := "capacity_planner"
		if err := push.New(*pushGateway, jobName).Gatherer(metrics.Registry).Push(); err != nil {
			fmt.Fprintf(os.Stderr, "Error pushing to Pushgateway: %v\n", err)
		} else {
			fmt.Println("\nMetrics successfully pushed to Pushgateway")
		}
	}

	if *wait && *metricsAddr != "" {
		fmt.Println("\nProcess kept alive for metric scraping. Press Ctrl+C to exit.")
		// Wait for interrupt signal
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		fmt.Println("\nExiting...")
	} else if *metricsAddr != "" && *pushGateway == "" {
		// Small delay to allow final scrape if not waiting explicitly
		// but typically batch jobs should use pushgateway or wait
		time.Sleep(100 * time.Millisecond)
	}
}

// loadConfigs resolves the input precedence: CSV file > seed override >
// built-in defaults.
func loadConfigs(input, seed string) ([]models.SpecialtyConfig, error) {
	if input != "" {
		file, err := os.Open(input)
		if err != nil {
			return nil, fmt.Errorf("opening file: %w", err)
		}
		defer file.Close()

		start := time.Now()
		configs, err := parser.Parse(file)
		metrics.ParserDurationSeconds.Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.ParserErrorsTotal.WithLabelValues(errorType(err)).Inc()
			return nil, err
		}
		metrics.ParserRecordsTotal.Add(float64(len(configs)))
		return configs, nil
	}

	if seed != "" {
		return registry.LoadFile(seed)
	}

	configs, err := registry.Defaults()
	if err == nil {
		fmt.Fprintf(os.Stderr, "No input file provided; using built-in defaults (%d specialties)\n", len(configs))
	}
	return configs, err
}

// errorType buckets parse failures for the parser_errors_total label.
func errorType(err error) string {
	var parseErr *apperrors.ParseError
	switch {
	case errors.As(err, &parseErr):
		return "row"
	case errors.Is(err, apperrors.ErrMissingHeader):
		return "missing_header"
	case errors.Is(err, apperrors.ErrMissingColumns):
		return "missing_columns"
	case errors.Is(err, apperrors.ErrEmptyInput):
		return "empty_input"
	default:
		return "read"
	}
}
