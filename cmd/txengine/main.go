package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tvance/txengine/internal/core/services"
	"github.com/tvance/txengine/internal/handlers"
	"github.com/tvance/txengine/internal/ingest"
	"github.com/tvance/txengine/internal/middleware"
	"github.com/tvance/txengine/internal/platform/config"
	"github.com/tvance/txengine/internal/report"
	"github.com/tvance/txengine/internal/repositories/memory"
	"github.com/tvance/txengine/internal/ui"

	portssvc "github.com/tvance/txengine/internal/core/ports/services"
)

const version = "0.1.0"

var (
	versionFlag = flag.Bool("version", false, "Show version")
	serveFlag   = flag.Bool("serve", false, "Expose the ledger over HTTP after draining the input")
	verboseFlag = flag.Bool("verbose", false, "Print a run summary to stderr")
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `txengine - transaction stream ledger engine

Usage:
  txengine [flags] transactions.csv

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprint(os.Stderr, `
Examples:
  # Process a stream and print the account snapshot
  txengine transactions.csv > accounts.csv

  # Drain a stream, then serve the live ledger over HTTP
  txengine -serve transactions.csv

`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("txengine version %s\n", version)
		os.Exit(0)
	}

	if err := run(flag.Args(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Logs go to stderr; stdout carries the snapshot CSV.
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if len(args) == 0 && !*serveFlag {
		return errors.New("transactions csv required")
	}

	ledger := memory.NewLedgerRepository()
	processor := services.NewProcessorService(ledger)
	ctx := middleware.WithLogger(context.Background(), logger)

	if len(args) > 0 {
		stats, err := processFile(ctx, processor, args[0])
		if err != nil {
			return err
		}
		if *verboseFlag {
			printSummary(args[0], stats)
		}
	}

	if *serveFlag {
		router, err := handlers.NewRouter(cfg, logger, processor)
		if err != nil {
			return fmt.Errorf("building router: %w", err)
		}
		logger.Info("Server starting", slog.String("port", cfg.Port))
		return router.Run(":" + cfg.Port)
	}

	return report.WriteSnapshots(stdout, processor.Snapshots(ctx))
}

// processFile drains one transaction stream into the processor. Failure to
// open the input is the only fatal condition; everything downstream is
// warn-and-skip.
func processFile(ctx context.Context, processor portssvc.ProcessorSvcFacade, path string) (portssvc.RunStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return portssvc.RunStats{}, fmt.Errorf("opening transactions file: %w", err)
	}
	defer f.Close()

	return processor.Run(ctx, ingest.NewReader(f))
}

func printSummary(path string, stats portssvc.RunStats) {
	ui.Header("Transaction Stream Summary")
	ui.Info("source: %s", path)
	ui.Success("%d applied", stats.Applied)
	if stats.Rejected > 0 {
		ui.Warning("%d rejected", stats.Rejected)
	}
	if stats.Malformed > 0 {
		ui.Warning("%d malformed rows skipped", stats.Malformed)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.IsProduction {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
