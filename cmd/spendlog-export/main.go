// Command spendlog-export writes the recorded expenses as CSV, filtered
// the same way the web UI filters them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"spendlog/internal/backend"
	"spendlog/internal/cli"
	"spendlog/internal/core"
	"spendlog/internal/export"
	"spendlog/internal/ledger"
)

func main() {
	var (
		search   = flag.String("q", "", "substring to match against descriptions (case-insensitive)")
		category = flag.String("category", "", "category to filter by (Food, Transportation, ...)")
		from     = flag.String("from", "", "earliest date to include (yyyy-mm-dd)")
		to       = flag.String("to", "", "latest date to include (yyyy-mm-dd)")
		output   = flag.String("o", "", "output file path (default stdout)")
	)
	flag.Parse()

	logger := cli.SetupLogger()
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig(logger)

	spec, err := buildFilterSpec(*search, *category, *from, *to)
	if err != nil {
		logger.Error("Invalid filter", "error", err)
		os.Exit(1)
	}

	result, err := backend.Open(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize data backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	defer func() {
		if result.Cleanup != nil {
			if err := result.Cleanup(); err != nil {
				logger.Error("Backend cleanup error", "error", err)
			}
		}
	}()

	store := ledger.NewStore(result.Blobs, cfg.LedgerKey)
	store.Load(context.Background())

	records := core.Filtered(store.Snapshot(), spec)

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			logger.Error("Failed to create output file", "error", err, "path", *output)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := export.Write(out, records); err != nil {
		if errors.Is(err, export.ErrNoRecords) {
			logger.Error("No expenses match the given filter, nothing to export")
		} else {
			logger.Error("Export failed", "error", err)
		}
		os.Exit(1)
	}

	if *output != "" {
		logger.Info("Export complete", "path", *output, "records", len(records))
	}
}

func buildFilterSpec(search, category, from, to string) (core.FilterSpec, error) {
	spec := core.FilterSpec{Search: search}

	if category != "" {
		c, ok := core.ParseCategory(category)
		if !ok {
			return spec, fmt.Errorf("unknown category %q", category)
		}
		spec.Category = c
	}
	if from != "" {
		d := core.Date(from)
		if err := d.Validate(); err != nil {
			return spec, fmt.Errorf("invalid -from date %q: %w", from, err)
		}
		spec.From = d
	}
	if to != "" {
		d := core.Date(to)
		if err := d.Validate(); err != nil {
			return spec, fmt.Errorf("invalid -to date %q: %w", to, err)
		}
		spec.To = d
	}
	return spec, nil
}
