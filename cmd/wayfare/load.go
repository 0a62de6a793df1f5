package main

import (
	"context"
	"fmt"
	"io"

	"wayfare/internal/cmdlog"
	"wayfare/internal/config"
	"wayfare/internal/ingest"
	"wayfare/internal/logging"
	"wayfare/internal/metrics"
	"wayfare/internal/render"
	"wayfare/internal/store"
)

func cmdLoad(ctx context.Context, args []string, w io.Writer) error {
	fs, common := newFlagSet("load")
	csvPath := fs.String("csv", "", "CSV file to import (overrides config)")
	if err := fs.Parse(args); err != nil {
		return usageError{err}
	}
	cfg, err := common.load()
	if err != nil {
		return err
	}
	if *csvPath != "" {
		cfg.Data.CSVPath = *csvPath
	}
	return cmdlog.Run("load", func() error { return runLoad(ctx, cfg, w) })
}

func runLoad(ctx context.Context, cfg config.Config, w io.Writer) error {
	rows, err := ingest.ReadFile(cfg.Data.CSVPath)
	if err != nil {
		return err
	}
	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Replace(ctx, rows); err != nil {
		return fmt.Errorf("store destinations: %w", err)
	}
	metrics.RowsLoaded.Add(float64(len(rows)))
	logging.Info("dataset_loaded", map[string]any{"rows": len(rows), "csv": cfg.Data.CSVPath, "db": cfg.Storage.DBPath})

	fmt.Fprintf(w, "Data loaded successfully! (%d destinations)\n", len(rows))
	return printHighlights(ctx, db, 3, w)
}

func printHighlights(ctx context.Context, db *store.DB, n int, w io.Writer) error {
	cheap, err := db.CheapestVisaFree(ctx, n)
	if err != nil {
		return fmt.Errorf("cheapest visa free: %w", err)
	}
	fmt.Fprintf(w, "\nTop %d cheapest visa free countries (by cost/day):\n", n)
	if err := render.Destinations(w, cheap, "Country", "CostPerDay"); err != nil {
		return err
	}

	top, err := db.TopRated(ctx, n)
	if err != nil {
		return fmt.Errorf("top rated: %w", err)
	}
	fmt.Fprintf(w, "\nTop %d highest rated destinations:\n", n)
	return render.Destinations(w, top, "Country", "Rating")
}

const emptyHint = "The database is empty. Run `wayfare load` first."

// hintIfEmpty prints emptyHint when the travel table has no rows.
func hintIfEmpty(ctx context.Context, db *store.DB, w io.Writer) error {
	n, err := db.Count(ctx)
	if err != nil {
		return fmt.Errorf("count destinations: %w", err)
	}
	if n == 0 {
		fmt.Fprintln(w, emptyHint)
	}
	return nil
}
