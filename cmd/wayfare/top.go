package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"wayfare/internal/cmdlog"
	"wayfare/internal/config"
	"wayfare/internal/render"
)

func cmdTop(ctx context.Context, args []string, w io.Writer) error {
	fs, common := newFlagSet("top")
	n := fs.Int("n", 3, "entries per list")
	if err := fs.Parse(args); err != nil {
		return usageError{err}
	}
	if *n <= 0 {
		return usageError{fmt.Errorf("n must be > 0, got %d", *n)}
	}
	cfg, err := common.load()
	if err != nil {
		return err
	}
	return cmdlog.Run("top", func() error {
		db, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := hintIfEmpty(ctx, db, w); err != nil {
			return err
		}
		return printHighlights(ctx, db, *n, w)
	})
}

func cmdProfiles(args []string, w io.Writer) error {
	fs, common := newFlagSet("profiles")
	if err := fs.Parse(args); err != nil {
		return usageError{err}
	}
	cfg, err := common.load()
	if err != nil {
		return err
	}
	return cmdlog.Run("profiles", func() error { return runProfiles(cfg, w) })
}

func runProfiles(cfg config.Config, w io.Writer) error {
	ps, err := profilesFrom(cfg)
	if err != nil {
		return err
	}
	def := ps.Preferred()
	rows := make([][]string, 0, len(ps.Names()))
	for _, p := range ps.All() {
		name := p.Name
		if name == def.Name {
			name += " (default)"
		}
		rows = append(rows, []string{name, weight(p.Cost), weight(p.Rating), weight(p.Visa)})
	}
	return render.Grid(w, []string{"Profile", "Cost", "Rating", "Visa"}, rows)
}

func weight(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
