package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"wayfare/internal/cmdlog"
	"wayfare/internal/config"
	"wayfare/internal/model"
	"wayfare/internal/query"
	"wayfare/internal/render"
	"wayfare/internal/search"
	"wayfare/internal/util"
)

type queryOptions struct {
	criteria model.Criteria
	profile  string
	limit    int
}

func cmdQuery(ctx context.Context, args []string, w io.Writer) error {
	fs, common := newFlagSet("query")
	maxCost := fs.String("max-cost", "", "max cost per day (e.g. 100)")
	visa := fs.String("visa-free", "", "visa-free only? (yes/no)")
	minRating := fs.String("min-rating", "", "minimum destination rating (e.g. 4.5)")
	profile := fs.String("profile", "", "weighting profile: value, rating or budget")
	limit := fs.Int("limit", 0, "show at most this many results (0 = all)")
	if err := fs.Parse(args); err != nil {
		return usageError{err}
	}
	c, err := query.ParseCriteria(*maxCost, *visa, *minRating)
	if err != nil {
		return usageError{err}
	}
	if *limit < 0 {
		return usageError{fmt.Errorf("limit must be >= 0, got %d", *limit)}
	}
	cfg, err := common.load()
	if err != nil {
		return err
	}
	opts := queryOptions{criteria: c, profile: *profile, limit: *limit}
	return cmdlog.Run("query", func() error { return runQuery(ctx, cfg, opts, w) })
}

func runQuery(ctx context.Context, cfg config.Config, opts queryOptions, w io.Writer) error {
	profiles, err := profilesFrom(cfg)
	if err != nil {
		return err
	}
	p, _ := profiles.Lookup(opts.profile)

	fmt.Fprintln(w, "Running query with filters:")
	fmt.Fprintln(w, "  Max Cost:", util.OrNone(opts.criteria.MaxCost, strconv.Itoa))
	fmt.Fprintln(w, "  Visa Free:", util.OrNone(opts.criteria.VisaFree, model.VisaToken))
	fmt.Fprintln(w, "  Min Rating:", util.OrNone(opts.criteria.MinRating, func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }))
	fmt.Fprintln(w, "  Profile:", p.Name)

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	res, err := search.New(db, profiles).Find(ctx, opts.criteria, opts.profile)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if res.Empty() {
		if err := hintIfEmpty(ctx, db, w); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "\nMatching Results:")
	items := res.Items
	if opts.limit > 0 && len(items) > opts.limit {
		items = items[:opts.limit]
	}
	return render.Scored(w, items, res.Summary)
}
