// Package search runs the filter, retrieve and score pipeline.
package search

import (
	"context"
	"fmt"
	"time"

	"wayfare/internal/metrics"
	"wayfare/internal/model"
	"wayfare/internal/query"
	"wayfare/internal/recommend"
)

// Source returns destinations matching a predicate in a stable order.
type Source interface {
	Query(ctx context.Context, p query.Predicate) ([]model.Destination, error)
}

// Snapshot is an in-memory Source over a fixed dataset. It evaluates the
// predicate with Predicate.Filter instead of SQL.
type Snapshot []model.Destination

// Query implements Source.
func (s Snapshot) Query(_ context.Context, p query.Predicate) ([]model.Destination, error) {
	return p.Filter(s), nil
}

// Load copies every destination from src into a Snapshot, in source order.
func Load(ctx context.Context, src Source) (Snapshot, error) {
	ds, err := src.Query(ctx, query.Build(model.Criteria{}))
	if err != nil {
		return nil, fmt.Errorf("snapshot destinations: %w", err)
	}
	return Snapshot(ds), nil
}

// Result is one ranked answer. Items is empty when nothing matched.
type Result struct {
	Profile model.Profile
	Items   []model.Scored
	Summary model.Summary
}

// Empty reports the no-matches outcome.
func (r Result) Empty() bool { return len(r.Items) == 0 }

// Service ranks destinations from a Source.
type Service struct {
	src      Source
	profiles *recommend.Profiles
}

// New builds a Service. A nil profiles table uses the built-in profiles.
func New(src Source, profiles *recommend.Profiles) *Service {
	if profiles == nil {
		profiles = recommend.DefaultProfiles()
	}
	return &Service{src: src, profiles: profiles}
}

// Profiles exposes the lookup table the service ranks with.
func (s *Service) Profiles() *recommend.Profiles { return s.profiles }

// Find filters by c, then scores the matches under the named profile. Unknown
// profile names fall back to the table default. A storage failure is
// returned before any scoring happens.
func (s *Service) Find(ctx context.Context, c model.Criteria, profile string) (Result, error) {
	start := time.Now()
	p, _ := s.profiles.Lookup(profile)

	ds, err := s.src.Query(ctx, query.Build(c))
	if err != nil {
		return Result{Profile: p}, fmt.Errorf("query destinations: %w", err)
	}
	res := Result{Profile: p}
	if len(ds) > 0 {
		res.Items, res.Summary = recommend.Rank(ds, p)
	}
	metrics.ObserveQuery(len(res.Items), start)
	return res, nil
}
