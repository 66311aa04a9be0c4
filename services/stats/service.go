package stats

import (
	"context"
	"strconv"
	"time"

	"alpsconnect/models"
)

// Storage keys are stable so counters survive redeploys.
const (
	keyFirstSeen = "ac_stats_start"
	keyLastSeen  = "ac_stats_last"
	keyViews     = "ac_stats_views"
)

// Store is a minimal string key-value store. Get returns "" for a missing
// key rather than an error. Incr atomically increments a numeric key and
// returns the new value; a missing or non-numeric key restarts at zero.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Incr(ctx context.Context, key string) (int64, error)
}

// Service tracks landing-page visits: a monotonic view counter plus
// first-seen and last-seen timestamps.
type Service struct {
	Store Store

	now func() time.Time
}

func NewService(store Store) *Service {
	return &Service{Store: store, now: time.Now}
}

// RecordSession registers one session start and returns the updated
// snapshot. A missing or malformed stored counter reads as zero.
func (s *Service) RecordSession(ctx context.Context) (*models.VisitStats, error) {
	now := s.now().UTC()

	first, err := s.Store.Get(ctx, keyFirstSeen)
	if err != nil {
		return nil, err
	}
	if first == "" {
		first = now.Format(time.RFC3339)
		if err := s.Store.Set(ctx, keyFirstSeen, first); err != nil {
			return nil, err
		}
	}

	if err := s.Store.Set(ctx, keyLastSeen, now.Format(time.RFC3339)); err != nil {
		return nil, err
	}

	// Incr keeps the counter monotonic under concurrent sessions.
	views, err := s.Store.Incr(ctx, keyViews)
	if err != nil {
		return nil, err
	}

	return s.snapshot(ctx, views)
}

// Snapshot returns the current counters without recording a visit.
func (s *Service) Snapshot(ctx context.Context) (*models.VisitStats, error) {
	views, err := s.readViews(ctx)
	if err != nil {
		return nil, err
	}
	return s.snapshot(ctx, views)
}

func (s *Service) readViews(ctx context.Context) (int64, error) {
	raw, err := s.Store.Get(ctx, keyViews)
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return 0, nil
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// A corrupted counter restarts at zero rather than failing.
		return 0, nil
	}
	return parsed, nil
}

func (s *Service) snapshot(ctx context.Context, views int64) (*models.VisitStats, error) {
	out := &models.VisitStats{Views: views}

	if raw, err := s.Store.Get(ctx, keyFirstSeen); err == nil && raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			out.FirstSeen = &t
		}
	}
	if raw, err := s.Store.Get(ctx, keyLastSeen); err == nil && raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			out.LastSeen = &t
		}
	}
	return out, nil
}
