package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/preference"
)

// PreferenceJobs expires preferences of sessions that have gone quiet.
type PreferenceJobs struct {
	preferenceRepo preference.PreferenceRepository
	ttl            time.Duration
	now            func() time.Time
}

func NewPreferenceJobs(preferenceRepo preference.PreferenceRepository, ttl time.Duration) *PreferenceJobs {
	return &PreferenceJobs{
		preferenceRepo: preferenceRepo,
		ttl:            ttl,
		now:            time.Now,
	}
}

func (j *PreferenceJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("prune_stale_preferences", interval, j.PruneStalePreferences)
}

func (j *PreferenceJobs) PruneStalePreferences(ctx context.Context) error {
	cutoff := j.now().UTC().Add(-j.ttl)

	removed, err := j.preferenceRepo.DeleteStale(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to prune preferences: %w", err)
	}
	if removed > 0 {
		slog.Info("Cron: pruned stale preferences", "removed", removed, "cutoff", cutoff)
	}
	return nil
}
