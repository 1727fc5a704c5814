package preference

import (
	"context"
	"time"
)

// PreferenceRepository stores UI preferences keyed by session id.
type PreferenceRepository interface {
	// GetBySession returns ErrPreferenceNotFound when nothing was saved.
	GetBySession(ctx context.Context, sessionID string) (Preference, error)

	// Upsert creates or replaces the session's preference.
	Upsert(ctx context.Context, pref Preference) (Preference, error)

	// DeleteStale removes preferences not touched since before and reports
	// how many were removed.
	DeleteStale(ctx context.Context, before time.Time) (int64, error)
}
