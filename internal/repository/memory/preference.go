// Package memory keeps preferences in process memory. It backs the dashboard
// when no database is configured; state is lost on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/preference"
)

type preferenceRepositoryImpl struct {
	mu    sync.RWMutex
	prefs map[string]preference.Preference
}

func NewPreferenceRepository() preference.PreferenceRepository {
	return &preferenceRepositoryImpl{prefs: make(map[string]preference.Preference)}
}

// GetBySession implements preference.PreferenceRepository.
func (r *preferenceRepositoryImpl) GetBySession(ctx context.Context, sessionID string) (preference.Preference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pref, ok := r.prefs[sessionID]
	if !ok {
		return preference.Preference{}, preference.ErrPreferenceNotFound
	}
	return pref, nil
}

// Upsert implements preference.PreferenceRepository.
func (r *preferenceRepositoryImpl) Upsert(ctx context.Context, pref preference.Preference) (preference.Preference, error) {
	if pref.UpdatedAt.IsZero() {
		pref.UpdatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.prefs[pref.SessionID] = pref
	return pref, nil
}

// DeleteStale implements preference.PreferenceRepository.
func (r *preferenceRepositoryImpl) DeleteStale(ctx context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for id, pref := range r.prefs {
		if pref.UpdatedAt.Before(before) {
			delete(r.prefs, id)
			removed++
		}
	}
	return removed, nil
}
