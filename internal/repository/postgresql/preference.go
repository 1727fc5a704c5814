package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/preference"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type preferenceRepositoryImpl struct {
	db *database.DB
}

func NewPreferenceRepository(db *database.DB) preference.PreferenceRepository {
	return &preferenceRepositoryImpl{db: db}
}

// GetBySession implements preference.PreferenceRepository.
func (r *preferenceRepositoryImpl) GetBySession(ctx context.Context, sessionID string) (preference.Preference, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT session_id, selected_employee, active_view, updated_at
		FROM dashboard_preferences
		WHERE session_id = $1
	`

	var pref preference.Preference
	var activeView string
	err := q.QueryRow(ctx, query, sessionID).Scan(
		&pref.SessionID,
		&pref.SelectedEmployee,
		&activeView,
		&pref.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return preference.Preference{}, preference.ErrPreferenceNotFound
		}
		return preference.Preference{}, fmt.Errorf("failed to get preference for session %s: %w", sessionID, err)
	}
	pref.ActiveView = preference.View(activeView)

	return pref, nil
}

// Upsert implements preference.PreferenceRepository.
func (r *preferenceRepositoryImpl) Upsert(ctx context.Context, pref preference.Preference) (preference.Preference, error) {
	q := GetQuerier(ctx, r.db)

	if pref.UpdatedAt.IsZero() {
		pref.UpdatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO dashboard_preferences (session_id, selected_employee, active_view, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (session_id) DO UPDATE SET
			selected_employee = EXCLUDED.selected_employee,
			active_view = EXCLUDED.active_view,
			updated_at = EXCLUDED.updated_at
		RETURNING session_id, selected_employee, active_view, updated_at
	`

	var saved preference.Preference
	var activeView string
	err := q.QueryRow(ctx, query,
		pref.SessionID,
		pref.SelectedEmployee,
		string(pref.ActiveView),
		pref.UpdatedAt,
	).Scan(
		&saved.SessionID,
		&saved.SelectedEmployee,
		&activeView,
		&saved.UpdatedAt,
	)
	if err != nil {
		return preference.Preference{}, fmt.Errorf("failed to upsert preference for session %s: %w", pref.SessionID, err)
	}
	saved.ActiveView = preference.View(activeView)

	return saved, nil
}

// DeleteStale implements preference.PreferenceRepository.
func (r *preferenceRepositoryImpl) DeleteStale(ctx context.Context, before time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM dashboard_preferences WHERE updated_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale preferences: %w", err)
	}
	return tag.RowsAffected(), nil
}
