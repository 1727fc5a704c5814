package preference

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/preference"
)

type PreferenceServiceImpl struct {
	preferenceRepo preference.PreferenceRepository
	now            func() time.Time
}

func NewPreferenceService(preferenceRepo preference.PreferenceRepository) preference.PreferenceService {
	return &PreferenceServiceImpl{
		preferenceRepo: preferenceRepo,
		now:            time.Now,
	}
}

// Get implements preference.PreferenceService.
func (s *PreferenceServiceImpl) Get(ctx context.Context, sessionID string) (preference.PreferenceResponse, error) {
	if sessionID == "" {
		return preference.PreferenceResponse{}, preference.ErrSessionRequired
	}

	pref, err := s.load(ctx, sessionID)
	if err != nil {
		return preference.PreferenceResponse{}, err
	}
	return toResponse(pref), nil
}

// Save implements preference.PreferenceService.
func (s *PreferenceServiceImpl) Save(ctx context.Context, req preference.SavePreferenceRequest) (preference.PreferenceResponse, error) {
	if req.SessionID == "" {
		return preference.PreferenceResponse{}, preference.ErrSessionRequired
	}
	if err := req.Validate(); err != nil {
		return preference.PreferenceResponse{}, err
	}

	pref, err := s.load(ctx, req.SessionID)
	if err != nil {
		return preference.PreferenceResponse{}, err
	}

	if req.SelectedEmployee != nil {
		pref.SelectedEmployee = *req.SelectedEmployee
	}
	if req.ActiveView != nil {
		pref.ActiveView = *req.ActiveView
	}
	pref.UpdatedAt = s.now().UTC()

	saved, err := s.preferenceRepo.Upsert(ctx, pref)
	if err != nil {
		return preference.PreferenceResponse{}, fmt.Errorf("failed to save preference: %w", err)
	}

	slog.Debug("Preference saved", "session_id", saved.SessionID, "active_view", saved.ActiveView)
	return toResponse(saved), nil
}

func (s *PreferenceServiceImpl) load(ctx context.Context, sessionID string) (preference.Preference, error) {
	pref, err := s.preferenceRepo.GetBySession(ctx, sessionID)
	if errors.Is(err, preference.ErrPreferenceNotFound) {
		return preference.Default(sessionID), nil
	}
	if err != nil {
		return preference.Preference{}, fmt.Errorf("failed to get preference: %w", err)
	}
	return pref, nil
}

func toResponse(p preference.Preference) preference.PreferenceResponse {
	resp := preference.PreferenceResponse{
		SelectedEmployee: p.SelectedEmployee,
		ActiveView:       p.ActiveView,
	}
	if !p.UpdatedAt.IsZero() {
		resp.UpdatedAt = p.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}
