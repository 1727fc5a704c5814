package preference

import "context"

// PreferenceService remembers the selected employee and active view.
type PreferenceService interface {
	// Get returns the saved preference or the defaults.
	Get(ctx context.Context, sessionID string) (PreferenceResponse, error)

	Save(ctx context.Context, req SavePreferenceRequest) (PreferenceResponse, error)
}
