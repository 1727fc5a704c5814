package preference

import "errors"

var (
	ErrPreferenceNotFound = errors.New("preference not found")
	ErrSessionRequired    = errors.New("session is required")
)
