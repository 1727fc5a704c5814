package history

import "context"

// HistoryRepository reads the audit log from the punch clock API.
type HistoryRepository interface {
	List(ctx context.Context) ([]Record, error)
}
