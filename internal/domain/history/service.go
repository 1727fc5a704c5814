package history

import "context"

// HistoryService loads and shapes the audit log
type HistoryService interface {
	// Load fetches the log, applies the search and splits it into tabs
	Load(ctx context.Context, search string) (HistoryView, error)
}
