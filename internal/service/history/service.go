package history

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/history"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/collection"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/timefmt"
)

type HistoryServiceImpl struct {
	historyRepo history.HistoryRepository
}

func NewHistoryService(historyRepo history.HistoryRepository) history.HistoryService {
	return &HistoryServiceImpl{
		historyRepo: historyRepo,
	}
}

// Load implements history.HistoryService.
func (s *HistoryServiceImpl) Load(ctx context.Context, search string) (history.HistoryView, error) {
	records, err := s.historyRepo.List(ctx)
	if err != nil {
		return history.HistoryView{}, fmt.Errorf("failed to fetch history: %w", err)
	}

	filtered := collection.FilterHistory(records, search)
	buckets := collection.SplitHistoryByAction(filtered)

	return history.HistoryView{
		Search: search,
		Total:  len(filtered),
		Tabs: history.HistoryTabs{
			All:      tab(buckets.All),
			Add:      tab(buckets.Add),
			Update:   tab(buckets.Update),
			Approval: tab(buckets.Approval),
			Delete:   tab(buckets.Delete),
		},
	}, nil
}

func tab(records []history.Record) []history.HistoryRow {
	return collection.Map(collection.SortHistoryLatestFirst(records), func(r history.Record) history.HistoryRow {
		return history.HistoryRow{
			Timestamp:        r.Timestamp,
			DisplayTimestamp: timefmt.FormatTimestamp(r.Timestamp),
			Action:           r.Action,
			Icon:             r.Action.Icon(),
			Employee:         r.Employee,
			Message:          r.Message,
		}
	})
}
