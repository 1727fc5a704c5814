package collection

import (
	"sort"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/history"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/timefmt"
)

// SortHistoryLatestFirst returns a copy of records, newest timestamp first.
// Records with equal or unparseable timestamps keep their relative order.
func SortHistoryLatestFirst(records []history.Record) []history.Record {
	sorted := make([]history.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, _ := timefmt.ParseTimestamp(sorted[i].Timestamp)
		b, _ := timefmt.ParseTimestamp(sorted[j].Timestamp)
		return a.After(b)
	})
	return sorted
}

// HistoryBuckets mirrors the history view tabs.
type HistoryBuckets struct {
	All      []history.Record
	Add      []history.Record
	Update   []history.Record
	Approval []history.Record
	Delete   []history.Record
}

// SplitHistoryByAction buckets records by action, case-insensitively.
// Approved and rejected share a bucket; unknown actions only appear in All.
func SplitHistoryByAction(records []history.Record) HistoryBuckets {
	b := HistoryBuckets{All: records}
	for _, r := range records {
		switch r.Action.Normalize() {
		case history.ActionAdd:
			b.Add = append(b.Add, r)
		case history.ActionUpdate:
			b.Update = append(b.Update, r)
		case history.ActionApproved, history.ActionRejected:
			b.Approval = append(b.Approval, r)
		case history.ActionDelete:
			b.Delete = append(b.Delete, r)
		}
	}
	return b
}
