package collection

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/entry"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/timefmt"
)

// DateGroup holds the entries sharing one date.
type DateGroup struct {
	Date    string
	Entries []entry.PunchEntry
}

// SortByDate returns a copy of entries ordered by date. Entries on the same
// date keep their relative order. Unparseable dates sort as the zero time.
func SortByDate(entries []entry.PunchEntry, latestFirst bool) []entry.PunchEntry {
	sorted := make([]entry.PunchEntry, len(entries))
	copy(sorted, entries)

	keys := make(map[string]time.Time, len(sorted))
	for _, e := range sorted {
		if _, ok := keys[e.Date]; !ok {
			t, _ := timefmt.ParseDate(e.Date)
			keys[e.Date] = t
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := keys[sorted[i].Date], keys[sorted[j].Date]
		if latestFirst {
			return a.After(b)
		}
		return a.Before(b)
	})
	return sorted
}

// GroupByDate partitions entries by their exact date string, groups in
// first-occurrence order.
func GroupByDate(entries []entry.PunchEntry) []DateGroup {
	groups := GroupBy(entries, func(e entry.PunchEntry) string { return e.Date })
	return Map(groups, func(g Group[string, entry.PunchEntry]) DateGroup {
		return DateGroup{Date: g.Key, Entries: g.Items}
	})
}

// FilterByPeriod keeps entries in the given month (1..12) and year. A nil
// filter matches everything on that dimension; entries with an unparseable
// date only survive when both filters are nil.
func FilterByPeriod(entries []entry.PunchEntry, month, year *int) []entry.PunchEntry {
	if month == nil && year == nil {
		return entries
	}
	return Filter(entries, func(e entry.PunchEntry) bool {
		t, ok := timefmt.ParseDate(e.Date)
		if !ok {
			return false
		}
		if month != nil && int(t.Month()) != *month {
			return false
		}
		if year != nil && t.Year() != *year {
			return false
		}
		return true
	})
}

// CountByStatus counts entries with the given status.
func CountByStatus(entries []entry.PunchEntry, status entry.Status) int {
	n := 0
	for _, e := range entries {
		if e.Status == status {
			n++
		}
	}
	return n
}

// StatusBuckets splits entries for the approvals tabs.
type StatusBuckets struct {
	Pending  []entry.PunchEntry
	Approved []entry.PunchEntry
	Rejected []entry.PunchEntry
}

// SplitByStatus buckets entries by status, keeping input order. Entries with
// an unknown status are dropped.
func SplitByStatus(entries []entry.PunchEntry) StatusBuckets {
	var b StatusBuckets
	for _, e := range entries {
		switch e.Status {
		case entry.StatusPending:
			b.Pending = append(b.Pending, e)
		case entry.StatusApproved:
			b.Approved = append(b.Approved, e)
		case entry.StatusRejected:
			b.Rejected = append(b.Rejected, e)
		}
	}
	return b
}
