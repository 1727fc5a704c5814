package collection

import (
	"strings"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/entry"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/history"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/timefmt"
)

// Tokenize lower-cases term and splits it on whitespace.
func Tokenize(term string) []string {
	return strings.Fields(strings.ToLower(term))
}

// matchesAll reports whether every token is a substring of text. text must
// already be lower-cased.
func matchesAll(text string, tokens []string) bool {
	for _, token := range tokens {
		if !strings.Contains(text, token) {
			return false
		}
	}
	return true
}

// FilterEntries keeps entries whose employee name, raw date or long date
// contain every search token. A blank term returns entries as is.
func FilterEntries(entries []entry.PunchEntry, term string) []entry.PunchEntry {
	tokens := Tokenize(term)
	if len(tokens) == 0 {
		return entries
	}
	return Filter(entries, func(e entry.PunchEntry) bool {
		text := strings.ToLower(e.EmployeeName + " " + e.Date + " " + timefmt.FormatDate(e.Date))
		return matchesAll(text, tokens)
	})
}

// FilterHistory is FilterEntries for audit records, searching the timestamp,
// action, employee and message.
func FilterHistory(records []history.Record, term string) []history.Record {
	tokens := Tokenize(term)
	if len(tokens) == 0 {
		return records
	}
	return Filter(records, func(r history.Record) bool {
		text := strings.ToLower(r.Timestamp + " " + string(r.Action) + " " + r.Employee + " " + r.Message)
		return matchesAll(text, tokens)
	})
}
