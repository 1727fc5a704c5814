package collection

import (
	"time"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/entry"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/timefmt"
)

// SumOvertime adds up the HH:MM:SS overtime of every entry and renders the
// total as "HH:MM". Missing, "N/A" and malformed values count as zero.
func SumOvertime(entries []entry.PunchEntry) string {
	var total time.Duration
	for _, e := range entries {
		if e.Overtime == nil || *e.Overtime == timefmt.Placeholder {
			continue
		}
		if d, ok := timefmt.ParseDuration(*e.Overtime); ok {
			total += d
		}
	}
	return timefmt.FormatHoursMinutes(total)
}
