// Package timefmt converts between the persisted punch clock representations
// (HH:MM:SS, YYYY-MM-DD) and the strings shown on the dashboard.
package timefmt

import (
	"strconv"
	"strings"
	"time"
)

// Placeholder is rendered wherever a time or date is missing.
const Placeholder = "N/A"

const longDateLayout = "January 2, 2006"

// ToDisplay renders a persisted time as "HHh MM". Seconds are dropped and the
// values are not range checked.
func ToDisplay(t *string) string {
	if t == nil {
		return Placeholder
	}
	return ToDisplayString(*t)
}

// ToDisplayString is ToDisplay for non-nullable values.
func ToDisplayString(t string) string {
	if t == "" {
		return Placeholder
	}
	hours, minutes := SplitClock(t)
	return hours + "h " + minutes
}

// ToPersisted turns a display value ("09h 30") back into HH:MM:SS.
func ToPersisted(display string) string {
	if display == "" {
		return ""
	}
	cleaned := strings.Join(strings.Fields(display), "")
	cleaned = strings.Replace(cleaned, "h", ":", 1)
	if len(strings.Split(cleaned, ":")) == 2 {
		return cleaned + ":00"
	}
	return cleaned
}

// SplitClock returns the hour and minute parts of a HH:MM[:SS] value. Missing
// parts come back empty.
func SplitClock(t string) (hours, minutes string) {
	parts := strings.Split(t, ":")
	hours = parts[0]
	if len(parts) > 1 {
		minutes = parts[1]
	}
	return hours, minutes
}

// FormatDate renders YYYY-MM-DD as "March 4, 2025" in English regardless of
// host locale. Out-of-range days roll over into the next month; input that is
// not three numeric parts is returned unchanged.
func FormatDate(date string) string {
	t, ok := ParseDate(date)
	if !ok {
		if date == "" {
			return Placeholder
		}
		return date
	}
	return t.Format(longDateLayout)
}

// ParseDate parses YYYY-MM-DD leniently into a UTC midnight.
func ParseDate(date string) (time.Time, bool) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}
	return time.Date(nums[0], time.Month(nums[1]), nums[2], 0, 0, 0, 0, time.UTC), true
}

// FormatTimestamp renders "2025-03-04 14:25:00" as "March 4, 2025 14h 25".
func FormatTimestamp(ts string) string {
	if ts == "" {
		return Placeholder
	}
	parts := strings.Split(ts, " ")
	if len(parts) < 2 {
		return ts
	}
	return FormatDate(parts[0]) + " " + ToDisplayString(parts[1])
}

// ParseTimestamp parses "YYYY-MM-DD HH:MM:SS" (or the ISO "T" form).
func ParseTimestamp(ts string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.ParseInLocation(layout, ts, time.UTC); err == nil {
			return t, true
		}
	}
	if t, ok := ParseDate(ts); ok {
		return t, true
	}
	return time.Time{}, false
}

// ParseDuration parses an HH:MM:SS duration. Hours may exceed 23.
func ParseDuration(d string) (time.Duration, bool) {
	parts := strings.Split(d, ":")
	if len(parts) != 3 {
		return 0, false
	}
	var total int
	for i, unit := range []int{3600, 60, 1} {
		n, err := strconv.Atoi(parts[i])
		if err != nil || n < 0 {
			return 0, false
		}
		total += n * unit
	}
	return time.Duration(total) * time.Second, true
}

// FormatHoursMinutes renders a duration as zero-padded "HH:MM", flooring
// leftover seconds.
func FormatHoursMinutes(d time.Duration) string {
	totalSeconds := int(d / time.Second)
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	return pad2(hours) + ":" + pad2(minutes)
}

func pad2(n int) string {
	s := strconv.Itoa(n)
	if len(s) < 2 {
		return "0" + s
	}
	return s
}
