package entry

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/entry"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/timefmt"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/validator"
)

type formField struct {
	name  string
	value string
}

func (f formField) trimmed() string {
	return strings.TrimSpace(f.value)
}

func fieldsOf(form entry.EntryForm) []formField {
	return []formField{
		{name: "hours_in", value: form.HoursIn},
		{name: "minutes_in", value: form.MinutesIn},
		{name: "hours_out", value: form.HoursOut},
		{name: "minutes_out", value: form.MinutesOut},
	}
}

// ValidateForm checks the four hour/minute fields and returns the canonical
// HH:MM:00 punch-in and punch-out. Digits are not range checked, so "99" is
// accepted and rolls over when the two instants are compared.
func ValidateForm(form entry.EntryForm) (punchIn, punchOut string, err error) {
	fields := fieldsOf(form)

	for _, f := range fields {
		if validator.IsEmpty(f.value) {
			return "", "", &entry.ValidationError{Kind: entry.ErrMissingField, Field: f.name}
		}
	}

	for _, f := range fields {
		if !validator.IsClockField(f.trimmed()) {
			return "", "", &entry.ValidationError{Kind: entry.ErrNotNumeric, Field: f.name}
		}
	}

	punchIn = canonicalClock(fields[0].trimmed(), fields[1].trimmed())
	punchOut = canonicalClock(fields[2].trimmed(), fields[3].trimmed())

	day, ok := timefmt.ParseDate(strings.TrimSpace(form.Date))
	if !ok {
		return "", "", &entry.ValidationError{Kind: entry.ErrInvalidDate, Field: "date"}
	}

	if !instant(day, punchOut).After(instant(day, punchIn)) {
		return "", "", &entry.ValidationError{Kind: entry.ErrOutBeforeIn, Field: "punch_out"}
	}

	return punchIn, punchOut, nil
}

// PrepareAdd validates an add form into a pending entry patch.
func PrepareAdd(form entry.EntryForm) (entry.AddPatch, error) {
	punchIn, punchOut, err := ValidateForm(form)
	if err != nil {
		return entry.AddPatch{}, err
	}
	return entry.AddPatch{
		Date:     strings.TrimSpace(form.Date),
		PunchIn:  punchIn,
		PunchOut: punchOut,
		Status:   entry.StatusPending,
	}, nil
}

// PrepareUpdate validates an edit and diffs it against the stored times.
// It returns entry.ErrNoChange when both canonical times equal the stored
// ones. The patch is addressed by the stored punch-in.
func PrepareUpdate(form entry.EntryForm, original entry.Original) (entry.UpdatePatch, error) {
	punchIn, punchOut, err := ValidateForm(form)
	if err != nil {
		return entry.UpdatePatch{}, err
	}

	if punchIn == original.PunchIn && original.PunchOut != nil && punchOut == *original.PunchOut {
		return entry.UpdatePatch{}, entry.ErrNoChange
	}

	return entry.UpdatePatch{
		Date:            strings.TrimSpace(form.Date),
		OriginalPunchIn: original.PunchIn,
		NewPunchIn:      punchIn,
		PunchOut:        punchOut,
	}, nil
}

func canonicalClock(hours, minutes string) string {
	return pad2(hours) + ":" + pad2(minutes) + ":00"
}

func pad2(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

// instant combines a date with a canonical clock. time.Date normalizes
// overflowing hours and minutes into the following day/hour.
func instant(day time.Time, clock string) time.Time {
	hours, minutes := timefmt.SplitClock(clock)
	return time.Date(day.Year(), day.Month(), day.Day(), atoi(hours), atoi(minutes), 0, 0, time.UTC)
}

// atoi on a value already checked to be one or two ASCII digits.
func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
