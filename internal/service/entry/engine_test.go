package entry

import (
	"errors"
	"testing"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/entry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func form(date, hIn, mIn, hOut, mOut string) entry.EntryForm {
	return entry.EntryForm{Date: date, HoursIn: hIn, MinutesIn: mIn, HoursOut: hOut, MinutesOut: mOut}
}

func TestPrepareAdd_Success(t *testing.T) {
	patch, err := PrepareAdd(form("2025-03-04", "9", "5", "10", "5"))

	require.NoError(t, err)
	assert.Equal(t, entry.AddPatch{
		Date:     "2025-03-04",
		PunchIn:  "09:05:00",
		PunchOut: "10:05:00",
		Status:   entry.StatusPending,
	}, patch)
}

func TestValidateForm_Errors(t *testing.T) {
	tests := []struct {
		name  string
		form  entry.EntryForm
		kind  error
		field string
	}{
		{name: "missing hours in", form: form("2025-03-04", "", "00", "10", "00"), kind: entry.ErrMissingField, field: "hours_in"},
		{name: "whitespace minutes out", form: form("2025-03-04", "9", "00", "10", "   "), kind: entry.ErrMissingField, field: "minutes_out"},
		{name: "presence before format", form: form("2025-03-04", "ab", "00", "", "00"), kind: entry.ErrMissingField, field: "hours_out"},
		{name: "letters", form: form("2025-03-04", "9a", "00", "10", "00"), kind: entry.ErrNotNumeric, field: "hours_in"},
		{name: "three digits", form: form("2025-03-04", "9", "000", "10", "00"), kind: entry.ErrNotNumeric, field: "minutes_in"},
		{name: "negative", form: form("2025-03-04", "9", "00", "-1", "00"), kind: entry.ErrNotNumeric, field: "hours_out"},
		{name: "out before in", form: form("2025-03-04", "10", "00", "09", "00"), kind: entry.ErrOutBeforeIn, field: "punch_out"},
		{name: "out equal to in", form: form("2025-03-04", "10", "0", "10", "00"), kind: entry.ErrOutBeforeIn, field: "punch_out"},
		{name: "bad date", form: form("March 4", "9", "00", "10", "00"), kind: entry.ErrInvalidDate, field: "date"},
		{name: "empty date", form: form("", "9", "00", "10", "00"), kind: entry.ErrInvalidDate, field: "date"},
		{name: "fields checked before date", form: form("March 4", "", "00", "10", "00"), kind: entry.ErrMissingField, field: "hours_in"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ValidateForm(tt.form)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
			assert.True(t, entry.IsValidation(err))

			var verr *entry.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidateForm_Canonicalizes(t *testing.T) {
	in, out, err := ValidateForm(form("2025-03-04", " 7 ", "3", "07", " 30"))

	require.NoError(t, err)
	assert.Equal(t, "07:03:00", in)
	assert.Equal(t, "07:30:00", out)
}

func TestValidateForm_OutOfRangeDigitsArePermitted(t *testing.T) {
	in, out, err := ValidateForm(form("2025-03-04", "23", "00", "99", "00"))

	require.NoError(t, err)
	assert.Equal(t, "23:00:00", in)
	assert.Equal(t, "99:00:00", out)

	// 10:75 rolls over to 11:15, still after 11:00
	_, _, err = ValidateForm(form("2025-03-04", "11", "00", "10", "75"))
	assert.NoError(t, err)
}

func TestValidateForm_Deterministic(t *testing.T) {
	f := form("2025-03-04", "8", "15", "17", "45")
	in1, out1, err1 := ValidateForm(f)
	in2, out2, err2 := ValidateForm(f)

	assert.Equal(t, in1, in2)
	assert.Equal(t, out1, out2)
	assert.Equal(t, err1, err2)
}

func TestPrepareUpdate(t *testing.T) {
	original := entry.Original{PunchIn: "09:00:00", PunchOut: strPtr("10:00:00")}

	tests := []struct {
		name     string
		form     entry.EntryForm
		original entry.Original
		want     entry.UpdatePatch
		wantErr  error
	}{
		{
			name:     "unchanged values",
			form:     form("2025-03-04", "9", "0", "10", "00"),
			original: original,
			wantErr:  entry.ErrNoChange,
		},
		{
			name:     "punch-out changed",
			form:     form("2025-03-04", "09", "00", "11", "30"),
			original: original,
			want:     entry.UpdatePatch{Date: "2025-03-04", OriginalPunchIn: "09:00:00", NewPunchIn: "09:00:00", PunchOut: "11:30:00"},
		},
		{
			name:     "punch-in changed keeps original key",
			form:     form("2025-03-04", "8", "45", "10", "00"),
			original: original,
			want:     entry.UpdatePatch{Date: "2025-03-04", OriginalPunchIn: "09:00:00", NewPunchIn: "08:45:00", PunchOut: "10:00:00"},
		},
		{
			name:     "missing stored punch-out is a change",
			form:     form("2025-03-04", "9", "00", "17", "00"),
			original: entry.Original{PunchIn: "09:00:00"},
			want:     entry.UpdatePatch{Date: "2025-03-04", OriginalPunchIn: "09:00:00", NewPunchIn: "09:00:00", PunchOut: "17:00:00"},
		},
		{
			name:     "ordering is checked before no-op",
			form:     form("2025-03-04", "10", "00", "09", "00"),
			original: entry.Original{PunchIn: "10:00:00", PunchOut: strPtr("09:00:00")},
			wantErr:  entry.ErrOutBeforeIn,
		},
		{
			name:     "validation errors win",
			form:     form("2025-03-04", "x", "00", "10", "00"),
			original: original,
			wantErr:  entry.ErrNotNumeric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patch, err := PrepareUpdate(tt.form, tt.original)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, entry.UpdatePatch{}, patch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, patch)
		})
	}
}

func TestPrepareUpdate_NoChangeIsNotValidation(t *testing.T) {
	_, err := PrepareUpdate(form("2025-03-04", "9", "00", "10", "00"), entry.Original{PunchIn: "09:00:00", PunchOut: strPtr("10:00:00")})

	assert.True(t, entry.IsNoChange(err))
	assert.False(t, entry.IsValidation(err))
}
