package entry

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/entry"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockEntryRepository struct {
	mock.Mock
}

func (m *mockEntryRepository) ListByEmployee(ctx context.Context, employeeCode string) ([]entry.PunchEntry, error) {
	args := m.Called(ctx, employeeCode)
	entries, _ := args.Get(0).([]entry.PunchEntry)
	return entries, args.Error(1)
}

func (m *mockEntryRepository) Add(ctx context.Context, employeeCode string, patch entry.AddPatch) (string, error) {
	args := m.Called(ctx, employeeCode, patch)
	return args.String(0), args.Error(1)
}

func (m *mockEntryRepository) Update(ctx context.Context, employeeCode string, patch entry.UpdatePatch) (string, error) {
	args := m.Called(ctx, employeeCode, patch)
	return args.String(0), args.Error(1)
}

func (m *mockEntryRepository) Delete(ctx context.Context, key entry.Key) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockEntryRepository) SetApproval(ctx context.Context, employeeCode string, patch entry.ApprovalPatch) (string, error) {
	args := m.Called(ctx, employeeCode, patch)
	return args.String(0), args.Error(1)
}

func TestEntryService_Add_Success(t *testing.T) {
	ctx := context.Background()
	repo := new(mockEntryRepository)
	svc := NewEntryService(repo)

	repo.On("Add", ctx, "E001", entry.AddPatch{
		Date:     "2025-03-04",
		PunchIn:  "09:05:00",
		PunchOut: "10:05:00",
		Status:   entry.StatusPending,
	}).Return("Entry added", nil)

	result, err := svc.Add(ctx, entry.AddEntryRequest{
		EmployeeCode: "E001",
		EntryForm:    form("2025-03-04", "9", "5", "10", "5"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Entry added", result.Message)
	repo.AssertExpectations(t)
}

func TestEntryService_Add_ValidationNeverReachesRepository(t *testing.T) {
	ctx := context.Background()
	repo := new(mockEntryRepository)
	svc := NewEntryService(repo)

	_, err := svc.Add(ctx, entry.AddEntryRequest{
		EmployeeCode: "E001",
		EntryForm:    form("2025-03-04", "10", "00", "09", "00"),
	})

	assert.ErrorIs(t, err, entry.ErrOutBeforeIn)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestEntryService_Add_RequiresEmployeeAndDate(t *testing.T) {
	repo := new(mockEntryRepository)
	svc := NewEntryService(repo)

	for _, req := range []entry.AddEntryRequest{
		{EntryForm: form("2025-03-04", "9", "00", "10", "00")},
		{EmployeeCode: "E001", EntryForm: form("  ", "9", "00", "10", "00")},
	} {
		_, err := svc.Add(context.Background(), req)
		assert.ErrorIs(t, err, entry.ErrEmployeeRequired)
	}
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestEntryService_Add_RejectsBadEmployeeCode(t *testing.T) {
	repo := new(mockEntryRepository)
	svc := NewEntryService(repo)

	_, err := svc.Add(context.Background(), entry.AddEntryRequest{
		EmployeeCode: "a/b",
		EntryForm:    form("2025-03-04", "9", "00", "10", "00"),
	})

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs.ToMap(), "employee_code")
}

func TestEntryService_Update_NoChange(t *testing.T) {
	repo := new(mockEntryRepository)
	svc := NewEntryService(repo)

	_, err := svc.Update(context.Background(), entry.UpdateEntryRequest{
		EmployeeCode:     "E001",
		EntryForm:        form("2025-03-04", "09", "00", "10", "00"),
		OriginalPunchIn:  "09:00:00",
		OriginalPunchOut: strPtr("10:00:00"),
	})

	assert.ErrorIs(t, err, entry.ErrNoChange)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestEntryService_Update_SendsOriginalKey(t *testing.T) {
	ctx := context.Background()
	repo := new(mockEntryRepository)
	svc := NewEntryService(repo)

	repo.On("Update", ctx, "E001", entry.UpdatePatch{
		Date:            "2025-03-04",
		OriginalPunchIn: "09:00:00",
		NewPunchIn:      "08:30:00",
		PunchOut:        "10:00:00",
	}).Return("Entry updated", nil)

	result, err := svc.Update(ctx, entry.UpdateEntryRequest{
		EmployeeCode:     "E001",
		EntryForm:        form("2025-03-04", "8", "30", "10", "0"),
		OriginalPunchIn:  "09:00:00",
		OriginalPunchOut: strPtr("10:00:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Entry updated", result.Message)
	repo.AssertExpectations(t)
}

func TestEntryService_Update_EmptyStoredPunchOutIsAbsent(t *testing.T) {
	ctx := context.Background()
	repo := new(mockEntryRepository)
	svc := NewEntryService(repo)

	repo.On("Update", ctx, "E001", mock.AnythingOfType("entry.UpdatePatch")).Return("ok", nil)

	_, err := svc.Update(ctx, entry.UpdateEntryRequest{
		EmployeeCode:     "E001",
		EntryForm:        form("2025-03-04", "9", "00", "10", "00"),
		OriginalPunchIn:  "09:00:00",
		OriginalPunchOut: strPtr(""),
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestEntryService_Update_WrapsRepositoryError(t *testing.T) {
	ctx := context.Background()
	repo := new(mockEntryRepository)
	svc := NewEntryService(repo)

	upstream := errors.New("entry not found")
	repo.On("Update", ctx, "E001", mock.Anything).Return("", upstream)

	_, err := svc.Update(ctx, entry.UpdateEntryRequest{
		EmployeeCode:    "E001",
		EntryForm:       form("2025-03-04", "9", "00", "11", "00"),
		OriginalPunchIn: "09:00:00",
	})

	assert.ErrorIs(t, err, upstream)
}

func TestEntryService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := new(mockEntryRepository)
	svc := NewEntryService(repo)

	key := entry.Key{EmployeeCode: "E001", Date: "2025-03-04", PunchIn: "09:00:00"}
	repo.On("Delete", ctx, key).Return("Entry deleted", nil)

	result, err := svc.Delete(ctx, entry.DeleteEntryRequest{EmployeeCode: "E001", Date: "2025-03-04", PunchIn: "09:00:00"})

	require.NoError(t, err)
	assert.Equal(t, "Entry deleted", result.Message)
	repo.AssertExpectations(t)
}

func TestEntryService_SetApproval(t *testing.T) {
	ctx := context.Background()
	repo := new(mockEntryRepository)
	svc := NewEntryService(repo)

	repo.On("SetApproval", ctx, "E001", entry.ApprovalPatch{
		Date:    "2025-03-04",
		PunchIn: "09:00:00",
		Status:  entry.StatusApproved,
	}).Return("Status updated", nil)

	result, err := svc.SetApproval(ctx, entry.ApprovalRequest{
		EmployeeCode: "E001",
		Date:         "2025-03-04",
		PunchIn:      "09:00:00",
		Status:       entry.StatusApproved,
	})

	require.NoError(t, err)
	assert.Equal(t, "Status updated", result.Message)
	repo.AssertExpectations(t)
}

func TestEntryService_SetApproval_RejectsPending(t *testing.T) {
	repo := new(mockEntryRepository)
	svc := NewEntryService(repo)

	_, err := svc.SetApproval(context.Background(), entry.ApprovalRequest{
		EmployeeCode: "E001",
		Date:         "2025-03-04",
		PunchIn:      "09:00:00",
		Status:       entry.StatusPending,
	})

	assert.ErrorIs(t, err, entry.ErrInvalidApprovalStatus)
	repo.AssertNotCalled(t, "SetApproval", mock.Anything, mock.Anything, mock.Anything)
}

func TestEntryService_Delete_FallbackMessage(t *testing.T) {
	ctx := context.Background()
	repo := new(mockEntryRepository)
	svc := NewEntryService(repo)

	repo.On("Delete", ctx, mock.Anything).Return("", nil)

	result, err := svc.Delete(ctx, entry.DeleteEntryRequest{EmployeeCode: "E001", Date: "2025-03-04", PunchIn: "09:00:00"})

	require.NoError(t, err)
	assert.Equal(t, entry.MessageDeleted, result.Message)
}

func TestEntryService_KeyPunchInIsPersistedForm(t *testing.T) {
	tests := []struct {
		name    string
		punchIn string
	}{
		{name: "stored value", punchIn: "09:30:00"},
		{name: "without seconds", punchIn: "09:30"},
		{name: "as displayed", punchIn: "09h 30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := new(mockEntryRepository)
			svc := NewEntryService(repo)

			repo.On("Delete", ctx, entry.Key{EmployeeCode: "E001", Date: "2025-03-04", PunchIn: "09:30:00"}).Return("", nil)
			repo.On("SetApproval", ctx, "E001", entry.ApprovalPatch{
				Date:    "2025-03-04",
				PunchIn: "09:30:00",
				Status:  entry.StatusRejected,
			}).Return("", nil)
			repo.On("Update", ctx, "E001", entry.UpdatePatch{
				Date:            "2025-03-04",
				OriginalPunchIn: "09:30:00",
				NewPunchIn:      "08:00:00",
				PunchOut:        "17:00:00",
			}).Return("", nil)

			_, err := svc.Delete(ctx, entry.DeleteEntryRequest{EmployeeCode: "E001", Date: "2025-03-04", PunchIn: tt.punchIn})
			require.NoError(t, err)

			_, err = svc.SetApproval(ctx, entry.ApprovalRequest{
				EmployeeCode: "E001",
				Date:         "2025-03-04",
				PunchIn:      tt.punchIn,
				Status:       entry.StatusRejected,
			})
			require.NoError(t, err)

			_, err = svc.Update(ctx, entry.UpdateEntryRequest{
				EmployeeCode:     "E001",
				EntryForm:        form("2025-03-04", "8", "00", "17", "00"),
				OriginalPunchIn:  tt.punchIn,
				OriginalPunchOut: strPtr("17:00"),
			})
			require.NoError(t, err)

			repo.AssertExpectations(t)
		})
	}
}

func TestEntryService_Update_NoChangeAgainstDisplayedOriginal(t *testing.T) {
	repo := new(mockEntryRepository)
	svc := NewEntryService(repo)

	_, err := svc.Update(context.Background(), entry.UpdateEntryRequest{
		EmployeeCode:     "E001",
		EntryForm:        form("2025-03-04", "09", "30", "17", "00"),
		OriginalPunchIn:  "09h 30",
		OriginalPunchOut: strPtr("17h 00"),
	})

	assert.ErrorIs(t, err, entry.ErrNoChange)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}
