package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/dashboard"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/entry"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockEntryRepository struct {
	mock.Mock
	entry.EntryRepository
}

func (m *mockEntryRepository) ListByEmployee(ctx context.Context, employeeCode string) ([]entry.PunchEntry, error) {
	args := m.Called(ctx, employeeCode)
	entries, _ := args.Get(0).([]entry.PunchEntry)
	return entries, args.Error(1)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func punch(date, in, out, overtime string, status entry.Status) entry.PunchEntry {
	e := entry.PunchEntry{Date: date, Status: status}
	if in != "" {
		e.PunchIn = strPtr(in)
	}
	if out != "" {
		e.PunchOut = strPtr(out)
	}
	if overtime != "" {
		e.Overtime = strPtr(overtime)
	}
	return e
}

func TestDashboardService_Load_NoEmployeeSkipsFetch(t *testing.T) {
	repo := new(mockEntryRepository)
	svc := NewDashboardService(repo)

	view, err := svc.Load(context.Background(), dashboard.DashboardFilter{})

	require.NoError(t, err)
	assert.True(t, view.Empty)
	assert.Empty(t, view.Cards)
	assert.Equal(t, "00:00", view.TotalOvertime)
	repo.AssertNotCalled(t, "ListByEmployee", mock.Anything, mock.Anything)
}

func TestDashboardService_Load_GroupsAndTotals(t *testing.T) {
	ctx := context.Background()
	repo := new(mockEntryRepository)
	svc := NewDashboardService(repo)

	repo.On("ListByEmployee", ctx, "E001").Return([]entry.PunchEntry{
		punch("2025-03-04", "09:00:00", "17:00:00", "01:30:00", entry.StatusApproved),
		punch("2025-03-05", "08:00:00", "", "", entry.StatusPending),
		punch("2025-03-04", "18:00:00", "19:00:00", "01:00:00", entry.StatusPending),
		punch("2025-04-01", "09:00:00", "10:00:00", "00:45:00", entry.StatusRejected),
	}, nil)

	view, err := svc.Load(ctx, dashboard.DashboardFilter{
		EmployeeCode: "E001",
		Month:        intPtr(3),
		Year:         intPtr(2025),
		LatestFirst:  true,
	})

	require.NoError(t, err)
	require.Len(t, view.Cards, 2)
	assert.Equal(t, "2025-03-05", view.Cards[0].Date)
	assert.Equal(t, "March 5, 2025", view.Cards[0].Heading)
	assert.Equal(t, "2025-03-04", view.Cards[1].Date)
	require.Len(t, view.Cards[1].Rows, 2)
	assert.Equal(t, "09h 00", view.Cards[1].Rows[0].PunchIn)
	assert.Equal(t, "18h 00", view.Cards[1].Rows[1].PunchIn)

	assert.Equal(t, 3, view.EntryCount)
	assert.Equal(t, 2, view.PendingCount)
	assert.Equal(t, "02:30", view.TotalOvertime)
	assert.False(t, view.Empty)
}

func TestDashboardService_Load_RowActions(t *testing.T) {
	ctx := context.Background()
	repo := new(mockEntryRepository)
	svc := NewDashboardService(repo)

	repo.On("ListByEmployee", ctx, "E001").Return([]entry.PunchEntry{
		punch("2025-03-04", "09:00:00", "", "", entry.StatusPending),
		punch("2025-03-04", "10:15:00", "12:45:00", "", entry.StatusApproved),
	}, nil)

	view, err := svc.Load(ctx, dashboard.DashboardFilter{EmployeeCode: "E001"})
	require.NoError(t, err)
	require.Len(t, view.Cards, 1)

	pending := view.Cards[0].Rows[0]
	assert.Equal(t, dashboard.RowActions{Approve: true, Reject: true}, pending.Actions)
	assert.Nil(t, pending.Prefill)
	assert.Equal(t, "N/A", pending.PunchOut)
	assert.Equal(t, "warning", pending.Badge)

	approved := view.Cards[0].Rows[1]
	assert.Equal(t, dashboard.RowActions{Update: true, Delete: true}, approved.Actions)
	require.NotNil(t, approved.Prefill)
	assert.Equal(t, "10:15:00", approved.Prefill.OriginalPunchIn)
	require.NotNil(t, approved.Prefill.OriginalPunchOut)
	assert.Equal(t, "12:45:00", *approved.Prefill.OriginalPunchOut)
	assert.Equal(t, "10", approved.Prefill.HoursIn)
	assert.Equal(t, "15", approved.Prefill.MinutesIn)
	assert.Equal(t, "12", approved.Prefill.HoursOut)
	assert.Equal(t, "45", approved.Prefill.MinutesOut)
	assert.Equal(t, "success", approved.Badge)
}

func TestDashboardService_Load_RowsCarryStoredKey(t *testing.T) {
	ctx := context.Background()
	repo := new(mockEntryRepository)
	svc := NewDashboardService(repo)

	pending := punch("2025-03-04", "09:30:00", "", "", entry.StatusPending)
	pending.EmployeeCode = "E001"
	approved := punch("2025-03-05", "08:15:00", "17:00:00", "", entry.StatusApproved)
	approved.EmployeeCode = "E001"
	repo.On("ListByEmployee", ctx, "E001").Return([]entry.PunchEntry{pending, approved}, nil)

	view, err := svc.Load(ctx, dashboard.DashboardFilter{EmployeeCode: "E001"})
	require.NoError(t, err)
	require.Len(t, view.Cards, 2)

	for _, card := range view.Cards {
		row := card.Rows[0]
		assert.Equal(t, "E001", row.EmployeeCode)
		require.NotNil(t, row.PunchInRaw, "row on %s", card.Date)
	}

	pendingRow := view.Cards[0].Rows[0]
	assert.True(t, pendingRow.Actions.Approve)
	assert.Equal(t, "09:30:00", *pendingRow.PunchInRaw)
	assert.Equal(t, "09h 30", pendingRow.PunchIn)
	assert.Equal(t, "08:15:00", *view.Cards[1].Rows[0].PunchInRaw)
}

func TestDashboardService_Load_EmptyPeriod(t *testing.T) {
	ctx := context.Background()
	repo := new(mockEntryRepository)
	svc := NewDashboardService(repo)

	repo.On("ListByEmployee", ctx, "E001").Return([]entry.PunchEntry{
		punch("2025-03-04", "09:00:00", "", "", entry.StatusPending),
	}, nil)

	view, err := svc.Load(ctx, dashboard.DashboardFilter{EmployeeCode: "E001", Year: intPtr(2024)})

	require.NoError(t, err)
	assert.True(t, view.Empty)
	assert.Empty(t, view.Cards)
	assert.Equal(t, 0, view.PendingCount)
}

func TestDashboardService_Load_InvalidFilter(t *testing.T) {
	repo := new(mockEntryRepository)
	svc := NewDashboardService(repo)

	_, err := svc.Load(context.Background(), dashboard.DashboardFilter{EmployeeCode: "E001", Month: intPtr(13)})

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs.ToMap(), "month")
	repo.AssertNotCalled(t, "ListByEmployee", mock.Anything, mock.Anything)
}

func TestDashboardService_Load_UpstreamError(t *testing.T) {
	ctx := context.Background()
	repo := new(mockEntryRepository)
	svc := NewDashboardService(repo)

	upstream := errors.New("connection refused")
	repo.On("ListByEmployee", ctx, "E001").Return(nil, upstream)

	_, err := svc.Load(ctx, dashboard.DashboardFilter{EmployeeCode: "E001"})
	assert.ErrorIs(t, err, upstream)
}
