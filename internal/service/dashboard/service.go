package dashboard

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/dashboard"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/entry"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/collection"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/timefmt"
)

type DashboardServiceImpl struct {
	entryRepo entry.EntryRepository
}

func NewDashboardService(entryRepo entry.EntryRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		entryRepo: entryRepo,
	}
}

// Load implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Load(ctx context.Context, filter dashboard.DashboardFilter) (dashboard.DashboardView, error) {
	if err := filter.Validate(); err != nil {
		return dashboard.DashboardView{}, err
	}

	view := dashboard.DashboardView{
		EmployeeCode:  filter.EmployeeCode,
		Cards:         []dashboard.DayCard{},
		TotalOvertime: collection.SumOvertime(nil),
		Empty:         true,
	}
	if filter.EmployeeCode == "" {
		return view, nil
	}

	entries, err := s.entryRepo.ListByEmployee(ctx, filter.EmployeeCode)
	if err != nil {
		return dashboard.DashboardView{}, fmt.Errorf("failed to fetch entries for %s: %w", filter.EmployeeCode, err)
	}

	filtered := collection.FilterByPeriod(entries, filter.Month, filter.Year)
	sorted := collection.SortByDate(filtered, filter.LatestFirst)

	for _, group := range collection.GroupByDate(sorted) {
		view.Cards = append(view.Cards, dashboard.DayCard{
			Date:    group.Date,
			Heading: timefmt.FormatDate(group.Date),
			Rows:    collection.Map(group.Entries, buildRow),
		})
	}

	view.EntryCount = len(sorted)
	view.PendingCount = collection.CountByStatus(sorted, entry.StatusPending)
	view.TotalOvertime = collection.SumOvertime(sorted)
	view.Empty = len(sorted) == 0
	return view, nil
}

func buildRow(e entry.PunchEntry) dashboard.EntryRow {
	row := dashboard.EntryRow{
		EmployeeCode: e.EmployeeCode,
		Date:         e.Date,
		PunchInRaw:   e.PunchIn,
		PunchIn:      timefmt.ToDisplay(e.PunchIn),
		PunchOut:     timefmt.ToDisplay(e.PunchOut),
		Overtime:     timefmt.ToDisplay(e.Overtime),
		Status:       e.Status,
		StatusLabel:  e.Status.Label(),
		Badge:        e.Status.Badge(),
	}

	if e.Status == entry.StatusPending {
		row.Actions = dashboard.RowActions{Approve: true, Reject: true}
		return row
	}

	row.Actions = dashboard.RowActions{Update: true, Delete: true}
	row.Prefill = buildPrefill(e)
	return row
}

func buildPrefill(e entry.PunchEntry) *dashboard.UpdatePrefill {
	original := e.Original()
	prefill := &dashboard.UpdatePrefill{
		Date:            e.Date,
		OriginalPunchIn: original.PunchIn,
	}
	if original.PunchIn != "" {
		prefill.HoursIn, prefill.MinutesIn = timefmt.SplitClock(original.PunchIn)
	}
	if original.PunchOut != nil && *original.PunchOut != "" {
		prefill.OriginalPunchOut = original.PunchOut
		prefill.HoursOut, prefill.MinutesOut = timefmt.SplitClock(*original.PunchOut)
	}
	return prefill
}
