package approval

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/approval"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/employee"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/entry"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/collection"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/timefmt"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the per-employee fetches in flight.
const DefaultConcurrency = 8

type ApprovalServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	entryRepo    entry.EntryRepository
	concurrency  int
}

func NewApprovalService(
	employeeRepo employee.EmployeeRepository,
	entryRepo entry.EntryRepository,
	concurrency int,
) approval.ApprovalService {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &ApprovalServiceImpl{
		employeeRepo: employeeRepo,
		entryRepo:    entryRepo,
		concurrency:  concurrency,
	}
}

// Load implements approval.ApprovalService.
func (s *ApprovalServiceImpl) Load(ctx context.Context, search string) (approval.ApprovalView, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return approval.ApprovalView{}, fmt.Errorf("failed to list employees: %w", err)
	}

	view := approval.ApprovalView{
		Search:        search,
		EmployeeCount: len(employees),
		Pending:       []approval.ApprovalRow{},
		Approved:      []approval.ApprovalRow{},
		Rejected:      []approval.ApprovalRow{},
	}
	if len(employees) == 0 {
		view.Empty = true
		return view, nil
	}

	all := collection.FilterEntries(s.fetchAll(ctx, employees), search)
	buckets := collection.SplitByStatus(all)

	view.Pending = collection.Map(buckets.Pending, buildRow)
	view.Approved = collection.Map(buckets.Approved, buildRow)
	view.Rejected = collection.Map(buckets.Rejected, buildRow)
	return view, nil
}

// fetchAll loads every employee's entries concurrently and flattens them in
// roster order. A failed employee contributes no entries.
func (s *ApprovalServiceImpl) fetchAll(ctx context.Context, employees []employee.Employee) []entry.PunchEntry {
	results := make([][]entry.PunchEntry, len(employees))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			entries, err := s.entryRepo.ListByEmployee(ctx, emp.Code)
			if err != nil {
				slog.Warn("Failed to fetch entries for approvals", "employee_code", emp.Code, "error", err)
				return nil
			}
			for j := range entries {
				entries[j].EmployeeCode = emp.Code
				entries[j].EmployeeName = emp.Name
			}
			results[i] = entries
			return nil
		})
	}
	_ = g.Wait()

	var flat []entry.PunchEntry
	for _, entries := range results {
		flat = append(flat, entries...)
	}
	return flat
}

func buildRow(e entry.PunchEntry) approval.ApprovalRow {
	return approval.ApprovalRow{
		EmployeeCode: e.EmployeeCode,
		EmployeeName: e.EmployeeName,
		Date:         e.Date,
		DisplayDate:  timefmt.FormatDate(e.Date),
		PunchIn:      e.PunchIn,
		DisplayIn:    timefmt.ToDisplay(e.PunchIn),
		DisplayOut:   timefmt.ToDisplay(e.PunchOut),
		Overtime:     timefmt.ToDisplay(e.Overtime),
		Status:       e.Status,
		Badge:        e.Status.Badge(),
		CanDecide:    e.Status == entry.StatusPending,
	}
}
