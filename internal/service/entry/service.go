package entry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/entry"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/timefmt"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/validator"
)

type EntryServiceImpl struct {
	entry.EntryRepository
}

func NewEntryService(entryRepo entry.EntryRepository) entry.EntryService {
	return &EntryServiceImpl{
		EntryRepository: entryRepo,
	}
}

// List implements entry.EntryService.
func (s *EntryServiceImpl) List(ctx context.Context, employeeCode string) ([]entry.PunchEntry, error) {
	entries, err := s.EntryRepository.ListByEmployee(ctx, employeeCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries for %s: %w", employeeCode, err)
	}
	return entries, nil
}

// Add implements entry.EntryService.
func (s *EntryServiceImpl) Add(ctx context.Context, req entry.AddEntryRequest) (entry.MutationResult, error) {
	if validator.IsEmpty(req.EmployeeCode) || validator.IsEmpty(req.Date) {
		return entry.MutationResult{}, entry.ErrEmployeeRequired
	}
	if err := req.Validate(); err != nil {
		return entry.MutationResult{}, err
	}

	patch, err := PrepareAdd(req.EntryForm)
	if err != nil {
		return entry.MutationResult{}, err
	}

	message, err := s.EntryRepository.Add(ctx, req.EmployeeCode, patch)
	if err != nil {
		return entry.MutationResult{}, fmt.Errorf("failed to add entry: %w", err)
	}

	slog.Info("Entry added", "employee_code", req.EmployeeCode, "date", patch.Date, "punch_in", patch.PunchIn)
	return entry.MutationResult{Message: orDefault(message, entry.MessageAdded)}, nil
}

// Update implements entry.EntryService.
func (s *EntryServiceImpl) Update(ctx context.Context, req entry.UpdateEntryRequest) (entry.MutationResult, error) {
	// Stored times are the upstream lookup key and may come back as displayed.
	req.OriginalPunchIn = timefmt.ToPersisted(req.OriginalPunchIn)
	if req.OriginalPunchOut != nil {
		out := timefmt.ToPersisted(*req.OriginalPunchOut)
		req.OriginalPunchOut = &out
	}
	if err := req.Validate(); err != nil {
		return entry.MutationResult{}, err
	}

	patch, err := PrepareUpdate(req.EntryForm, req.Original())
	if err != nil {
		return entry.MutationResult{}, err
	}

	message, err := s.EntryRepository.Update(ctx, req.EmployeeCode, patch)
	if err != nil {
		return entry.MutationResult{}, fmt.Errorf("failed to update entry: %w", err)
	}

	slog.Info("Entry updated",
		"employee_code", req.EmployeeCode,
		"date", patch.Date,
		"original_punch_in", patch.OriginalPunchIn,
		"new_punch_in", patch.NewPunchIn,
	)
	return entry.MutationResult{Message: orDefault(message, entry.MessageUpdated)}, nil
}

// Delete implements entry.EntryService.
func (s *EntryServiceImpl) Delete(ctx context.Context, req entry.DeleteEntryRequest) (entry.MutationResult, error) {
	req.PunchIn = timefmt.ToPersisted(req.PunchIn)
	if err := req.Validate(); err != nil {
		return entry.MutationResult{}, err
	}

	message, err := s.EntryRepository.Delete(ctx, req.Key())
	if err != nil {
		return entry.MutationResult{}, fmt.Errorf("failed to delete entry: %w", err)
	}

	slog.Info("Entry deleted", "employee_code", req.EmployeeCode, "date", req.Date, "punch_in", req.PunchIn)
	return entry.MutationResult{Message: orDefault(message, entry.MessageDeleted)}, nil
}

// SetApproval implements entry.EntryService.
func (s *EntryServiceImpl) SetApproval(ctx context.Context, req entry.ApprovalRequest) (entry.MutationResult, error) {
	if !req.Status.IsDecision() {
		return entry.MutationResult{}, entry.ErrInvalidApprovalStatus
	}
	req.PunchIn = timefmt.ToPersisted(req.PunchIn)
	if err := req.Validate(); err != nil {
		return entry.MutationResult{}, err
	}

	key := req.Key()
	message, err := s.EntryRepository.SetApproval(ctx, key.EmployeeCode, entry.ApprovalPatch{
		Date:    key.Date,
		PunchIn: key.PunchIn,
		Status:  req.Status,
	})
	if err != nil {
		return entry.MutationResult{}, fmt.Errorf("failed to set approval: %w", err)
	}

	slog.Info("Entry approval updated", "employee_code", req.EmployeeCode, "date", req.Date, "status", req.Status)
	return entry.MutationResult{Message: orDefault(message, entry.MessageApprovalUpdated)}, nil
}

// The API does not always answer a mutation with a message.
func orDefault(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}
