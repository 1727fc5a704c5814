package entry

import "context"

// EntryService validates user edits and forwards the resulting patches.
type EntryService interface {
	// List returns the entries of one employee.
	List(ctx context.Context, employeeCode string) ([]PunchEntry, error)

	// Add validates the form and creates a pending entry.
	Add(ctx context.Context, req AddEntryRequest) (MutationResult, error)

	// Update validates the form, diffs it against the stored times and
	// returns ErrNoChange when there is nothing to send.
	Update(ctx context.Context, req UpdateEntryRequest) (MutationResult, error)

	Delete(ctx context.Context, req DeleteEntryRequest) (MutationResult, error)

	// SetApproval approves or rejects a pending entry.
	SetApproval(ctx context.Context, req ApprovalRequest) (MutationResult, error)
}
