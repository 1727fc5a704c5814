package entry

import "context"

// EntryRepository is the punch clock API seen from the entry domain. Every
// mutation returns the message the API answered with.
type EntryRepository interface {
	// ListByEmployee returns all entries of an employee, always as a slice.
	ListByEmployee(ctx context.Context, employeeCode string) ([]PunchEntry, error)

	Add(ctx context.Context, employeeCode string, patch AddPatch) (string, error)

	Update(ctx context.Context, employeeCode string, patch UpdatePatch) (string, error)

	// Delete removes the entry addressed by key (date + stored punch-in).
	Delete(ctx context.Context, key Key) (string, error)

	SetApproval(ctx context.Context, employeeCode string, patch ApprovalPatch) (string, error)
}
