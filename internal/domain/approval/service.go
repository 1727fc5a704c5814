package approval

import "context"

// ApprovalService builds the cross-employee approvals view.
type ApprovalService interface {
	// Load fetches the roster and every employee's entries, then applies
	// the search. Employees whose entries fail to load are skipped.
	Load(ctx context.Context, search string) (ApprovalView, error)
}
