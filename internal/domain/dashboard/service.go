package dashboard

import "context"

// DashboardService defines the per-employee dashboard
type DashboardService interface {
	// Load fetches one employee's entries and shapes them into date cards.
	// An empty employee code yields an empty view without fetching.
	Load(ctx context.Context, filter DashboardFilter) (DashboardView, error)
}
