package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard aggregates the company's training data as of date
	// (format "YYYY-MM-DD", defaults to today)
	GetDashboard(ctx context.Context, date string) (*DashboardResponse, error)
}
