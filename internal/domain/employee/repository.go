package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, companyID, id string) (Employee, error)
	// GetActiveByCompanyID returns active employees with skill levels and qualification IDs loaded
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
}
