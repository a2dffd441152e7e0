package department

import "context"

type DepartmentRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (Department, error)
	GetByCompanyID(ctx context.Context, companyID string) ([]Department, error)
}
