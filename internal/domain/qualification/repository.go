package qualification

import "context"

type QualificationRepository interface {
	ListByCompany(ctx context.Context, companyID string) ([]Qualification, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Qualification, error)
	ListByTraining(ctx context.Context, trainingID string) ([]Qualification, error)
}
