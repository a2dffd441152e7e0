package training

import "context"

type TrainingRepository interface {
	GetByID(ctx context.Context, companyID, id string) (Training, error)
	ListByCompany(ctx context.Context, companyID string) ([]Training, error)
	ListByEmployee(ctx context.Context, companyID, employeeID string) ([]Training, error)
}

type ProgramRepository interface {
	GetByID(ctx context.Context, companyID, id string) (Program, error)
	ListByCompany(ctx context.Context, companyID string) ([]Program, error)
}

type CertificateRepository interface {
	ListByTraining(ctx context.Context, trainingID string) ([]Certificate, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Certificate, error)
}
