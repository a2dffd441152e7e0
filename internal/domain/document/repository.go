package document

import "context"

type DocumentRepository interface {
	ListByEmployee(ctx context.Context, employeeID string) ([]StoredDocument, error)
	ListByTraining(ctx context.Context, trainingID string) ([]StoredDocument, error)
}
