package document

import "context"

// DocumentService defines the document pages
type DocumentService interface {
	// GetEmployeeDocuments merges records and storage files of an employee
	GetEmployeeDocuments(ctx context.Context, employeeID string) (*EmployeeDocumentsResponse, error)

	// GetTrainingDocuments returns the mobile document list of a training
	GetTrainingDocuments(ctx context.Context, trainingID string) (*FlutterTrainingDocumentsResponse, error)
}
