package storage

import (
	"context"
	"time"
)

// FileStorage is the read side of the object storage holding uploaded
// documents. Uploads happen in the HR service; this service only lists.
type FileStorage interface {
	// List returns every object whose key starts with prefix
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)

	// GetURL generates a presigned/public URL
	GetURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

// ObjectInfo describes one stored object
type ObjectInfo struct {
	Key         string // path relative to the storage root, slash separated
	Name        string // last path element
	ContentType string
	Size        int64
	UpdatedAt   time.Time
}

// EmployeeDocumentsPrefix is where an employee's uploaded documents live
func EmployeeDocumentsPrefix(employeeID string) string {
	return "documents/" + employeeID + "/"
}

// TrainingDocumentsPrefix is where files attached to a training live
func TrainingDocumentsPrefix(trainingID string) string {
	return "trainings/" + trainingID + "/"
}
