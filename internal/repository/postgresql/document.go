package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/training-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/database"
)

type documentRepositoryImpl struct {
	db *database.DB
}

func NewDocumentRepository(db *database.DB) document.DocumentRepository {
	return &documentRepositoryImpl{db: db}
}

func (r *documentRepositoryImpl) list(ctx context.Context, query string, arg string) ([]document.StoredDocument, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	documents := []document.StoredDocument{}
	for rows.Next() {
		var d document.StoredDocument
		err := rows.Scan(
			&d.ID, &d.EmployeeID, &d.TrainingID, &d.FileName, &d.FilePath,
			&d.IsPdf, &d.IsImage, &d.UploadedAt,
		)
		if err != nil {
			return nil, err
		}
		documents = append(documents, d)
	}

	return documents, rows.Err()
}

func (r *documentRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]document.StoredDocument, error) {
	return r.list(ctx, `
		SELECT id, employee_id, training_id::text, COALESCE(file_name, ''), COALESCE(file_path, ''),
			is_pdf, is_image, uploaded_at
		FROM employee_documents
		WHERE employee_id = $1 AND deleted_at IS NULL
		ORDER BY uploaded_at DESC, id
	`, employeeID)
}

func (r *documentRepositoryImpl) ListByTraining(ctx context.Context, trainingID string) ([]document.StoredDocument, error) {
	return r.list(ctx, `
		SELECT id, employee_id, training_id::text, COALESCE(file_name, ''), COALESCE(file_path, ''),
			is_pdf, is_image, uploaded_at
		FROM employee_documents
		WHERE training_id = $1 AND deleted_at IS NULL
		ORDER BY uploaded_at DESC, id
	`, trainingID)
}
