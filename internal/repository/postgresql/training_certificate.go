package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/training-backend-go/internal/domain/training"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/database"
)

type certificateRepositoryImpl struct {
	db *database.DB
}

func NewCertificateRepository(db *database.DB) training.CertificateRepository {
	return &certificateRepositoryImpl{db: db}
}

func (r *certificateRepositoryImpl) query(ctx context.Context, query string, arg string) ([]training.Certificate, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}
	defer rows.Close()

	certificates := []training.Certificate{}
	for rows.Next() {
		var c training.Certificate
		if err := rows.Scan(&c.ID, &c.TrainingID, &c.IssueDate, &c.URL, &c.PdfURL); err != nil {
			return nil, err
		}
		certificates = append(certificates, c)
	}

	return certificates, rows.Err()
}

func (r *certificateRepositoryImpl) ListByTraining(ctx context.Context, trainingID string) ([]training.Certificate, error) {
	return r.query(ctx, `
		SELECT id, training_id, issue_date, COALESCE(url, ''), COALESCE(pdf_url, '')
		FROM training_certificates
		WHERE training_id = $1
		ORDER BY issue_date DESC, id
	`, trainingID)
}

func (r *certificateRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]training.Certificate, error) {
	return r.query(ctx, `
		SELECT c.id, c.training_id, c.issue_date, COALESCE(c.url, ''), COALESCE(c.pdf_url, '')
		FROM training_certificates c
		JOIN trainings t ON t.id = c.training_id
		WHERE t.employee_id = $1 AND t.deleted_at IS NULL
		ORDER BY c.issue_date DESC, c.id
	`, employeeID)
}
