package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/training-backend-go/internal/domain/qualification"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/database"
)

type qualificationRepositoryImpl struct {
	db *database.DB
}

func NewQualificationRepository(db *database.DB) qualification.QualificationRepository {
	return &qualificationRepositoryImpl{db: db}
}

func (r *qualificationRepositoryImpl) list(ctx context.Context, query string, arg string) ([]qualification.Qualification, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list qualifications: %w", err)
	}
	defer rows.Close()

	qualifications := []qualification.Qualification{}
	for rows.Next() {
		var item qualification.Qualification
		if err := rows.Scan(&item.ID, &item.CompanyID, &item.Name, &item.IssuingBody, &item.ExpiresAt); err != nil {
			return nil, err
		}
		qualifications = append(qualifications, item)
	}

	return qualifications, rows.Err()
}

func (r *qualificationRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]qualification.Qualification, error) {
	return r.list(ctx, `
		SELECT id, company_id, name, COALESCE(issuing_body, ''), expires_at
		FROM qualifications
		WHERE company_id = $1
		ORDER BY name, id
	`, companyID)
}

func (r *qualificationRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]qualification.Qualification, error) {
	return r.list(ctx, `
		SELECT q.id, q.company_id, q.name, COALESCE(q.issuing_body, ''), COALESCE(eq.expires_at, q.expires_at)
		FROM qualifications q
		JOIN employee_qualifications eq ON eq.qualification_id = q.id
		WHERE eq.employee_id = $1
		ORDER BY q.name, q.id
	`, employeeID)
}

func (r *qualificationRepositoryImpl) ListByTraining(ctx context.Context, trainingID string) ([]qualification.Qualification, error) {
	return r.list(ctx, `
		SELECT q.id, q.company_id, q.name, COALESCE(q.issuing_body, ''), q.expires_at
		FROM qualifications q
		JOIN training_qualifications tq ON tq.qualification_id = q.id
		WHERE tq.training_id = $1
		ORDER BY q.name, q.id
	`, trainingID)
}
