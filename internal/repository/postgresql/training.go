package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/training-backend-go/internal/domain/training"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type trainingRepositoryImpl struct {
	db *database.DB
}

func NewTrainingRepository(db *database.DB) training.TrainingRepository {
	return &trainingRepositoryImpl{db: db}
}

const trainingSelect = `
	SELECT t.id, t.company_id, t.employee_id, t.title, COALESCE(t.provider, ''), t.status,
		t.start_date, t.end_date, t.progress_percentage,
		COALESCE(t.certificate_url, ''), COALESCE(t.certificate_pdf_url, ''), COALESCE(t.certificate_file_name, ''),
		t.program_id::text,
		COALESCE((SELECT array_agg(ts.skill_id::text ORDER BY ts.skill_id)
			FROM training_skills ts WHERE ts.training_id = t.id), '{}'),
		t.created_at, t.updated_at
	FROM trainings t
`

func scanTraining(row pgx.Row) (training.Training, error) {
	var (
		t      training.Training
		status string
	)
	err := row.Scan(
		&t.ID, &t.CompanyID, &t.EmployeeID, &t.Title, &t.Provider, &status,
		&t.StartDate, &t.EndDate, &t.ProgressPercentage,
		&t.CertificateURL, &t.CertificatePdfURL, &t.CertificateFileName,
		&t.ProgramID, &t.SkillIDs,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return training.Training{}, err
	}

	t.Status, err = training.ParseStatus(status)
	if err != nil {
		return training.Training{}, fmt.Errorf("training %s has status %q: %w", t.ID, status, err)
	}
	return t, nil
}

func (r *trainingRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]training.Training, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list trainings: %w", err)
	}
	defer rows.Close()

	trainings := []training.Training{}
	for rows.Next() {
		t, err := scanTraining(rows)
		if err != nil {
			return nil, err
		}
		trainings = append(trainings, t)
	}

	return trainings, rows.Err()
}

// GetByID implements training.TrainingRepository.
func (r *trainingRepositoryImpl) GetByID(ctx context.Context, companyID, id string) (training.Training, error) {
	q := GetQuerier(ctx, r.db)

	query := trainingSelect + `
		WHERE t.id = $1 AND t.company_id = $2 AND t.deleted_at IS NULL
	`

	t, err := scanTraining(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return training.Training{}, training.ErrTrainingNotFound
		}
		return training.Training{}, fmt.Errorf("failed to get training %s: %w", id, err)
	}
	return t, nil
}

// ListByCompany implements training.TrainingRepository.
func (r *trainingRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]training.Training, error) {
	query := trainingSelect + `
		WHERE t.company_id = $1 AND t.deleted_at IS NULL
		ORDER BY t.start_date DESC, t.id
	`
	return r.list(ctx, query, companyID)
}

// ListByEmployee implements training.TrainingRepository.
func (r *trainingRepositoryImpl) ListByEmployee(ctx context.Context, companyID, employeeID string) ([]training.Training, error) {
	query := trainingSelect + `
		WHERE t.company_id = $1 AND t.employee_id = $2 AND t.deleted_at IS NULL
		ORDER BY t.start_date DESC, t.id
	`
	return r.list(ctx, query, companyID, employeeID)
}
