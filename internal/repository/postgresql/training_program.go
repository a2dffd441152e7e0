package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/training-backend-go/internal/domain/training"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type programRepositoryImpl struct {
	db *database.DB
}

func NewProgramRepository(db *database.DB) training.ProgramRepository {
	return &programRepositoryImpl{db: db}
}

func (r *programRepositoryImpl) GetByID(ctx context.Context, companyID, id string) (training.Program, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, description
		FROM training_programs
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`

	var p training.Program
	err := q.QueryRow(ctx, query, id, companyID).Scan(&p.ID, &p.CompanyID, &p.Name, &p.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return training.Program{}, training.ErrProgramNotFound
		}
		return training.Program{}, fmt.Errorf("failed to get training program %s: %w", id, err)
	}
	return p, nil
}

func (r *programRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]training.Program, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, description
		FROM training_programs
		WHERE company_id = $1 AND deleted_at IS NULL
		ORDER BY name, id
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list training programs: %w", err)
	}
	defer rows.Close()

	programs := []training.Program{}
	for rows.Next() {
		var p training.Program
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.Name, &p.Description); err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}

	return programs, rows.Err()
}
