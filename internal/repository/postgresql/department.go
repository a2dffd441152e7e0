package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/training-backend-go/internal/domain/master/department"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name
		FROM departments
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`

	var d department.Department
	err := q.QueryRow(ctx, query, id, companyID).Scan(&d.ID, &d.CompanyID, &d.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department %s: %w", id, err)
	}
	return d, nil
}

func (r *departmentRepositoryImpl) GetByCompanyID(ctx context.Context, companyID string) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name
		FROM departments
		WHERE company_id = $1 AND deleted_at IS NULL
		ORDER BY name, id
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	departments := []department.Department{}
	for rows.Next() {
		var d department.Department
		if err := rows.Scan(&d.ID, &d.CompanyID, &d.Name); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}

	return departments, rows.Err()
}
