package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/training-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Skill levels and qualification IDs are folded into arrays so one row is one employee.
const employeeSelect = `
	SELECT e.id, e.company_id, COALESCE(e.department_id::text, ''), e.employee_code, e.full_name,
		e.hire_date, e.employment_status,
		COALESCE((SELECT array_agg(es.skill_id::text ORDER BY es.skill_id)
			FROM employee_skills es WHERE es.employee_id = e.id), '{}'),
		COALESCE((SELECT array_agg(es.level::float8 ORDER BY es.skill_id)
			FROM employee_skills es WHERE es.employee_id = e.id), '{}'),
		COALESCE((SELECT array_agg(eq.qualification_id::text ORDER BY eq.qualification_id)
			FROM employee_qualifications eq WHERE eq.employee_id = e.id), '{}')
	FROM employees e
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var (
		emp      employee.Employee
		skillIDs []string
		levels   []float64
	)
	err := row.Scan(
		&emp.ID, &emp.CompanyID, &emp.DepartmentID, &emp.EmployeeCode, &emp.FullName,
		&emp.HireDate, &emp.EmploymentStatus,
		&skillIDs, &levels, &emp.QualificationIDs,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	if len(skillIDs) != len(levels) {
		return employee.Employee{}, fmt.Errorf("employee %s: %d skills but %d levels", emp.ID, len(skillIDs), len(levels))
	}

	emp.SkillLevels = make([]employee.SkillLevel, len(skillIDs))
	for i := range skillIDs {
		emp.SkillLevels[i] = employee.SkillLevel{SkillID: skillIDs[i], Level: levels[i]}
	}
	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, companyID, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := employeeSelect + `
		WHERE e.id = $1 AND e.company_id = $2 AND e.deleted_at IS NULL
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", id, err)
	}
	return emp, nil
}

// GetActiveByCompanyID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := employeeSelect + `
		WHERE e.company_id = $1 AND e.employment_status = $2 AND e.deleted_at IS NULL
		ORDER BY e.id
	`

	rows, err := q.Query(ctx, query, companyID, employee.EmploymentStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
