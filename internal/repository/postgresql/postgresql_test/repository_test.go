package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/training-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/training"
	"github.com/cmlabs-hris/training-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	companyID    = "c0000000-0000-0000-0000-000000000001"
	otherCompany = "c0000000-0000-0000-0000-000000000002"
	departmentID = "d0000000-0000-0000-0000-000000000001"
	employeeID   = "e0000000-0000-0000-0000-000000000001"
	resignedID   = "e0000000-0000-0000-0000-000000000002"
	skillID      = "50000000-0000-0000-0000-000000000001"
	programID    = "70000000-0000-0000-0000-000000000001"
	trainingID   = "a0000000-0000-0000-0000-000000000001"
)

var errRollback = errors.New("rollback")

func setupDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()
	ctx := context.Background()

	setup, ok, err := NewTestDatabase(ctx)
	if !ok {
		t.Skip("TEST_DATABASE_URL not set")
	}
	require.NoError(t, err)
	t.Cleanup(setup.Close)

	require.NoError(t, setup.TruncateAllTables(ctx))
	return setup
}

func seed(t *testing.T, ctx context.Context, tx pgx.Tx) {
	t.Helper()

	statements := []struct {
		sql  string
		args []interface{}
	}{
		{`INSERT INTO departments (id, company_id, name) VALUES ($1, $2, 'Engineering')`,
			[]interface{}{departmentID, companyID}},
		{`INSERT INTO employees (id, company_id, department_id, employee_code, full_name, hire_date, employment_status)
		  VALUES ($1, $2, $3, 'E001', 'Ayu', '2022-01-10', 'active')`,
			[]interface{}{employeeID, companyID, departmentID}},
		{`INSERT INTO employees (id, company_id, department_id, employee_code, full_name, hire_date, employment_status)
		  VALUES ($1, $2, $3, 'E002', 'Budi', '2021-03-01', 'resigned')`,
			[]interface{}{resignedID, companyID, departmentID}},
		{`INSERT INTO skills (id, company_id, name, required_level) VALUES ($1, $2, 'Go', 4)`,
			[]interface{}{skillID, companyID}},
		{`INSERT INTO employee_skills (employee_id, skill_id, level) VALUES ($1, $2, 2.5)`,
			[]interface{}{employeeID, skillID}},
		{`INSERT INTO training_programs (id, company_id, name) VALUES ($1, $2, 'Backend Track')`,
			[]interface{}{programID, companyID}},
		{`INSERT INTO trainings (id, company_id, employee_id, program_id, title, status, start_date, end_date, progress_percentage)
		  VALUES ($1, $2, $3, $4, 'Go Basics', 'overdue', '2024-06-01', '2024-06-10', 40)`,
			[]interface{}{trainingID, companyID, employeeID, programID}},
		{`INSERT INTO training_skills (training_id, skill_id) VALUES ($1, $2)`,
			[]interface{}{trainingID, skillID}},
	}

	for _, s := range statements {
		_, err := tx.Exec(ctx, s.sql, s.args...)
		require.NoError(t, err)
	}
}

// inTx runs fn against seeded data and rolls everything back afterwards
func inTx(t *testing.T, setup *TestDatabaseSetup, fn func(ctx context.Context)) {
	t.Helper()
	err := postgresql.WithTransaction(context.Background(), setup.DB, func(tx pgx.Tx) error {
		ctx := postgresql.ContextWithTx(context.Background(), tx)
		seed(t, ctx, tx)
		fn(ctx)
		return errRollback
	})
	require.ErrorIs(t, err, errRollback)
}

func TestEmployeeRepository(t *testing.T) {
	setup := setupDatabase(t)
	repo := postgresql.NewEmployeeRepository(setup.DB)

	inTx(t, setup, func(ctx context.Context) {
		emp, err := repo.GetByID(ctx, companyID, employeeID)
		require.NoError(t, err)
		assert.Equal(t, "Ayu", emp.FullName)
		assert.Equal(t, departmentID, emp.DepartmentID)
		require.Len(t, emp.SkillLevels, 1)
		assert.Equal(t, 2.5, emp.SkillLevels[0].Level)

		_, err = repo.GetByID(ctx, otherCompany, employeeID)
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

		active, err := repo.GetActiveByCompanyID(ctx, companyID)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, employeeID, active[0].ID)
	})
}

func TestTrainingRepository(t *testing.T) {
	setup := setupDatabase(t)
	repo := postgresql.NewTrainingRepository(setup.DB)

	inTx(t, setup, func(ctx context.Context) {
		tr, err := repo.GetByID(ctx, companyID, trainingID)
		require.NoError(t, err)
		assert.Equal(t, training.StatusInProgress, tr.Status, "legacy overdue is read as in progress")
		assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), tr.EndDate.UTC())
		require.NotNil(t, tr.ProgramID)
		assert.Equal(t, programID, *tr.ProgramID)
		assert.Equal(t, []string{skillID}, tr.SkillIDs)

		_, err = repo.GetByID(ctx, otherCompany, trainingID)
		assert.ErrorIs(t, err, training.ErrTrainingNotFound)

		list, err := repo.ListByEmployee(ctx, companyID, employeeID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}
