package skill

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/training-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/master/department"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/skill"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/training"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/logger"
	"github.com/cmlabs-hris/training-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const companyID = "c0000000-0000-0000-0000-000000000001"

func newStore() *memory.Store {
	return &memory.Store{
		Departments: []department.Department{{ID: "dep-eng", CompanyID: companyID, Name: "Engineering"}},
		Employees: []employee.Employee{
			{ID: "emp-1", CompanyID: companyID, DepartmentID: "dep-eng", FullName: "Ayu",
				EmploymentStatus: employee.EmploymentStatusActive,
				SkillLevels: []employee.SkillLevel{
					{SkillID: "sk-go", Level: 1},
					{SkillID: "sk-sql", Level: 3},
					{SkillID: "sk-talk", Level: 4},
				}},
			{ID: "emp-2", CompanyID: companyID, FullName: "Budi",
				EmploymentStatus: employee.EmploymentStatusActive,
				SkillLevels:      []employee.SkillLevel{{SkillID: "sk-go", Level: 5}}},
			{ID: "emp-3", CompanyID: companyID, FullName: "Citra",
				EmploymentStatus: employee.EmploymentStatusActive},
		},
		Skills: []skill.Skill{
			{ID: "sk-go", CompanyID: companyID, CategoryID: "cat-tech", Name: "Go", RequiredLevel: 4},
			{ID: "sk-sql", CompanyID: companyID, CategoryID: "cat-tech", Name: "SQL", RequiredLevel: 4},
			{ID: "sk-talk", CompanyID: companyID, Name: "Public Speaking", RequiredLevel: 3},
			{ID: "sk-rust", CompanyID: companyID, CategoryID: "cat-tech", Name: "Rust", RequiredLevel: 2},
		},
		Categories: []skill.Category{{ID: "cat-tech", CompanyID: companyID, Name: "Technical"}},
		Trainings: []training.Training{
			{ID: "t-1", CompanyID: companyID, EmployeeID: "emp-1", Title: "Go Basics", Status: training.StatusCompleted,
				StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
				SkillIDs: []string{"sk-go", "sk-sql"}},
			{ID: "t-2", CompanyID: companyID, EmployeeID: "emp-1", Title: "Advanced Go", Status: training.StatusInProgress,
				StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
				SkillIDs: []string{"sk-go"}},
			{ID: "t-3", CompanyID: companyID, EmployeeID: "emp-2", Title: "Go Basics", Status: training.StatusCompleted,
				StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
				SkillIDs: []string{"sk-go"}},
		},
	}
}

func newService(store *memory.Store) skill.SkillService {
	return NewSkillService(
		memory.SkillRepository{Store: store},
		memory.EmployeeRepository{Store: store},
		memory.DepartmentRepository{Store: store},
		memory.TrainingRepository{Store: store},
		2.0,
		logger.Nop(),
	)
}

func companyContext(t *testing.T) context.Context {
	t.Helper()
	ctx, err := jwt.ContextWithCompany(context.Background(), companyID)
	require.NoError(t, err)
	return ctx
}

func TestGetEmployeeSkills(t *testing.T) {
	resp, err := newService(newStore()).GetEmployeeSkills(companyContext(t), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, "Ayu", resp.EmployeeName)
	assert.Equal(t, "Engineering", resp.DepartmentName)
	assert.Equal(t, 3, resp.TotalSkills)
	assert.InDelta(t, 8.0/3, resp.AverageLevel, 1e-9)
	assert.Equal(t, 2, resp.SkillsRequiringAttention)
	assert.Equal(t, 1, resp.CriticalSkillsGap)

	require.Len(t, resp.Skills, 3)
	goSkill := resp.Skills[0]
	assert.Equal(t, "sk-go", goSkill.SkillID)
	assert.Equal(t, "Technical", goSkill.CategoryName)
	assert.Equal(t, 1.0, goSkill.Level)
	assert.Equal(t, 3.0, goSkill.TeamAverage)
	assert.Equal(t, 3.0, goSkill.Gap)
	assert.True(t, goSkill.IsCritical)
	assert.Equal(t, 2, goSkill.TrainingCount)
	assert.Equal(t, 1, goSkill.CompletedTrainings)

	assert.Equal(t, "sk-sql", resp.Skills[1].SkillID)
	assert.Equal(t, 1.0, resp.Skills[1].Gap)
	assert.False(t, resp.Skills[1].IsCritical)
	assert.Equal(t, 1, resp.Skills[1].TrainingCount)
	assert.Equal(t, 1, resp.Skills[1].CompletedTrainings)

	assert.Equal(t, "sk-talk", resp.Skills[2].SkillID)
	assert.Equal(t, skill.UncategorizedName, resp.Skills[2].CategoryName)
	assert.Empty(t, resp.Skills[2].CategoryID)
	assert.Zero(t, resp.Skills[2].Gap)
	assert.Zero(t, resp.Skills[2].TrainingCount)

	assert.Equal(t, 2, resp.TotalTrainings)
	assert.Equal(t, 1, resp.CompletedTrainings)

	require.Len(t, resp.Categories, 2)
	assert.Equal(t, skill.CategoryGroup{CategoryID: "cat-tech", CategoryName: "Technical", SkillCount: 2, AverageLevel: 2, TotalGap: 4}, resp.Categories[0])
	assert.Equal(t, skill.CategoryGroup{CategoryName: skill.UncategorizedName, SkillCount: 1, AverageLevel: 4, TotalGap: 0}, resp.Categories[1])
}

func TestGetEmployeeSkills_NoSkills(t *testing.T) {
	resp, err := newService(newStore()).GetEmployeeSkills(companyContext(t), "emp-3")
	require.NoError(t, err)

	assert.Zero(t, resp.TotalSkills)
	assert.Zero(t, resp.AverageLevel)
	assert.NotNil(t, resp.Skills)
	assert.NotNil(t, resp.Categories)
	assert.Empty(t, resp.DepartmentName)
}

func TestGetEmployeeSkills_NotFound(t *testing.T) {
	_, err := newService(newStore()).GetEmployeeSkills(companyContext(t), "emp-9")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetEmployeeSkills_TrainingFetchFails(t *testing.T) {
	store := newStore()
	svc := NewSkillService(
		memory.SkillRepository{Store: store},
		memory.EmployeeRepository{Store: store},
		memory.DepartmentRepository{Store: store},
		memory.TrainingRepository{Store: &memory.Store{Err: errors.New("db down")}},
		2.0,
		logger.Nop(),
	)

	resp, err := svc.GetEmployeeSkills(companyContext(t), "emp-1")
	assert.Error(t, err)
	assert.Nil(t, resp)
}
