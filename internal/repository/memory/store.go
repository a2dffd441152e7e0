// Package memory holds in-memory repositories over a fixed data set. Every
// method filters by company like the PostgreSQL repositories do.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/cmlabs-hris/training-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/master/department"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/qualification"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/skill"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/training"
)

// Store is the shared data behind all memory repositories
type Store struct {
	mu sync.RWMutex

	Employees      []employee.Employee
	Departments    []department.Department
	Trainings      []training.Training
	Programs       []training.Program
	Certificates   []training.Certificate
	Skills         []skill.Skill
	Categories     []skill.Category
	Qualifications []qualification.Qualification
	Documents      []document.StoredDocument

	// TrainingQualifications maps training ID to qualification IDs
	TrainingQualifications map[string][]string

	// Err, when set, is returned by every repository call
	Err error
}

func (s *Store) read() func() {
	s.mu.RLock()
	return s.mu.RUnlock
}

// ========== EMPLOYEES ==========

type EmployeeRepository struct{ *Store }

func (r EmployeeRepository) GetByID(ctx context.Context, companyID, id string) (employee.Employee, error) {
	defer r.read()()
	if r.Err != nil {
		return employee.Employee{}, r.Err
	}
	for _, e := range r.Employees {
		if e.ID == id && e.CompanyID == companyID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r EmployeeRepository) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	defer r.read()()
	if r.Err != nil {
		return nil, r.Err
	}
	out := []employee.Employee{}
	for _, e := range r.Employees {
		if e.CompanyID == companyID && e.EmploymentStatus == employee.EmploymentStatusActive {
			out = append(out, e)
		}
	}
	return out, nil
}

// ========== DEPARTMENTS ==========

type DepartmentRepository struct{ *Store }

func (r DepartmentRepository) GetByID(ctx context.Context, id string, companyID string) (department.Department, error) {
	defer r.read()()
	if r.Err != nil {
		return department.Department{}, r.Err
	}
	for _, d := range r.Departments {
		if d.ID == id && d.CompanyID == companyID {
			return d, nil
		}
	}
	return department.Department{}, department.ErrDepartmentNotFound
}

func (r DepartmentRepository) GetByCompanyID(ctx context.Context, companyID string) ([]department.Department, error) {
	defer r.read()()
	if r.Err != nil {
		return nil, r.Err
	}
	out := []department.Department{}
	for _, d := range r.Departments {
		if d.CompanyID == companyID {
			out = append(out, d)
		}
	}
	return out, nil
}

// ========== TRAININGS ==========

type TrainingRepository struct{ *Store }

func (r TrainingRepository) GetByID(ctx context.Context, companyID, id string) (training.Training, error) {
	defer r.read()()
	if r.Err != nil {
		return training.Training{}, r.Err
	}
	for _, t := range r.Trainings {
		if t.ID == id && t.CompanyID == companyID {
			return t, nil
		}
	}
	return training.Training{}, training.ErrTrainingNotFound
}

func (r TrainingRepository) ListByCompany(ctx context.Context, companyID string) ([]training.Training, error) {
	defer r.read()()
	if r.Err != nil {
		return nil, r.Err
	}
	out := []training.Training{}
	for _, t := range r.Trainings {
		if t.CompanyID == companyID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r TrainingRepository) ListByEmployee(ctx context.Context, companyID, employeeID string) ([]training.Training, error) {
	defer r.read()()
	if r.Err != nil {
		return nil, r.Err
	}
	out := []training.Training{}
	for _, t := range r.Trainings {
		if t.CompanyID == companyID && t.EmployeeID == employeeID {
			out = append(out, t)
		}
	}
	return out, nil
}

type ProgramRepository struct{ *Store }

func (r ProgramRepository) GetByID(ctx context.Context, companyID, id string) (training.Program, error) {
	defer r.read()()
	if r.Err != nil {
		return training.Program{}, r.Err
	}
	for _, p := range r.Programs {
		if p.ID == id && p.CompanyID == companyID {
			return p, nil
		}
	}
	return training.Program{}, training.ErrProgramNotFound
}

func (r ProgramRepository) ListByCompany(ctx context.Context, companyID string) ([]training.Program, error) {
	defer r.read()()
	if r.Err != nil {
		return nil, r.Err
	}
	out := []training.Program{}
	for _, p := range r.Programs {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

type CertificateRepository struct{ *Store }

func (r CertificateRepository) ListByTraining(ctx context.Context, trainingID string) ([]training.Certificate, error) {
	defer r.read()()
	if r.Err != nil {
		return nil, r.Err
	}
	out := []training.Certificate{}
	for _, c := range r.Certificates {
		if c.TrainingID == trainingID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r CertificateRepository) ListByEmployee(ctx context.Context, employeeID string) ([]training.Certificate, error) {
	defer r.read()()
	if r.Err != nil {
		return nil, r.Err
	}
	owned := make(map[string]bool)
	for _, t := range r.Trainings {
		if t.EmployeeID == employeeID {
			owned[t.ID] = true
		}
	}
	out := []training.Certificate{}
	for _, c := range r.Certificates {
		if owned[c.TrainingID] {
			out = append(out, c)
		}
	}
	return out, nil
}

// ========== SKILLS ==========

type SkillRepository struct{ *Store }

func (r SkillRepository) GetByCompanyID(ctx context.Context, companyID string) ([]skill.Skill, error) {
	defer r.read()()
	if r.Err != nil {
		return nil, r.Err
	}
	out := []skill.Skill{}
	for _, s := range r.Skills {
		if s.CompanyID == companyID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r SkillRepository) GetCategoriesByCompanyID(ctx context.Context, companyID string) ([]skill.Category, error) {
	defer r.read()()
	if r.Err != nil {
		return nil, r.Err
	}
	out := []skill.Category{}
	for _, c := range r.Categories {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r SkillRepository) GetByIDs(ctx context.Context, companyID string, ids []string) ([]skill.Skill, error) {
	defer r.read()()
	if r.Err != nil {
		return nil, r.Err
	}
	out := []skill.Skill{}
	for _, s := range r.Skills {
		if s.CompanyID == companyID && slices.Contains(ids, s.ID) {
			out = append(out, s)
		}
	}
	return out, nil
}

// ========== QUALIFICATIONS ==========

type QualificationRepository struct{ *Store }

func (r QualificationRepository) ListByCompany(ctx context.Context, companyID string) ([]qualification.Qualification, error) {
	defer r.read()()
	if r.Err != nil {
		return nil, r.Err
	}
	out := []qualification.Qualification{}
	for _, q := range r.Qualifications {
		if q.CompanyID == companyID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r QualificationRepository) ListByEmployee(ctx context.Context, employeeID string) ([]qualification.Qualification, error) {
	defer r.read()()
	if r.Err != nil {
		return nil, r.Err
	}
	var ids []string
	for _, e := range r.Employees {
		if e.ID == employeeID {
			ids = e.QualificationIDs
			break
		}
	}
	return r.byIDs(ids), nil
}

func (r QualificationRepository) ListByTraining(ctx context.Context, trainingID string) ([]qualification.Qualification, error) {
	defer r.read()()
	if r.Err != nil {
		return nil, r.Err
	}
	return r.byIDs(r.TrainingQualifications[trainingID]), nil
}

func (r QualificationRepository) byIDs(ids []string) []qualification.Qualification {
	out := []qualification.Qualification{}
	for _, q := range r.Qualifications {
		if slices.Contains(ids, q.ID) {
			out = append(out, q)
		}
	}
	return out
}

// ========== DOCUMENTS ==========

type DocumentRepository struct{ *Store }

func (r DocumentRepository) ListByEmployee(ctx context.Context, employeeID string) ([]document.StoredDocument, error) {
	defer r.read()()
	if r.Err != nil {
		return nil, r.Err
	}
	out := []document.StoredDocument{}
	for _, d := range r.Documents {
		if d.EmployeeID == employeeID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r DocumentRepository) ListByTraining(ctx context.Context, trainingID string) ([]document.StoredDocument, error) {
	defer r.read()()
	if r.Err != nil {
		return nil, r.Err
	}
	out := []document.StoredDocument{}
	for _, d := range r.Documents {
		if d.TrainingID != nil && *d.TrainingID == trainingID {
			out = append(out, d)
		}
	}
	return out, nil
}
