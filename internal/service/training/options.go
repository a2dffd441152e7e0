package training

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/cmlabs-hris/training-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/qualification"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/skill"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/training"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/jwt"
	"golang.org/x/sync/errgroup"
)

// GetEditOptions implements training.TrainingService.
func (s *TrainingServiceImpl) GetEditOptions(ctx context.Context, id string) (*training.EditOptionsResponse, error) {
	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var (
		current        *training.Training
		selectedQuals  []qualification.Qualification
		employees      []employee.Employee
		programs       []training.Program
		skills         []skill.Skill
		qualifications []qualification.Qualification
	)

	if id != "" {
		t, err := s.trainingRepo.GetByID(ctx, companyID, id)
		if err != nil {
			return nil, err
		}
		current = &t
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		result, err := s.employeeRepo.GetActiveByCompanyID(gCtx, companyID)
		if err != nil {
			return fmt.Errorf("failed to get employees: %w", err)
		}
		employees = result

		// keep the trainee selectable even after they left
		if current == nil || slices.ContainsFunc(result, func(e employee.Employee) bool { return e.ID == current.EmployeeID }) {
			return nil
		}
		trainee, err := s.employeeRepo.GetByID(gCtx, companyID, current.EmployeeID)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return nil
			}
			return fmt.Errorf("failed to get trainee: %w", err)
		}
		employees = append(employees, trainee)
		return nil
	})

	g.Go(func() error {
		result, err := s.programRepo.ListByCompany(gCtx, companyID)
		if err != nil {
			return fmt.Errorf("failed to get training programs: %w", err)
		}
		programs = result
		return nil
	})

	g.Go(func() error {
		result, err := s.skillRepo.GetByCompanyID(gCtx, companyID)
		if err != nil {
			return fmt.Errorf("failed to get skills: %w", err)
		}
		skills = result
		return nil
	})

	g.Go(func() error {
		result, err := s.qualificationRepo.ListByCompany(gCtx, companyID)
		if err != nil {
			return fmt.Errorf("failed to get qualifications: %w", err)
		}
		qualifications = result
		return nil
	})

	if current != nil {
		g.Go(func() error {
			result, err := s.qualificationRepo.ListByTraining(gCtx, current.ID)
			if err != nil {
				return fmt.Errorf("failed to get training qualifications: %w", err)
			}
			selectedQuals = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return BuildEditOptions(current, employees, programs, skills, qualifications, selectedQuals), nil
}

// BuildEditOptions assembles the dropdowns. Selection mirrors current; with
// a nil current (new training) nothing is selected.
func BuildEditOptions(
	current *training.Training,
	employees []employee.Employee,
	programs []training.Program,
	skills []skill.Skill,
	qualifications []qualification.Qualification,
	selectedQualifications []qualification.Qualification,
) *training.EditOptionsResponse {
	var (
		selectedEmployee string
		selectedProgram  string
		selectedStatus   training.Status
		selectedSkills   = map[string]bool{}
		selectedQuals    = map[string]bool{}
	)
	resp := &training.EditOptionsResponse{}
	if current != nil {
		id := current.ID
		resp.TrainingID = &id
		selectedEmployee = current.EmployeeID
		if current.ProgramID != nil {
			selectedProgram = *current.ProgramID
		}
		selectedStatus = current.Status
		for _, skillID := range current.SkillIDs {
			selectedSkills[skillID] = true
		}
		for _, q := range selectedQualifications {
			selectedQuals[q.ID] = true
		}
	}

	resp.Employees = make([]training.Option, 0, len(employees))
	for _, e := range employees {
		resp.Employees = append(resp.Employees, training.Option{
			Value:    e.ID,
			Label:    employeeLabel(e),
			Selected: e.ID == selectedEmployee,
		})
	}

	resp.Programs = make([]training.Option, 0, len(programs))
	for _, p := range programs {
		resp.Programs = append(resp.Programs, training.Option{
			Value:    p.ID,
			Label:    p.Name,
			Selected: p.ID == selectedProgram,
		})
	}

	resp.Skills = make([]training.Option, 0, len(skills))
	for _, sk := range skills {
		resp.Skills = append(resp.Skills, training.Option{
			Value:    sk.ID,
			Label:    sk.Name,
			Selected: selectedSkills[sk.ID],
		})
	}

	resp.Qualifications = make([]training.Option, 0, len(qualifications))
	for _, q := range qualifications {
		resp.Qualifications = append(resp.Qualifications, training.Option{
			Value:    q.ID,
			Label:    q.Name,
			Selected: selectedQuals[q.ID],
		})
	}

	resp.Statuses = make([]training.Option, 0, len(training.StoredStatuses))
	for _, st := range training.StoredStatuses {
		resp.Statuses = append(resp.Statuses, training.Option{
			Value:    string(st),
			Label:    st.Label(),
			Selected: st == selectedStatus,
		})
	}

	for _, opts := range [][]training.Option{resp.Employees, resp.Programs, resp.Skills, resp.Qualifications, resp.Statuses} {
		sortOptions(opts)
	}
	return resp
}

func employeeLabel(e employee.Employee) string {
	if e.EmployeeCode == "" {
		return e.FullName
	}
	return fmt.Sprintf("%s (%s)", e.FullName, e.EmployeeCode)
}

// sortOptions orders by label, then value, so equal labels stay deterministic
func sortOptions(opts []training.Option) {
	slices.SortFunc(opts, func(a, b training.Option) int {
		if c := cmp.Compare(a.Label, b.Label); c != 0 {
			return c
		}
		return cmp.Compare(a.Value, b.Value)
	})
}
