package skill

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/cmlabs-hris/training-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/master/department"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/skill"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/training"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/logger"
	"golang.org/x/sync/errgroup"
)

type SkillServiceImpl struct {
	skillRepo            skill.SkillRepository
	employeeRepo         employee.EmployeeRepository
	departmentRepo       department.DepartmentRepository
	trainingRepo         training.TrainingRepository
	criticalGapThreshold float64
	log                  *logger.Logger
}

func NewSkillService(
	skillRepo skill.SkillRepository,
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	trainingRepo training.TrainingRepository,
	criticalGapThreshold float64,
	log *logger.Logger,
) skill.SkillService {
	return &SkillServiceImpl{
		skillRepo:            skillRepo,
		employeeRepo:         employeeRepo,
		departmentRepo:       departmentRepo,
		trainingRepo:         trainingRepo,
		criticalGapThreshold: criticalGapThreshold,
		log:                  log.WithComponent("skill"),
	}
}

// GetEmployeeSkills implements skill.SkillService. TeamAverage is the
// skill's current level across all active employees.
func (s *SkillServiceImpl) GetEmployeeSkills(ctx context.Context, employeeID string) (*skill.EmployeeSkillResponse, error) {
	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}

	var (
		skills         []skill.Skill
		categories     []skill.Category
		team           []employee.Employee
		trainings      []training.Training
		departmentName string
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		result, err := s.skillRepo.GetByCompanyID(gCtx, companyID)
		if err != nil {
			return fmt.Errorf("failed to get skills: %w", err)
		}
		skills = result
		return nil
	})

	g.Go(func() error {
		result, err := s.skillRepo.GetCategoriesByCompanyID(gCtx, companyID)
		if err != nil {
			return fmt.Errorf("failed to get skill categories: %w", err)
		}
		categories = result
		return nil
	})

	g.Go(func() error {
		result, err := s.employeeRepo.GetActiveByCompanyID(gCtx, companyID)
		if err != nil {
			return fmt.Errorf("failed to get employees: %w", err)
		}
		team = result
		return nil
	})

	g.Go(func() error {
		result, err := s.trainingRepo.ListByEmployee(gCtx, companyID, emp.ID)
		if err != nil {
			return fmt.Errorf("failed to get employee trainings: %w", err)
		}
		trainings = result
		return nil
	})

	if emp.DepartmentID != "" {
		g.Go(func() error {
			d, err := s.departmentRepo.GetByID(gCtx, emp.DepartmentID, companyID)
			if err != nil {
				if errors.Is(err, department.ErrDepartmentNotFound) {
					return nil
				}
				return fmt.Errorf("failed to get department: %w", err)
			}
			departmentName = d.Name
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return BuildEmployeeSkills(emp, departmentName, skills, categories, team, trainings, s.criticalGapThreshold), nil
}

// BuildEmployeeSkills lists the skills the employee has a level for, ordered
// by category name, skill name and ID, with per-category subtotals. Each row
// counts the employee's trainings covering that skill.
func BuildEmployeeSkills(
	emp employee.Employee,
	departmentName string,
	skills []skill.Skill,
	categories []skill.Category,
	team []employee.Employee,
	trainings []training.Training,
	criticalGapThreshold float64,
) *skill.EmployeeSkillResponse {
	categoryNames := skill.CategoryNames(categories)
	covered := make(map[string]int)
	completed := make(map[string]int)
	for _, t := range trainings {
		for _, skillID := range t.SkillIDs {
			covered[skillID]++
			if training.IsCompleted(t) {
				completed[skillID]++
			}
		}
	}
	teamLevel := make(map[string]float64, len(skills))
	for _, st := range skill.ComputeStats(skills, team) {
		teamLevel[st.Skill.ID] = st.CurrentLevel
	}

	resp := &skill.EmployeeSkillResponse{
		EmployeeID:     emp.ID,
		EmployeeName:   emp.FullName,
		DepartmentName: departmentName,
		Skills:         []skill.EmployeeSkillItem{},
		Categories:     []skill.CategoryGroup{},
		TotalTrainings: len(trainings),
	}
	for _, t := range trainings {
		if training.IsCompleted(t) {
			resp.CompletedTrainings++
		}
	}

	var levelSum float64
	for _, sk := range skills {
		level, ok := emp.LevelFor(sk.ID)
		if !ok {
			continue
		}
		categoryID := sk.CategoryID
		categoryName, known := categoryNames[categoryID]
		if !known {
			categoryID = ""
			categoryName = skill.UncategorizedName
		}
		gap := skill.Gap(sk.RequiredLevel, level)

		resp.Skills = append(resp.Skills, skill.EmployeeSkillItem{
			SkillID:       sk.ID,
			SkillName:     sk.Name,
			CategoryID:    categoryID,
			CategoryName:  categoryName,
			RequiredLevel: sk.RequiredLevel,
			Level:         level,
			TeamAverage:   teamLevel[sk.ID],
			Gap:           gap,
			IsCritical:    gap > criticalGapThreshold,

			TrainingCount:      covered[sk.ID],
			CompletedTrainings: completed[sk.ID],
		})

		levelSum += level
		if gap > 0 {
			resp.SkillsRequiringAttention++
		}
		if gap > criticalGapThreshold {
			resp.CriticalSkillsGap++
		}
	}

	resp.TotalSkills = len(resp.Skills)
	if resp.TotalSkills > 0 {
		resp.AverageLevel = levelSum / float64(resp.TotalSkills)
	}

	slices.SortFunc(resp.Skills, func(a, b skill.EmployeeSkillItem) int {
		if c := cmp.Compare(a.CategoryName, b.CategoryName); c != 0 {
			return c
		}
		if c := cmp.Compare(a.CategoryID, b.CategoryID); c != 0 {
			return c
		}
		if c := cmp.Compare(a.SkillName, b.SkillName); c != 0 {
			return c
		}
		return cmp.Compare(a.SkillID, b.SkillID)
	})

	// Skills are sorted by category, so groups are contiguous
	var groupLevels []float64
	for _, item := range resp.Skills {
		n := len(resp.Categories)
		if n == 0 || resp.Categories[n-1].CategoryID != item.CategoryID || resp.Categories[n-1].CategoryName != item.CategoryName {
			resp.Categories = append(resp.Categories, skill.CategoryGroup{
				CategoryID:   item.CategoryID,
				CategoryName: item.CategoryName,
			})
			groupLevels = append(groupLevels, 0)
			n++
		}
		resp.Categories[n-1].SkillCount++
		resp.Categories[n-1].TotalGap += item.Gap
		groupLevels[n-1] += item.Level
	}
	for i := range resp.Categories {
		resp.Categories[i].AverageLevel = groupLevels[i] / float64(resp.Categories[i].SkillCount)
	}

	return resp
}
