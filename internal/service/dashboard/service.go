package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/training-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/master/department"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/skill"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/training"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/logger"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/training-backend-go/internal/service/analytics"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	trainingRepo   training.TrainingRepository
	programRepo    training.ProgramRepository
	skillRepo      skill.SkillRepository
	departmentRepo department.DepartmentRepository
	cfg            analytics.Config
	log            *logger.Logger
	now            func() time.Time
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	trainingRepo training.TrainingRepository,
	programRepo training.ProgramRepository,
	skillRepo skill.SkillRepository,
	departmentRepo department.DepartmentRepository,
	cfg analytics.Config,
	log *logger.Logger,
) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		employeeRepo:   employeeRepo,
		trainingRepo:   trainingRepo,
		programRepo:    programRepo,
		skillRepo:      skillRepo,
		departmentRepo: departmentRepo,
		cfg:            cfg,
		log:            log.WithComponent("dashboard"),
		now:            time.Now,
	}
}

// WithClock replaces the wall clock used when no date is requested
func (s *DashboardServiceImpl) WithClock(now func() time.Time) *DashboardServiceImpl {
	s.now = now
	return s
}

// GetDashboard returns combined dashboard data using parallel goroutines
// 6 goroutines, each with 1 DB query
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, date string) (*dashboard.DashboardResponse, error) {
	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	log := s.log.WithCompanyID(companyID)

	now := s.now()
	today, err := validator.ParseDateOrToday(date, now)
	if err != nil {
		return nil, err
	}

	in := analytics.Input{Today: today}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		employees, err := s.employeeRepo.GetActiveByCompanyID(gCtx, companyID)
		if err != nil {
			return fmt.Errorf("failed to get employees: %w", err)
		}
		in.Employees = employees
		return nil
	})

	g.Go(func() error {
		trainings, err := s.trainingRepo.ListByCompany(gCtx, companyID)
		if err != nil {
			return fmt.Errorf("failed to get trainings: %w", err)
		}
		in.Trainings = trainings
		return nil
	})

	g.Go(func() error {
		programs, err := s.programRepo.ListByCompany(gCtx, companyID)
		if err != nil {
			return fmt.Errorf("failed to get training programs: %w", err)
		}
		in.Programs = programs
		return nil
	})

	g.Go(func() error {
		skills, err := s.skillRepo.GetByCompanyID(gCtx, companyID)
		if err != nil {
			return fmt.Errorf("failed to get skills: %w", err)
		}
		in.Skills = skills
		return nil
	})

	g.Go(func() error {
		categories, err := s.skillRepo.GetCategoriesByCompanyID(gCtx, companyID)
		if err != nil {
			return fmt.Errorf("failed to get skill categories: %w", err)
		}
		in.Categories = categories
		return nil
	})

	g.Go(func() error {
		departments, err := s.departmentRepo.GetByCompanyID(gCtx, companyID)
		if err != nil {
			return fmt.Errorf("failed to get departments: %w", err)
		}
		in.Departments = departments
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result, err := analytics.Aggregate(in, s.cfg)
	if err != nil {
		log.Warn().Err(err).Msg("dashboard aggregation rejected training data")
		return nil, err
	}

	log.Debug().
		Int("trainings", result.TotalTrainings).
		Str("overall_status", string(result.OverallStatus)).
		Msg("dashboard aggregated")

	return toResponse(result, in.Categories, now), nil
}

func toResponse(r *analytics.Result, categories []skill.Category, generatedAt time.Time) *dashboard.DashboardResponse {
	categoryNames := skill.CategoryNames(categories)

	resp := &dashboard.DashboardResponse{
		Date:        r.Today.Format("2006-01-02"),
		GeneratedAt: generatedAt.UTC().Format(time.RFC3339),
		Summary: dashboard.SummaryResponse{
			TotalEmployees:        r.TotalEmployees,
			TotalTrainings:        r.TotalTrainings,
			TotalTrainingPrograms: r.TotalTrainingPrograms,
			TotalSkillsTracked:    r.TotalSkillsTracked,
			CompletionRate:        r.CompletionRate,
			OverallStatus:         string(r.OverallStatus),
		},
		StatusBreakdown: dashboard.StatusBreakdownResponse{
			Completed:  r.Status.Completed,
			InProgress: r.Status.InProgress,
			Pending:    r.Status.Pending,
			Overdue:    r.Status.Overdue,
			Active:     r.Status.Active,
		},
		Skills: dashboard.SkillOverviewResponse{
			AverageSkillLevel:        r.AverageSkillLevel,
			CriticalSkillsGap:        r.CriticalSkillsGap,
			SkillsRequiringAttention: r.SkillsRequiringAttention,
			Categories:               make([]dashboard.SkillCategoryItem, 0, len(r.SkillCategories)),
		},
		TopDepartments:                toRankedItems(r.TopDepartments),
		TopPerformingPrograms:         toRankedItems(r.TopPerformingPrograms),
		TopSkillGaps:                  make([]dashboard.SkillGapItem, 0, len(r.TopSkillGaps)),
		RecentTrainings:               toTrainingRows(r.RecentTrainings),
		UpcomingDeadlines:             toTrainingRows(r.UpcomingDeadlines),
		EmployeesNeedingTraining:      make([]dashboard.EmployeeNeedItem, 0, len(r.EmployeesNeedingTraining)),
		EmployeesNeedingTrainingCount: r.EmployeesNeedingTrainingCount,
	}

	// Calculate percentages
	if r.TotalTrainings > 0 {
		resp.StatusBreakdown.CompletedPercent = analytics.Percent(r.Status.Completed, r.TotalTrainings)
		resp.StatusBreakdown.InProgressPercent = analytics.Percent(r.Status.InProgress, r.TotalTrainings)
		resp.StatusBreakdown.PendingPercent = analytics.Percent(r.Status.Pending, r.TotalTrainings)
		resp.StatusBreakdown.OverduePercent = analytics.Percent(r.Status.Overdue, r.TotalTrainings)
	}

	for _, c := range r.SkillCategories {
		resp.Skills.Categories = append(resp.Skills.Categories, dashboard.SkillCategoryItem{
			CategoryID:         c.ID,
			CategoryName:       c.Name,
			SkillCount:         c.SkillCount,
			AverageLevel:       c.AverageLevel,
			TotalGap:           c.TotalGap,
			RequiringAttention: c.RequiringAttention,
		})
	}

	for _, st := range r.TopSkillGaps {
		categoryName, ok := categoryNames[st.Skill.CategoryID]
		if !ok {
			categoryName = skill.UncategorizedName
		}
		resp.TopSkillGaps = append(resp.TopSkillGaps, dashboard.SkillGapItem{
			SkillID:       st.Skill.ID,
			SkillName:     st.Skill.Name,
			CategoryName:  categoryName,
			RequiredLevel: st.Skill.RequiredLevel,
			CurrentLevel:  st.CurrentLevel,
			Gap:           st.Gap,
			Holders:       st.Holders,
			BelowRequired: st.BelowRequired,
		})
	}

	for _, need := range r.EmployeesNeedingTraining {
		reasons := make([]string, 0, len(need.Reasons))
		for _, reason := range need.Reasons {
			reasons = append(reasons, string(reason))
		}
		criticalSkills := need.CriticalSkills
		if criticalSkills == nil {
			criticalSkills = []string{}
		}
		resp.EmployeesNeedingTraining = append(resp.EmployeesNeedingTraining, dashboard.EmployeeNeedItem{
			EmployeeID:     need.EmployeeID,
			EmployeeCode:   need.EmployeeCode,
			FullName:       need.FullName,
			DepartmentID:   need.DepartmentID,
			Reasons:        reasons,
			CriticalSkills: criticalSkills,
			MaxSkillGap:    need.MaxSkillGap,
		})
	}

	return resp
}

func toRankedItems(groups []analytics.RankedGroup) []dashboard.RankedGroupItem {
	items := make([]dashboard.RankedGroupItem, 0, len(groups))
	for _, g := range groups {
		items = append(items, dashboard.RankedGroupItem{
			ID:             g.ID,
			Name:           g.Name,
			EmployeeCount:  g.EmployeeCount,
			TrainingCount:  g.TrainingCount,
			CompletedCount: g.CompletedCount,
			CompletionRate: g.CompletionRate,
		})
	}
	return items
}

func toTrainingRows(rows []analytics.TrainingRow) []dashboard.TrainingRowItem {
	items := make([]dashboard.TrainingRowItem, 0, len(rows))
	for _, row := range rows {
		item := dashboard.TrainingRowItem{
			ID:              row.Training.ID,
			Title:           row.Training.Title,
			EmployeeID:      row.Training.EmployeeID,
			EmployeeName:    row.EmployeeName,
			Status:          string(row.Training.Status),
			EffectiveStatus: string(row.EffectiveStatus),
			StatusLabel:     row.EffectiveStatus.Label(),
			StartDate:       row.Training.StartDate.Format("2006-01-02"),
			EndDate:         row.Training.EndDate.Format("2006-01-02"),
			DaysUntilStart:  row.DaysUntilStart,
			DaysUntilDue:    row.DaysUntilDue,
		}
		if training.HasProgress(row.Training) {
			progress := row.Training.ProgressPercentage
			item.ProgressPercentage = &progress
		}
		items = append(items, item)
	}
	return items
}
