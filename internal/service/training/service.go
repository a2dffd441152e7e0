package training

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/cmlabs-hris/training-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/master/department"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/qualification"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/skill"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/training"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/logger"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type TrainingServiceImpl struct {
	trainingRepo      training.TrainingRepository
	programRepo       training.ProgramRepository
	certificateRepo   training.CertificateRepository
	employeeRepo      employee.EmployeeRepository
	departmentRepo    department.DepartmentRepository
	skillRepo         skill.SkillRepository
	qualificationRepo qualification.QualificationRepository
	log               *logger.Logger
	now               func() time.Time
}

func NewTrainingService(
	trainingRepo training.TrainingRepository,
	programRepo training.ProgramRepository,
	certificateRepo training.CertificateRepository,
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	skillRepo skill.SkillRepository,
	qualificationRepo qualification.QualificationRepository,
	log *logger.Logger,
) *TrainingServiceImpl {
	return &TrainingServiceImpl{
		trainingRepo:      trainingRepo,
		programRepo:       programRepo,
		certificateRepo:   certificateRepo,
		employeeRepo:      employeeRepo,
		departmentRepo:    departmentRepo,
		skillRepo:         skillRepo,
		qualificationRepo: qualificationRepo,
		log:               log.WithComponent("training"),
		now:               time.Now,
	}
}

// WithClock replaces the wall clock used when no date is requested
func (s *TrainingServiceImpl) WithClock(now func() time.Time) *TrainingServiceImpl {
	s.now = now
	return s
}

// GetDetail implements training.TrainingService.
func (s *TrainingServiceImpl) GetDetail(ctx context.Context, id string, date string) (*training.TrainingDetailResponse, error) {
	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	today, err := validator.ParseDateOrToday(date, s.now())
	if err != nil {
		return nil, err
	}

	t, err := s.trainingRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	duration, err := training.DurationDays(t)
	if err != nil {
		return nil, err
	}

	var (
		emp            employee.Employee
		departmentName string
		program        *training.Program
		skills         []skill.Skill
		categories     []skill.Category
		certificates   []training.Certificate
		qualifications []qualification.Qualification
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		e, err := s.employeeRepo.GetByID(gCtx, companyID, t.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}
		emp = e
		if e.DepartmentID == "" {
			return nil
		}
		d, err := s.departmentRepo.GetByID(gCtx, e.DepartmentID, companyID)
		if err != nil {
			if errors.Is(err, department.ErrDepartmentNotFound) {
				return nil
			}
			return fmt.Errorf("failed to get department: %w", err)
		}
		departmentName = d.Name
		return nil
	})

	if t.ProgramID != nil {
		g.Go(func() error {
			p, err := s.programRepo.GetByID(gCtx, companyID, *t.ProgramID)
			if err != nil {
				if errors.Is(err, training.ErrProgramNotFound) {
					s.log.WithCompanyID(companyID).Warn().Str("training_id", t.ID).Str("program_id", *t.ProgramID).Msg("training references a missing program")
					return nil
				}
				return fmt.Errorf("failed to get training program: %w", err)
			}
			program = &p
			return nil
		})
	}

	g.Go(func() error {
		result, err := s.skillRepo.GetByIDs(gCtx, companyID, t.SkillIDs)
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
		result, err := s.certificateRepo.ListByTraining(gCtx, t.ID)
		if err != nil {
			return fmt.Errorf("failed to get certificates: %w", err)
		}
		certificates = result
		return nil
	})

	g.Go(func() error {
		result, err := s.qualificationRepo.ListByTraining(gCtx, t.ID)
		if err != nil {
			return fmt.Errorf("failed to get qualifications: %w", err)
		}
		qualifications = result
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &training.TrainingDetailResponse{
		ID:                  t.ID,
		Title:               t.Title,
		Provider:            t.Provider,
		Status:              string(t.Status),
		EffectiveStatus:     string(training.EffectiveStatus(t, today)),
		StatusLabel:         training.EffectiveStatus(t, today).Label(),
		StartDate:           t.StartDate.Format("2006-01-02"),
		EndDate:             t.EndDate.Format("2006-01-02"),
		DaysUntilStart:      training.DaysUntilStart(t, today),
		DurationDays:        duration,
		IsOverdue:           training.IsOverdue(t, today),
		IsCompleted:         training.IsCompleted(t),
		HasCertificate:      training.HasCertificate(t),
		CertificateURL:      t.CertificateURL,
		CertificatePdfURL:   t.CertificatePdfURL,
		CertificateFileName: t.CertificateFileName,
		Employee: training.EmployeeItem{
			ID:             emp.ID,
			EmployeeCode:   emp.EmployeeCode,
			FullName:       emp.FullName,
			DepartmentID:   emp.DepartmentID,
			DepartmentName: departmentName,
		},
		Skills:            make([]training.SkillItem, 0, len(skills)),
		Certificates:      make([]training.CertificateItem, 0, len(certificates)),
		Qualifications:    toQualificationItems(qualifications, today),
		TotalCertificates: len(certificates),
		TotalSkills:       len(skills),
		Date:              today.Format("2006-01-02"),
	}

	if training.HasProgress(t) {
		progress := t.ProgressPercentage
		resp.ProgressPercentage = &progress
	}

	if program != nil {
		resp.Program = &training.ProgramItem{ID: program.ID, Name: program.Name}
	}

	categoryNames := skill.CategoryNames(categories)
	slices.SortFunc(skills, func(a, b skill.Skill) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	for _, sk := range skills {
		categoryName, ok := categoryNames[sk.CategoryID]
		if !ok {
			categoryName = skill.UncategorizedName
		}
		resp.Skills = append(resp.Skills, training.SkillItem{
			ID:            sk.ID,
			Name:          sk.Name,
			CategoryName:  categoryName,
			RequiredLevel: sk.RequiredLevel,
		})
	}

	for _, c := range certificates {
		resp.Certificates = append(resp.Certificates, training.CertificateItem{
			ID:        c.ID,
			IssueDate: c.IssueDate.Format("2006-01-02"),
			URL:       c.URL,
			PdfURL:    c.PdfURL,
		})
	}

	return resp, nil
}

func toQualificationItems(qualifications []qualification.Qualification, today time.Time) []training.QualificationItem {
	items := make([]training.QualificationItem, 0, len(qualifications))
	for _, q := range qualifications {
		item := training.QualificationItem{
			ID:          q.ID,
			Name:        q.Name,
			IssuingBody: q.IssuingBody,
			IsExpired:   q.IsExpired(today),
		}
		if q.ExpiresAt != nil {
			expiresAt := q.ExpiresAt.Format("2006-01-02")
			item.ExpiresAt = &expiresAt
		}
		items = append(items, item)
	}
	return items
}
