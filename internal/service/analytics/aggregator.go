package analytics

import (
	"time"

	"github.com/cmlabs-hris/training-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/master/department"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/skill"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/training"
)

// Input is a complete snapshot of one company's entities.
type Input struct {
	Today       time.Time
	Employees   []employee.Employee
	Trainings   []training.Training
	Programs    []training.Program
	Skills      []skill.Skill
	Categories  []skill.Category
	Departments []department.Department
}

// Result is the dashboard statistics derived from an Input.
type Result struct {
	Today time.Time

	TotalEmployees        int
	TotalTrainings        int
	TotalTrainingPrograms int
	TotalSkillsTracked    int

	Status         StatusBreakdown
	CompletionRate float64 // percentage
	OverallStatus  OverallStatus

	AverageSkillLevel        float64
	CriticalSkillsGap        int
	SkillsRequiringAttention int
	SkillCategories          []CategoryStat

	TopDepartments        []RankedGroup
	TopPerformingPrograms []RankedGroup
	TopSkillGaps          []skill.Stat

	RecentTrainings   []TrainingRow
	UpcomingDeadlines []TrainingRow

	EmployeesNeedingTraining      []EmployeeNeed
	EmployeesNeedingTrainingCount int
}

// CategoryStat buckets skill statistics by category.
type CategoryStat struct {
	ID                 string
	Name               string
	SkillCount         int
	AverageLevel       float64
	TotalGap           float64
	RequiringAttention int
}

// TrainingRow is a training enriched for list display.
type TrainingRow struct {
	Training        training.Training
	EmployeeName    string
	EffectiveStatus training.Status
	DaysUntilStart  int
	DaysUntilDue    int
}

// Aggregate reduces the input into dashboard statistics. It fails with a
// *training.InvalidRangeError when any training ends before it starts.
func Aggregate(in Input, cfg Config) (*Result, error) {
	for _, t := range in.Trainings {
		if err := training.ValidateRange(t); err != nil {
			return nil, err
		}
	}

	today := training.DateOf(in.Today)
	res := &Result{
		Today:                 today,
		TotalEmployees:        len(in.Employees),
		TotalTrainings:        len(in.Trainings),
		TotalTrainingPrograms: len(in.Programs),
		TotalSkillsTracked:    len(in.Skills),
	}

	res.Status = breakdown(in.Trainings, today)
	res.CompletionRate = Percent(res.Status.Completed, res.TotalTrainings)
	res.OverallStatus = ResolveOverallStatus(res.TotalTrainings, res.CompletionRate, res.Status.Overdue, cfg.OverallStatus)

	stats := skill.ComputeStats(in.Skills, in.Employees)
	var levelSum float64
	for _, st := range stats {
		levelSum += st.CurrentLevel
		if st.Gap > 0 {
			res.SkillsRequiringAttention++
		}
		if st.Gap > cfg.CriticalGapThreshold {
			res.CriticalSkillsGap++
		}
	}
	if len(stats) > 0 {
		res.AverageSkillLevel = levelSum / float64(len(stats))
	}
	res.SkillCategories = categoryStats(stats, in.Categories)

	res.TopDepartments = topK(departmentGroups(in), cfg.TopKRankingSize)
	res.TopPerformingPrograms = topK(programGroups(in), cfg.TopKRankingSize)
	res.TopSkillGaps = TopSkillGaps(stats, cfg.TopKRankingSize)

	names := employeeNames(in.Employees)
	res.RecentTrainings = RecentTrainings(in.Trainings, names, today, cfg.RecentTrainingsLimit)
	res.UpcomingDeadlines = UpcomingDeadlines(in.Trainings, names, today, cfg.UpcomingDeadlineWindowDays)

	res.EmployeesNeedingTraining = EmployeesNeedingTraining(in, today, cfg)
	res.EmployeesNeedingTrainingCount = len(res.EmployeesNeedingTraining)

	return res, nil
}

func breakdown(trainings []training.Training, today time.Time) StatusBreakdown {
	var b StatusBreakdown
	for _, t := range trainings {
		switch {
		case training.IsCompleted(t):
			b.Completed++
		case training.IsOverdue(t, today):
			b.Overdue++
		case t.Status == training.StatusInProgress:
			b.InProgress++
		default:
			b.Pending++
		}
	}
	b.Active = b.InProgress + b.Pending
	return b
}

func categoryStats(stats []skill.Stat, categories []skill.Category) []CategoryStat {
	byID := make(map[string]*CategoryStat, len(categories))
	out := make([]*CategoryStat, 0, len(categories))
	for _, c := range categories {
		cs := &CategoryStat{ID: c.ID, Name: c.Name}
		byID[c.ID] = cs
		out = append(out, cs)
	}

	levelSums := make(map[*CategoryStat]float64)
	for _, st := range stats {
		cs, ok := byID[st.Skill.CategoryID]
		if !ok {
			cs, ok = byID[""]
			if !ok {
				cs = &CategoryStat{Name: skill.UncategorizedName}
				byID[""] = cs
				out = append(out, cs)
			}
		}
		cs.SkillCount++
		cs.TotalGap += st.Gap
		if st.Gap > 0 {
			cs.RequiringAttention++
		}
		levelSums[cs] += st.CurrentLevel
	}

	result := make([]CategoryStat, 0, len(out))
	for _, cs := range out {
		if cs.SkillCount > 0 {
			cs.AverageLevel = levelSums[cs] / float64(cs.SkillCount)
		}
		result = append(result, *cs)
	}
	return result
}

func employeeNames(employees []employee.Employee) map[string]string {
	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.FullName
	}
	return names
}
