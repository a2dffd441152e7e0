package analytics

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/cmlabs-hris/training-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/master/department"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/skill"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/training"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func ids(rows []TrainingRow) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Training.ID)
	}
	return out
}

func groupIDs(groups []RankedGroup) []string {
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.ID)
	}
	return out
}

// fixture: today is 2024-06-15
func fixture() Input {
	return Input{
		Today: day(2024, 6, 15),
		Departments: []department.Department{
			{ID: "d-eng", Name: "Engineering"},
			{ID: "d-ops", Name: "Operations"},
			{ID: "d-hr", Name: "HR"},
		},
		Employees: []employee.Employee{
			{ID: "e1", FullName: "Ayu", DepartmentID: "d-eng", SkillLevels: []employee.SkillLevel{{SkillID: "go", Level: 2}}},
			{ID: "e2", FullName: "Budi", DepartmentID: "d-eng", SkillLevels: []employee.SkillLevel{{SkillID: "go", Level: 4}, {SkillID: "sql", Level: 3}}},
			{ID: "e3", FullName: "Citra", DepartmentID: "d-ops", SkillLevels: []employee.SkillLevel{{SkillID: "sql", Level: 1}}},
			{ID: "e4", FullName: "Dewi", DepartmentID: "d-hr"},
		},
		Categories: []skill.Category{
			{ID: "c-tech", Name: "Technical"},
			{ID: "c-soft", Name: "Soft"},
		},
		Skills: []skill.Skill{
			{ID: "go", CategoryID: "c-tech", Name: "Go", RequiredLevel: 4},
			{ID: "sql", CategoryID: "c-tech", Name: "SQL", RequiredLevel: 4},
			{ID: "comm", CategoryID: "c-soft", Name: "Communication", RequiredLevel: 3},
		},
		Programs: []training.Program{
			{ID: "p1", Name: "Onboarding"},
			{ID: "p2", Name: "Leadership"},
		},
		Trainings: []training.Training{
			{ID: "t1", EmployeeID: "e1", Status: training.StatusCompleted, StartDate: day(2024, 1, 10), EndDate: day(2024, 1, 20), ProgramID: strPtr("p1")},
			{ID: "t2", EmployeeID: "e1", Status: training.StatusInProgress, StartDate: day(2024, 6, 1), EndDate: day(2024, 6, 10), ProgramID: strPtr("p1")},
			{ID: "t3", EmployeeID: "e2", Status: training.StatusPending, StartDate: day(2024, 6, 20), EndDate: day(2024, 6, 25), ProgramID: strPtr("p2")},
			{ID: "t4", EmployeeID: "e3", Status: training.StatusInProgress, StartDate: day(2024, 6, 5), EndDate: day(2024, 6, 30)},
			{ID: "t5", EmployeeID: "e3", Status: training.StatusCompleted, StartDate: day(2023, 3, 1), EndDate: day(2023, 3, 5), ProgramID: strPtr("p2")},
			{ID: "t6", EmployeeID: "e2", Status: training.StatusCompleted, StartDate: day(2024, 6, 12), EndDate: day(2024, 6, 14), ProgramID: strPtr("p1")},
		},
	}
}

func TestAggregate_Totals(t *testing.T) {
	res, err := Aggregate(fixture(), DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 4, res.TotalEmployees)
	assert.Equal(t, 6, res.TotalTrainings)
	assert.Equal(t, 2, res.TotalTrainingPrograms)
	assert.Equal(t, 3, res.TotalSkillsTracked)
	assert.Equal(t, day(2024, 6, 15), res.Today)
}

func TestAggregate_StatusBreakdown(t *testing.T) {
	res, err := Aggregate(fixture(), DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, StatusBreakdown{Completed: 3, InProgress: 1, Pending: 1, Overdue: 1, Active: 2}, res.Status)
	b := res.Status
	assert.Equal(t, res.TotalTrainings, b.Completed+b.InProgress+b.Pending+b.Overdue)
	assert.Equal(t, 50.0, res.CompletionRate)
	assert.Equal(t, OverallStatusNeedsAttention, res.OverallStatus)
}

func TestAggregate_Skills(t *testing.T) {
	res, err := Aggregate(fixture(), DefaultConfig())
	require.NoError(t, err)

	assert.InDelta(t, 5.0/3.0, res.AverageSkillLevel, 1e-9)
	assert.Equal(t, 3, res.SkillsRequiringAttention)
	assert.Equal(t, 1, res.CriticalSkillsGap, "only comm has a gap above 2")

	require.Len(t, res.TopSkillGaps, 3)
	assert.Equal(t, "comm", res.TopSkillGaps[0].Skill.ID)
	assert.Equal(t, "sql", res.TopSkillGaps[1].Skill.ID)
	assert.Equal(t, "go", res.TopSkillGaps[2].Skill.ID)

	require.Len(t, res.SkillCategories, 2)
	assert.Equal(t, CategoryStat{ID: "c-tech", Name: "Technical", SkillCount: 2, AverageLevel: 2.5, TotalGap: 3, RequiringAttention: 2}, res.SkillCategories[0])
	assert.Equal(t, CategoryStat{ID: "c-soft", Name: "Soft", SkillCount: 1, AverageLevel: 0, TotalGap: 3, RequiringAttention: 1}, res.SkillCategories[1])
}

func TestAggregate_Rankings(t *testing.T) {
	res, err := Aggregate(fixture(), DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, []string{"d-eng", "d-ops", "d-hr"}, groupIDs(res.TopDepartments))
	eng := res.TopDepartments[0]
	assert.Equal(t, 2, eng.EmployeeCount)
	assert.Equal(t, 4, eng.TrainingCount)
	assert.Equal(t, 2, eng.CompletedCount)
	assert.Equal(t, 50.0, eng.CompletionRate)
	assert.Equal(t, 0.0, res.TopDepartments[2].CompletionRate)

	assert.Equal(t, []string{"p1", "p2"}, groupIDs(res.TopPerformingPrograms))
	assert.InDelta(t, 200.0/3.0, res.TopPerformingPrograms[0].CompletionRate, 1e-9)
	assert.Equal(t, 2, res.TopPerformingPrograms[0].EmployeeCount)
}

func TestAggregate_TopKLimitsRankings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TopKRankingSize = 1

	res, err := Aggregate(fixture(), cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"d-eng"}, groupIDs(res.TopDepartments))
	assert.Equal(t, []string{"p1"}, groupIDs(res.TopPerformingPrograms))
	require.Len(t, res.TopSkillGaps, 1)
	assert.Equal(t, "comm", res.TopSkillGaps[0].Skill.ID)
}

func TestAggregate_RecentAndUpcoming(t *testing.T) {
	res, err := Aggregate(fixture(), DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, []string{"t6", "t4", "t2", "t1", "t5"}, ids(res.RecentTrainings))
	assert.Equal(t, training.StatusOverdue, res.RecentTrainings[2].EffectiveStatus)
	assert.Equal(t, "Budi", res.RecentTrainings[0].EmployeeName)

	assert.Equal(t, []string{"t3"}, ids(res.UpcomingDeadlines))
	assert.Equal(t, 10, res.UpcomingDeadlines[0].DaysUntilDue)
	assert.Equal(t, 5, res.UpcomingDeadlines[0].DaysUntilStart)
}

func TestRecentTrainings_SkipsNotStarted(t *testing.T) {
	today := day(2024, 6, 1)
	trainings := []training.Training{
		{ID: "future", Status: training.StatusPending, StartDate: day(2024, 7, 1), EndDate: day(2024, 7, 5)},
		{ID: "past", Status: training.StatusInProgress, StartDate: day(2024, 5, 29), EndDate: day(2024, 6, 10)},
		{ID: "starts-today", Status: training.StatusPending, StartDate: day(2024, 6, 1), EndDate: day(2024, 6, 2)},
	}

	got := RecentTrainings(trainings, nil, today, 5)

	assert.Equal(t, []string{"starts-today", "past"}, ids(got))
	assert.Equal(t, -3, got[1].DaysUntilStart)
}

func TestUpcomingDeadlines_WindowIsInclusive(t *testing.T) {
	today := day(2024, 6, 15)
	trainings := []training.Training{
		{ID: "edge", Status: training.StatusInProgress, StartDate: day(2024, 6, 1), EndDate: day(2024, 6, 29)},
		{ID: "today", Status: training.StatusPending, StartDate: day(2024, 6, 1), EndDate: day(2024, 6, 15)},
		{ID: "beyond", Status: training.StatusInProgress, StartDate: day(2024, 6, 1), EndDate: day(2024, 6, 30)},
		{ID: "done", Status: training.StatusCompleted, StartDate: day(2024, 6, 1), EndDate: day(2024, 6, 20)},
		{ID: "late", Status: training.StatusInProgress, StartDate: day(2024, 6, 1), EndDate: day(2024, 6, 14)},
	}

	got := UpcomingDeadlines(trainings, nil, today, 14)

	assert.Equal(t, []string{"today", "edge"}, ids(got))
}

func TestAggregate_EmployeesNeedingTraining(t *testing.T) {
	res, err := Aggregate(fixture(), DefaultConfig())
	require.NoError(t, err)

	require.Len(t, res.EmployeesNeedingTraining, 2)
	assert.Equal(t, len(res.EmployeesNeedingTraining), res.EmployeesNeedingTrainingCount)

	e3 := res.EmployeesNeedingTraining[0]
	assert.Equal(t, "e3", e3.EmployeeID)
	assert.Equal(t, []NeedReason{NeedCriticalSkillGap}, e3.Reasons)
	assert.Equal(t, []string{"sql"}, e3.CriticalSkills)
	assert.Equal(t, 3.0, e3.MaxSkillGap)

	e4 := res.EmployeesNeedingTraining[1]
	assert.Equal(t, "e4", e4.EmployeeID)
	assert.Equal(t, []NeedReason{NeedNoRecentTraining}, e4.Reasons)
}

func TestAggregate_ReportingPeriodBoundary(t *testing.T) {
	in := fixture()
	cfg := DefaultConfig()
	// e1's latest training before t2 ended 2024-01-20; drop t2 and shrink the period
	in.Trainings = []training.Training{in.Trainings[0]}
	in.Employees = in.Employees[:1]

	cfg.ReportingPeriodDays = 147 // 2024-06-15 minus 147 days is 2024-01-20
	res, err := Aggregate(in, cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, res.EmployeesNeedingTrainingCount)

	cfg.ReportingPeriodDays = 146
	res, err = Aggregate(in, cfg)
	require.NoError(t, err)
	require.Equal(t, 1, res.EmployeesNeedingTrainingCount)
	assert.Equal(t, []NeedReason{NeedNoRecentTraining}, res.EmployeesNeedingTraining[0].Reasons)
}

func TestAggregate_Empty(t *testing.T) {
	res, err := Aggregate(Input{Today: day(2024, 1, 1)}, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.CompletionRate)
	assert.Equal(t, OverallStatusNoData, res.OverallStatus)
	assert.Equal(t, 0.0, res.AverageSkillLevel)
	assert.Empty(t, res.TopDepartments)
	assert.Empty(t, res.RecentTrainings)
	assert.Empty(t, res.EmployeesNeedingTraining)
	assert.Equal(t, 0, res.EmployeesNeedingTrainingCount)
}

func TestAggregate_InvalidRange(t *testing.T) {
	in := fixture()
	in.Trainings = append(in.Trainings, training.Training{ID: "bad", StartDate: day(2024, 6, 2), EndDate: day(2024, 6, 1)})

	res, err := Aggregate(in, DefaultConfig())

	assert.Nil(t, res)
	assert.True(t, errors.Is(err, training.ErrInvalidRange))
	var rangeErr *training.InvalidRangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, "bad", rangeErr.TrainingID)
}

func TestRanking_TiesOrderByID(t *testing.T) {
	in := Input{
		Today: day(2024, 6, 15),
		Departments: []department.Department{
			{ID: "d-c", Name: "C"}, {ID: "d-a", Name: "A"}, {ID: "d-b", Name: "B"},
		},
		Employees: []employee.Employee{
			{ID: "e-a", DepartmentID: "d-a"},
			{ID: "e-b", DepartmentID: "d-b"},
			{ID: "e-c", DepartmentID: "d-c"},
		},
	}
	for _, e := range in.Employees {
		in.Trainings = append(in.Trainings,
			training.Training{ID: e.ID + "-1", EmployeeID: e.ID, Status: training.StatusCompleted, StartDate: day(2024, 1, 1), EndDate: day(2024, 1, 2)},
			training.Training{ID: e.ID + "-2", EmployeeID: e.ID, Status: training.StatusPending, StartDate: day(2024, 7, 1), EndDate: day(2024, 7, 2)},
		)
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		rng.Shuffle(len(in.Departments), func(a, b int) {
			in.Departments[a], in.Departments[b] = in.Departments[b], in.Departments[a]
		})
		res, err := Aggregate(in, DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, []string{"d-a", "d-b", "d-c"}, groupIDs(res.TopDepartments))
	}
}

func TestRanking_TrainingCountBreaksRateTie(t *testing.T) {
	groups := []RankedGroup{
		{ID: "a", TrainingCount: 2, CompletionRate: 50},
		{ID: "b", TrainingCount: 4, CompletionRate: 50},
		{ID: "c", TrainingCount: 1, CompletionRate: 100},
	}
	assert.Equal(t, []string{"c", "b", "a"}, groupIDs(topK(groups, 10)))
}

func TestResolveOverallStatus(t *testing.T) {
	th := DefaultConfig().OverallStatus
	cases := []struct {
		total   int
		rate    float64
		overdue int
		want    OverallStatus
	}{
		{0, 0, 0, OverallStatusNoData},
		{10, 75, 0, OverallStatusOnTrack},
		{10, 74.99, 0, OverallStatusNeedsAttention},
		{10, 100, 1, OverallStatusNeedsAttention},
		{10, 40, 4, OverallStatusNeedsAttention},
		{10, 39.99, 0, OverallStatusCritical},
		{10, 100, 5, OverallStatusCritical},
	}
	for _, c := range cases {
		got := ResolveOverallStatus(c.total, c.rate, c.overdue, th)
		if got != c.want {
			t.Errorf("ResolveOverallStatus(%d, %v, %d) = %q, want %q", c.total, c.rate, c.overdue, got, c.want)
		}
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, Percent(0, 0))
	assert.Equal(t, 0.0, Percent(5, 0))
	assert.Equal(t, 50.0, Percent(1, 2))
	assert.Equal(t, 100.0, Percent(3, 3))
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.TopKRankingSize = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.OverallStatus.CriticalCompletionRate = 90
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.CriticalGapThreshold = -1
	assert.Error(t, cfg.Validate())
}
