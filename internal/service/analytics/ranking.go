package analytics

import (
	"cmp"
	"slices"
	"time"

	"github.com/cmlabs-hris/training-backend-go/internal/domain/skill"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/training"
)

// RankedGroup is a department or program with its completion figures.
type RankedGroup struct {
	ID             string
	Name           string
	EmployeeCount  int
	TrainingCount  int
	CompletedCount int
	CompletionRate float64 // percentage
}

// compareGroups orders by completion rate desc, training count desc, ID asc.
func compareGroups(a, b RankedGroup) int {
	if c := cmp.Compare(b.CompletionRate, a.CompletionRate); c != 0 {
		return c
	}
	if c := cmp.Compare(b.TrainingCount, a.TrainingCount); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func topK(groups []RankedGroup, k int) []RankedGroup {
	slices.SortFunc(groups, compareGroups)
	if k >= 0 && len(groups) > k {
		groups = groups[:k]
	}
	return groups
}

func departmentGroups(in Input) []RankedGroup {
	deptOf := make(map[string]string, len(in.Employees))
	index := make(map[string]int, len(in.Departments))
	groups := make([]RankedGroup, 0, len(in.Departments))
	for _, d := range in.Departments {
		index[d.ID] = len(groups)
		groups = append(groups, RankedGroup{ID: d.ID, Name: d.Name})
	}
	for _, e := range in.Employees {
		deptOf[e.ID] = e.DepartmentID
		if i, ok := index[e.DepartmentID]; ok {
			groups[i].EmployeeCount++
		}
	}
	for _, t := range in.Trainings {
		i, ok := index[deptOf[t.EmployeeID]]
		if !ok {
			continue
		}
		groups[i].TrainingCount++
		if training.IsCompleted(t) {
			groups[i].CompletedCount++
		}
	}
	for i := range groups {
		groups[i].CompletionRate = Percent(groups[i].CompletedCount, groups[i].TrainingCount)
	}
	return groups
}

func programGroups(in Input) []RankedGroup {
	index := make(map[string]int, len(in.Programs))
	groups := make([]RankedGroup, 0, len(in.Programs))
	for _, p := range in.Programs {
		index[p.ID] = len(groups)
		groups = append(groups, RankedGroup{ID: p.ID, Name: p.Name})
	}
	enrolled := make([]map[string]struct{}, len(groups))
	for _, t := range in.Trainings {
		if t.ProgramID == nil {
			continue
		}
		i, ok := index[*t.ProgramID]
		if !ok {
			continue
		}
		groups[i].TrainingCount++
		if training.IsCompleted(t) {
			groups[i].CompletedCount++
		}
		if enrolled[i] == nil {
			enrolled[i] = make(map[string]struct{})
		}
		enrolled[i][t.EmployeeID] = struct{}{}
	}
	for i := range groups {
		groups[i].EmployeeCount = len(enrolled[i])
		groups[i].CompletionRate = Percent(groups[i].CompletedCount, groups[i].TrainingCount)
	}
	return groups
}

// TopSkillGaps returns skills with a positive gap ordered by gap desc,
// employees below required desc, ID asc.
func TopSkillGaps(stats []skill.Stat, k int) []skill.Stat {
	gaps := make([]skill.Stat, 0, len(stats))
	for _, st := range stats {
		if st.Gap > 0 {
			gaps = append(gaps, st)
		}
	}
	slices.SortFunc(gaps, func(a, b skill.Stat) int {
		if c := cmp.Compare(b.Gap, a.Gap); c != 0 {
			return c
		}
		if c := cmp.Compare(b.BelowRequired, a.BelowRequired); c != 0 {
			return c
		}
		return cmp.Compare(a.Skill.ID, b.Skill.ID)
	})
	if k >= 0 && len(gaps) > k {
		gaps = gaps[:k]
	}
	return gaps
}

// RecentTrainings returns the most recently started trainings, start date desc.
// Trainings scheduled after today have not started and are left out.
func RecentTrainings(trainings []training.Training, names map[string]string, today time.Time, limit int) []TrainingRow {
	today = training.DateOf(today)
	sorted := make([]training.Training, 0, len(trainings))
	for _, t := range trainings {
		if training.DateOf(t.StartDate).After(today) {
			continue
		}
		sorted = append(sorted, t)
	}
	slices.SortFunc(sorted, func(a, b training.Training) int {
		if c := training.DateOf(b.StartDate).Compare(training.DateOf(a.StartDate)); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return rows(sorted, names, today)
}

// UpcomingDeadlines returns unfinished trainings ending within windowDays of
// today, both ends inclusive, end date asc.
func UpcomingDeadlines(trainings []training.Training, names map[string]string, today time.Time, windowDays int) []TrainingRow {
	today = training.DateOf(today)
	horizon := today.AddDate(0, 0, windowDays)

	var due []training.Training
	for _, t := range trainings {
		if training.IsCompleted(t) {
			continue
		}
		end := training.DateOf(t.EndDate)
		if end.Before(today) || end.After(horizon) {
			continue
		}
		due = append(due, t)
	}
	slices.SortFunc(due, func(a, b training.Training) int {
		if c := training.DateOf(a.EndDate).Compare(training.DateOf(b.EndDate)); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return rows(due, names, today)
}

func rows(trainings []training.Training, names map[string]string, today time.Time) []TrainingRow {
	out := make([]TrainingRow, 0, len(trainings))
	for _, t := range trainings {
		out = append(out, TrainingRow{
			Training:        t,
			EmployeeName:    names[t.EmployeeID],
			EffectiveStatus: training.EffectiveStatus(t, today),
			DaysUntilStart:  training.DaysUntilStart(t, today),
			DaysUntilDue:    training.DaysBetween(today, t.EndDate),
		})
	}
	return out
}
