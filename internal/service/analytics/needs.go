package analytics

import (
	"cmp"
	"slices"
	"time"

	"github.com/cmlabs-hris/training-backend-go/internal/domain/skill"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/training"
)

type NeedReason string

const (
	// NeedNoRecentTraining: no training ending on or after the reporting period start.
	NeedNoRecentTraining NeedReason = "no_recent_training"
	// NeedCriticalSkillGap: an own skill level falls short by more than the critical threshold.
	NeedCriticalSkillGap NeedReason = "critical_skill_gap"
)

// EmployeeNeed explains why an employee needs training.
type EmployeeNeed struct {
	EmployeeID     string
	EmployeeCode   string
	FullName       string
	DepartmentID   string
	Reasons        []NeedReason
	CriticalSkills []string // skill IDs above the critical gap threshold
	MaxSkillGap    float64
}

// EmployeesNeedingTraining lists employees with no training in the reporting
// period or with a critical gap on one of their own skills. Ordered by reason
// count desc, largest gap desc, ID asc.
func EmployeesNeedingTraining(in Input, today time.Time, cfg Config) []EmployeeNeed {
	periodStart := training.DateOf(today).AddDate(0, 0, -cfg.ReportingPeriodDays)

	recent := make(map[string]bool, len(in.Employees))
	for _, t := range in.Trainings {
		if !training.DateOf(t.EndDate).Before(periodStart) {
			recent[t.EmployeeID] = true
		}
	}

	required := make(map[string]float64, len(in.Skills))
	for _, s := range in.Skills {
		required[s.ID] = s.RequiredLevel
	}

	var needs []EmployeeNeed
	for _, e := range in.Employees {
		need := EmployeeNeed{
			EmployeeID:   e.ID,
			EmployeeCode: e.EmployeeCode,
			FullName:     e.FullName,
			DepartmentID: e.DepartmentID,
		}
		if !recent[e.ID] {
			need.Reasons = append(need.Reasons, NeedNoRecentTraining)
		}
		for _, sl := range e.SkillLevels {
			req, ok := required[sl.SkillID]
			if !ok {
				continue
			}
			gap := skill.Gap(req, sl.Level)
			if gap > need.MaxSkillGap {
				need.MaxSkillGap = gap
			}
			if gap > cfg.CriticalGapThreshold {
				need.CriticalSkills = append(need.CriticalSkills, sl.SkillID)
			}
		}
		if len(need.CriticalSkills) > 0 {
			need.Reasons = append(need.Reasons, NeedCriticalSkillGap)
		}
		if len(need.Reasons) > 0 {
			needs = append(needs, need)
		}
	}

	slices.SortFunc(needs, func(a, b EmployeeNeed) int {
		if c := cmp.Compare(len(b.Reasons), len(a.Reasons)); c != 0 {
			return c
		}
		if c := cmp.Compare(b.MaxSkillGap, a.MaxSkillGap); c != 0 {
			return c
		}
		return cmp.Compare(a.EmployeeID, b.EmployeeID)
	})
	return needs
}
