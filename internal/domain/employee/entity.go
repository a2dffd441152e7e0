package employee

import "time"

type Employee struct {
	ID               string
	CompanyID        string
	DepartmentID     string
	EmployeeCode     string
	FullName         string
	HireDate         time.Time
	EmploymentStatus EmploymentStatus
	SkillLevels      []SkillLevel
	QualificationIDs []string
}

// SkillLevel is an employee's assessed level for one skill
type SkillLevel struct {
	SkillID string
	Level   float64
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

// LevelFor returns the employee's level for skillID and whether one is recorded.
func (e Employee) LevelFor(skillID string) (float64, bool) {
	for _, sl := range e.SkillLevels {
		if sl.SkillID == skillID {
			return sl.Level, true
		}
	}
	return 0, false
}
