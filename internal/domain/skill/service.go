package skill

import "context"

// SkillService defines the interface for the skills page
type SkillService interface {
	// GetEmployeeSkills returns the skill bundle of one employee
	GetEmployeeSkills(ctx context.Context, employeeID string) (*EmployeeSkillResponse, error)
}
