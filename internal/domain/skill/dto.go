package skill

// ========== EMPLOYEE SKILLS ==========

// EmployeeSkillResponse is the skills page bundle for one employee
type EmployeeSkillResponse struct {
	EmployeeID               string              `json:"employee_id"`
	EmployeeName             string              `json:"employee_name"`
	DepartmentName           string              `json:"department_name,omitempty"`
	Skills                   []EmployeeSkillItem `json:"skills"`
	Categories               []CategoryGroup     `json:"categories"`
	TotalSkills              int                 `json:"total_skills"`
	AverageLevel             float64             `json:"average_level"`
	SkillsRequiringAttention int                 `json:"skills_requiring_attention"` // gap > 0
	CriticalSkillsGap        int                 `json:"critical_skills_gap"`        // gap above critical threshold
	TotalTrainings           int                 `json:"total_trainings"`
	CompletedTrainings       int                 `json:"completed_trainings"`
}

// EmployeeSkillItem is one skill row of the employee
type EmployeeSkillItem struct {
	SkillID       string  `json:"skill_id"`
	SkillName     string  `json:"skill_name"`
	CategoryID    string  `json:"category_id,omitempty"`
	CategoryName  string  `json:"category_name"`
	RequiredLevel float64 `json:"required_level"`
	Level         float64 `json:"level"`
	TeamAverage   float64 `json:"team_average"`
	Gap           float64 `json:"gap"`
	IsCritical    bool    `json:"is_critical"`

	// trainings of this employee that cover the skill
	TrainingCount      int `json:"training_count"`
	CompletedTrainings int `json:"completed_trainings"`
}

// CategoryGroup summarises the employee's skills in a category
type CategoryGroup struct {
	CategoryID   string  `json:"category_id,omitempty"`
	CategoryName string  `json:"category_name"`
	SkillCount   int     `json:"skill_count"`
	AverageLevel float64 `json:"average_level"`
	TotalGap     float64 `json:"total_gap"`
}
