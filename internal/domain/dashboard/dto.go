package dashboard

// ========== TRAINING DASHBOARD ==========

// DashboardResponse is the combined response for the training dashboard endpoint
type DashboardResponse struct {
	Date                          string                  `json:"date"`         // Format: "YYYY-MM-DD"
	GeneratedAt                   string                  `json:"generated_at"` // RFC3339
	Summary                       SummaryResponse         `json:"summary"`
	StatusBreakdown               StatusBreakdownResponse `json:"status_breakdown"`
	Skills                        SkillOverviewResponse   `json:"skills"`
	TopDepartments                []RankedGroupItem       `json:"top_departments"`
	TopPerformingPrograms         []RankedGroupItem       `json:"top_performing_programs"`
	TopSkillGaps                  []SkillGapItem          `json:"top_skill_gaps"`
	RecentTrainings               []TrainingRowItem       `json:"recent_trainings"`
	UpcomingDeadlines             []TrainingRowItem       `json:"upcoming_deadlines"`
	EmployeesNeedingTraining      []EmployeeNeedItem      `json:"employees_needing_training"`
	EmployeesNeedingTrainingCount int                     `json:"employees_needing_training_count"`
}

// ========== SUMMARY CARDS ==========

type SummaryResponse struct {
	TotalEmployees        int     `json:"total_employees"`
	TotalTrainings        int     `json:"total_trainings"`
	TotalTrainingPrograms int     `json:"total_training_programs"`
	TotalSkillsTracked    int     `json:"total_skills_tracked"`
	CompletionRate        float64 `json:"completion_rate"` // percentage 0-100
	OverallStatus         string  `json:"overall_status"`  // On Track, Needs Attention, Critical, N/A
}

// ========== STATUS BREAKDOWN (pie chart) ==========

// StatusBreakdownResponse partitions all trainings; Active = InProgress + Pending
type StatusBreakdownResponse struct {
	Completed         int     `json:"completed"`
	InProgress        int     `json:"in_progress"`
	Pending           int     `json:"pending"`
	Overdue           int     `json:"overdue"`
	Active            int     `json:"active"`
	CompletedPercent  float64 `json:"completed_percent"`
	InProgressPercent float64 `json:"in_progress_percent"`
	PendingPercent    float64 `json:"pending_percent"`
	OverduePercent    float64 `json:"overdue_percent"`
}

// ========== SKILLS ==========

type SkillOverviewResponse struct {
	AverageSkillLevel        float64             `json:"average_skill_level"`
	CriticalSkillsGap        int                 `json:"critical_skills_gap"`
	SkillsRequiringAttention int                 `json:"skills_requiring_attention"`
	Categories               []SkillCategoryItem `json:"categories"`
}

type SkillCategoryItem struct {
	CategoryID         string  `json:"category_id,omitempty"`
	CategoryName       string  `json:"category_name"`
	SkillCount         int     `json:"skill_count"`
	AverageLevel       float64 `json:"average_level"`
	TotalGap           float64 `json:"total_gap"`
	RequiringAttention int     `json:"requiring_attention"`
}

type SkillGapItem struct {
	SkillID       string  `json:"skill_id"`
	SkillName     string  `json:"skill_name"`
	CategoryName  string  `json:"category_name"`
	RequiredLevel float64 `json:"required_level"`
	CurrentLevel  float64 `json:"current_level"`
	Gap           float64 `json:"gap"`
	Holders       int     `json:"holders"`
	BelowRequired int     `json:"below_required"`
}

// ========== RANKINGS ==========

// RankedGroupItem is a department or program ranked by completion rate
type RankedGroupItem struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	EmployeeCount  int     `json:"employee_count"`
	TrainingCount  int     `json:"training_count"`
	CompletedCount int     `json:"completed_count"`
	CompletionRate float64 `json:"completion_rate"`
}

// ========== TRAINING LISTS ==========

type TrainingRowItem struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	EmployeeID         string `json:"employee_id"`
	EmployeeName       string `json:"employee_name"`
	Status             string `json:"status"`
	EffectiveStatus    string `json:"effective_status"`
	StatusLabel        string `json:"status_label"`
	StartDate          string `json:"start_date"` // Format: "YYYY-MM-DD"
	EndDate            string `json:"end_date"`   // Format: "YYYY-MM-DD"
	ProgressPercentage *int   `json:"progress_percentage,omitempty"`
	DaysUntilStart     int    `json:"days_until_start"`
	DaysUntilDue       int    `json:"days_until_due"`
}

// ========== EMPLOYEES NEEDING TRAINING ==========

type EmployeeNeedItem struct {
	EmployeeID     string   `json:"employee_id"`
	EmployeeCode   string   `json:"employee_code"`
	FullName       string   `json:"full_name"`
	DepartmentID   string   `json:"department_id,omitempty"`
	Reasons        []string `json:"reasons"`
	CriticalSkills []string `json:"critical_skills"`
	MaxSkillGap    float64  `json:"max_skill_gap"`
}
