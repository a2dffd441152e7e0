package training

// ========== TRAINING DETAIL ==========

// TrainingDetailResponse is the training detail page bundle
type TrainingDetailResponse struct {
	ID                  string              `json:"id"`
	Title               string              `json:"title"`
	Provider            string              `json:"provider"`
	Status              string              `json:"status"`           // stored status
	EffectiveStatus     string              `json:"effective_status"` // overdue layered over status
	StatusLabel         string              `json:"status_label"`
	StartDate           string              `json:"start_date"` // Format: "YYYY-MM-DD"
	EndDate             string              `json:"end_date"`   // Format: "YYYY-MM-DD"
	ProgressPercentage  *int                `json:"progress_percentage,omitempty"`
	DaysUntilStart      int                 `json:"days_until_start"`
	DurationDays        int                 `json:"duration_days"`
	IsOverdue           bool                `json:"is_overdue"`
	IsCompleted         bool                `json:"is_completed"`
	HasCertificate      bool                `json:"has_certificate"`
	CertificateURL      string              `json:"certificate_url,omitempty"`
	CertificatePdfURL   string              `json:"certificate_pdf_url,omitempty"`
	CertificateFileName string              `json:"certificate_file_name,omitempty"`
	Employee            EmployeeItem        `json:"employee"`
	Program             *ProgramItem        `json:"program,omitempty"`
	Skills              []SkillItem         `json:"skills"`
	Certificates        []CertificateItem   `json:"certificates"`
	Qualifications      []QualificationItem `json:"qualifications"`
	TotalCertificates   int                 `json:"total_certificates"`
	TotalSkills         int                 `json:"total_skills"`
	Date                string              `json:"date"` // reference day used for derivations
}

type EmployeeItem struct {
	ID             string `json:"id"`
	EmployeeCode   string `json:"employee_code"`
	FullName       string `json:"full_name"`
	DepartmentID   string `json:"department_id,omitempty"`
	DepartmentName string `json:"department_name,omitempty"`
}

type ProgramItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SkillItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	CategoryName  string  `json:"category_name,omitempty"`
	RequiredLevel float64 `json:"required_level"`
}

type CertificateItem struct {
	ID        string `json:"id"`
	IssueDate string `json:"issue_date"`
	URL       string `json:"url,omitempty"`
	PdfURL    string `json:"pdf_url,omitempty"`
}

type QualificationItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	IssuingBody string  `json:"issuing_body,omitempty"`
	ExpiresAt   *string `json:"expires_at,omitempty"`
	IsExpired   bool    `json:"is_expired"`
}

// ========== TRAINING EDIT FORM ==========

// EditOptionsResponse holds the dropdown lists of the training edit form
type EditOptionsResponse struct {
	TrainingID     *string  `json:"training_id,omitempty"` // nil for a new training
	Employees      []Option `json:"employees"`
	Programs       []Option `json:"programs"`
	Skills         []Option `json:"skills"`
	Qualifications []Option `json:"qualifications"`
	Statuses       []Option `json:"statuses"`
}

// Option is a single dropdown entry
type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}
