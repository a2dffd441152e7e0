package training

import "time"

type Training struct {
	ID                  string
	CompanyID           string
	EmployeeID          string
	Title               string
	Provider            string
	Status              Status
	StartDate           time.Time
	EndDate             time.Time
	ProgressPercentage  int
	CertificateURL      string
	CertificatePdfURL   string
	CertificateFileName string
	ProgramID           *string
	SkillIDs            []string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Status is the stored lifecycle state. Overdue is never stored, see EffectiveStatus.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusOverdue    Status = "overdue"
)

// StoredStatuses lists the values a Training.Status may hold.
var StoredStatuses = []Status{StatusPending, StatusInProgress, StatusCompleted}

// ParseStatus maps a persisted value onto a stored status. Legacy "overdue"
// rows are read as in_progress so the derived predicate decides.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusInProgress, StatusCompleted:
		return Status(s), nil
	case StatusOverdue:
		return StatusInProgress, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Label is the human-facing name used by dropdowns and badges.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	case StatusOverdue:
		return "Overdue"
	default:
		return string(s)
	}
}

type Program struct {
	ID          string
	CompanyID   string
	Name        string
	Description *string
}

type Certificate struct {
	ID         string
	TrainingID string
	IssueDate  time.Time
	URL        string
	PdfURL     string
}
