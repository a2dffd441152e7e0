package qualification

import "time"

type Qualification struct {
	ID          string
	CompanyID   string
	Name        string
	IssuingBody string
	ExpiresAt   *time.Time
}

// IsExpired reports whether the qualification lapsed before today.
func (q Qualification) IsExpired(today time.Time) bool {
	if q.ExpiresAt == nil {
		return false
	}
	y, m, d := today.Date()
	return q.ExpiresAt.Before(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}
