package training

import "time"

const secondsPerDay = 24 * 60 * 60

// DateOf truncates t to its calendar day in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns to - from in whole calendar days.
func DaysBetween(from, to time.Time) int {
	return int((DateOf(to).Unix() - DateOf(from).Unix()) / secondsPerDay)
}

// DaysUntilStart is negative once the training has started.
func DaysUntilStart(t Training, today time.Time) int {
	return DaysBetween(today, t.StartDate)
}

// DurationDays counts both endpoints, so a single-day training lasts 1 day.
func DurationDays(t Training) (int, error) {
	if err := ValidateRange(t); err != nil {
		return 0, err
	}
	return DaysBetween(t.StartDate, t.EndDate) + 1, nil
}

func ValidateRange(t Training) error {
	if DateOf(t.EndDate).Before(DateOf(t.StartDate)) {
		return &InvalidRangeError{TrainingID: t.ID, StartDate: t.StartDate, EndDate: t.EndDate}
	}
	return nil
}

func IsCompleted(t Training) bool {
	return t.Status == StatusCompleted
}

// IsOverdue never holds for a completed training, however late it finished.
func IsOverdue(t Training, today time.Time) bool {
	return !IsCompleted(t) && DateOf(t.EndDate).Before(DateOf(today))
}

func HasCertificate(t Training) bool {
	return t.CertificateURL != "" || t.CertificatePdfURL != ""
}

// EffectiveStatus layers the derived overdue state over the stored status.
func EffectiveStatus(t Training, today time.Time) Status {
	if IsOverdue(t, today) {
		return StatusOverdue
	}
	return t.Status
}

// IsActive holds for a non-terminal stored status that is not overdue.
func IsActive(t Training, today time.Time) bool {
	return (t.Status == StatusPending || t.Status == StatusInProgress) && !IsOverdue(t, today)
}

// HasProgress reports whether ProgressPercentage carries meaning.
func HasProgress(t Training) bool {
	return t.Status != StatusPending
}
