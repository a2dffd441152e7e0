package training

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrTrainingNotFound = errors.New("training not found")
	ErrProgramNotFound  = errors.New("training program not found")
	ErrInvalidStatus    = errors.New("status must be pending, in_progress or completed")
	ErrInvalidRange     = errors.New("training end date precedes start date")
)

// InvalidRangeError reports a training whose end date is before its start date.
type InvalidRangeError struct {
	TrainingID string
	StartDate  time.Time
	EndDate    time.Time
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("training %s: end date %s precedes start date %s",
		e.TrainingID,
		e.EndDate.Format("2006-01-02"),
		e.StartDate.Format("2006-01-02"),
	)
}

func (e *InvalidRangeError) Is(target error) bool {
	return target == ErrInvalidRange
}
