package validator

import (
	"errors"
	"strings"
	"sync"
	"time"

	playground "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsValidUUID accepts any RFC 4122 UUID in canonical form.
func IsValidUUID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// ParseDateOrToday parses "YYYY-MM-DD"; an empty string yields today.
func ParseDateOrToday(dateStr string, now time.Time) (time.Time, error) {
	if IsEmpty(dateStr) {
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	date, ok := IsValidDate(dateStr)
	if !ok {
		return time.Time{}, ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
	}
	return date, nil
}

// RequireUUID validates an ID path parameter.
func RequireUUID(field, value string) error {
	if IsEmpty(value) {
		return ValidationErrors{{Field: field, Message: field + " is required"}}
	}
	if !IsValidUUID(value) {
		return ValidationErrors{{Field: field, Message: field + " must be a valid UUID"}}
	}
	return nil
}

var (
	structValidator     *playground.Validate
	structValidatorOnce sync.Once
)

// Struct validates `validate` tags and converts failures into ValidationErrors.
func Struct(v interface{}) error {
	structValidatorOnce.Do(func() {
		structValidator = playground.New(playground.WithRequiredStructEnabled())
	})

	err := structValidator.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, ValidationError{
			Field:   fe.Namespace(),
			Message: "failed on '" + fe.Tag() + "' rule" + paramSuffix(fe.Param()),
		})
	}
	return errs
}

func paramSuffix(param string) string {
	if param == "" {
		return ""
	}
	return " (" + param + ")"
}
