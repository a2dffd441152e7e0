package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/training-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/master/department"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/training"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, "Invalid request parameters", validationErrs.ToMap())
		return
	}

	// Inconsistent training data
	var rangeErr *training.InvalidRangeError
	if errors.As(err, &rangeErr) {
		ValidationError(w, map[string]string{
			"training_id": rangeErr.TrainingID,
			"end_date":    rangeErr.Error(),
		})
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, jwt.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, jwt.ErrCompanyIDRequired):
		Forbidden(w, "Company registration required")
	case errors.Is(err, jwt.ErrRoleNotAllowed):
		Forbidden(w, "Insufficient permissions for this resource")

	// Training domain errors
	case errors.Is(err, training.ErrTrainingNotFound):
		NotFound(w, "Training not found")
	case errors.Is(err, training.ErrProgramNotFound):
		NotFound(w, "Training program not found")
	case errors.Is(err, training.ErrInvalidRange):
		ValidationError(w, map[string]string{"end_date": err.Error()})
	case errors.Is(err, training.ErrInvalidStatus):
		ValidationError(w, map[string]string{"status": err.Error()})

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrUnauthorized):
		Forbidden(w, "Not allowed to access this employee")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
