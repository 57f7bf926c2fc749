package response

import (
	"errors"
	"net/http"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/auth"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/employee"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/shift"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee account is inactive")

	// Attendance state-machine violations
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "Not checked in yet")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrAlreadyOnBreak):
		Conflict(w, "A break is already running")
	case errors.Is(err, attendance.ErrNoActiveBreak):
		Conflict(w, "No break is running")
	case errors.Is(err, attendance.ErrBreakStillOpen):
		Conflict(w, "End the running break before checking out")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Shift configuration errors
	case errors.Is(err, attendance.ErrNoShiftConfigured):
		UnprocessableEntity(w, "No shift is configured for today")
	case errors.Is(err, shift.ErrMisconfigured):
		UnprocessableEntity(w, "Shift definition is misconfigured")
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift definition not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
