package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/auth"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/notification"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/report"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/validator"
)

// errorMapping binds a sentinel to its HTTP form. An empty message echoes
// err.Error(); logged mappings are server faults worth an error line.
type errorMapping struct {
	target  error
	status  int
	code    string
	message string
	logged  bool
}

var errorMappings = []errorMapping{
	{target: auth.ErrInvalidCredentials, status: http.StatusUnauthorized, code: "UNAUTHORIZED"},
	{target: auth.ErrInvalidToken, status: http.StatusUnauthorized, code: "UNAUTHORIZED", message: "Invalid or expired token"},
	{target: auth.ErrTokenRevoked, status: http.StatusUnauthorized, code: "UNAUTHORIZED", message: "Token has been revoked"},
	{target: auth.ErrSessionNotFound, status: http.StatusUnauthorized, code: "UNAUTHORIZED", message: "Session not found"},
	{target: auth.ErrAdminRequired, status: http.StatusForbidden, code: "FORBIDDEN", message: "Admin access required"},

	{target: employee.ErrEmployeeNotFound, status: http.StatusNotFound, code: "NOT_FOUND", message: "Employee not found"},
	{target: employee.ErrEmployeeCodeExists, status: http.StatusConflict, code: "CONFLICT"},
	{target: employee.ErrEmailExists, status: http.StatusConflict, code: "CONFLICT"},

	{target: attendance.ErrAttendanceNotFound, status: http.StatusNotFound, code: "NOT_FOUND", message: "Attendance record not found"},
	{target: attendance.ErrDuplicateRecord, status: http.StatusConflict, code: "CONFLICT", message: "Attendance record already exists for this date"},

	{target: leave.ErrLeaveRequestNotFound, status: http.StatusNotFound, code: "NOT_FOUND", message: "Leave request not found"},
	{target: leave.ErrLeaveRequestAlreadyProcessed, status: http.StatusConflict, code: "CONFLICT", message: "Leave request already processed"},

	{target: notification.ErrNotificationNotFound, status: http.StatusNotFound, code: "NOT_FOUND", message: "Notification not found"},
	{target: notification.ErrServiceStopped, status: http.StatusServiceUnavailable, code: "SERVICE_UNAVAILABLE", message: "Notifications are unavailable"},

	{target: payroll.ErrPayslipRenderFailed, status: http.StatusInternalServerError, code: "INTERNAL_SERVER_ERROR", message: "Failed to render payslip", logged: true},
	{target: report.ErrReportGenerationFailed, status: http.StatusInternalServerError, code: "INTERNAL_SERVER_ERROR", message: "Failed to generate report", logged: true},
}

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		Fail(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", validationErrs.ToMap())
		return
	}

	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		if m.logged {
			slog.Error(m.message, "error", err)
		}
		message := m.message
		if message == "" {
			message = err.Error()
		}
		Fail(w, m.status, m.code, message, nil)
		return
	}

	slog.Error("Unhandled error", "error", err)
	InternalServerError(w, "An unexpected error occurred")
}
