package report

import (
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE EXPORT
// ========================================

type AttendanceExportRequest struct {
	Date       string `json:"date"`
	EmployeeID string `json:"employee_id"`
}

func (r *AttendanceExportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs.Add("date", "date must be in YYYY-MM-DD format")
		}
	}

	return errs.Err()
}

// ExportFile is a generated spreadsheet.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
	Rows        int
}

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
