package http

import (
	"net/http"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/report"
	"github.com/dayflow-hris/hris-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Attendance spreadsheet export
	ExportAttendance(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// ExportAttendance handles GET /attendance/export?date=YYYY-MM-DD&employee_id=CODE
func (h *reportHandlerImpl) ExportAttendance(w http.ResponseWriter, r *http.Request) {
	req := report.AttendanceExportRequest{
		Date:       r.URL.Query().Get("date"),
		EmployeeID: r.URL.Query().Get("employee_id"),
	}

	file, err := h.reportService.ExportAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, file.ContentType, file.Filename, file.Content)
}
