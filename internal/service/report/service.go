package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

const attendanceSheet = "Attendance"

var attendanceHeader = []interface{}{
	"Employee ID", "Name", "Date", "Check In", "Check Out", "Breaks", "Break Minutes", "Total Hours", "Status",
}

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewReportService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// ExportAttendance implements report.ReportService.
func (s *ReportServiceImpl) ExportAttendance(ctx context.Context, req report.AttendanceExportRequest) (report.ExportFile, error) {
	if err := req.Validate(); err != nil {
		return report.ExportFile{}, err
	}

	var filter attendance.AttendanceFilter
	if req.Date != "" {
		filter.Date = &req.Date
	}
	if req.EmployeeID != "" {
		filter.EmployeeID = &req.EmployeeID
	}

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to list employees: %w", err)
	}
	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.EmployeeID] = e.Name
	}

	content, err := buildAttendanceWorkbook(records, names)
	if err != nil {
		slog.Error("Failed to build attendance workbook", "rows", len(records), "error", err)
		return report.ExportFile{}, fmt.Errorf("%w: %v", report.ErrReportGenerationFailed, err)
	}

	return report.ExportFile{
		Filename:    attendanceFilename(req),
		ContentType: report.XLSXContentType,
		Content:     content,
		Rows:        len(records),
	}, nil
}

func attendanceFilename(req report.AttendanceExportRequest) string {
	parts := []string{"attendance"}
	if req.EmployeeID != "" {
		parts = append(parts, req.EmployeeID)
	}
	if req.Date != "" {
		parts = append(parts, req.Date)
	} else {
		parts = append(parts, "all")
	}
	return strings.Join(parts, "-") + ".xlsx"
}

func formatBreaks(breaks []attendance.Break) string {
	spans := make([]string, 0, len(breaks))
	for _, b := range breaks {
		end := b.End
		if b.IsOpen() {
			end = "open"
		}
		spans = append(spans, b.Start+"-"+end)
	}
	return strings.Join(spans, "; ")
}

func buildAttendanceWorkbook(records []attendance.Attendance, names map[string]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", attendanceSheet); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(attendanceSheet, "A1", &attendanceHeader); err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(attendanceHeader), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(attendanceSheet, "A1", lastHeader, headerStyle); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(attendanceSheet, "A", "B", 18); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(attendanceSheet, "F", "F", 28); err != nil {
		return nil, err
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}

		var checkIn, checkOut string
		if rec.CheckIn != nil {
			checkIn = *rec.CheckIn
		}
		if rec.CheckOut != nil {
			checkOut = *rec.CheckOut
		}

		row := []interface{}{
			rec.EmployeeID,
			names[rec.EmployeeID],
			rec.Date,
			checkIn,
			checkOut,
			formatBreaks(rec.Breaks),
			rec.BreakMinutes(),
			rec.TotalHours,
			string(rec.Status),
		}
		if err := f.SetSheetRow(attendanceSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
