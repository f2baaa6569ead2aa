package attendance

import (
	"slices"

	"github.com/dayflow-hris/hris-backend-go/internal/pkg/validator"
)

type AttendanceFilter struct {
	Date       *string
	EmployeeID *string
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != nil {
		if _, ok := validator.IsValidDate(*f.Date); !ok {
			errs.Add("date", "date must be in YYYY-MM-DD format")
		}
	}

	return errs.Err()
}

// Matches reports whether a record passes the filter.
func (f AttendanceFilter) Matches(a Attendance) bool {
	if f.Date != nil && a.Date != *f.Date {
		return false
	}
	if f.EmployeeID != nil && a.EmployeeID != *f.EmployeeID {
		return false
	}
	return true
}

type BreakResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type AttendanceResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	Date       string          `json:"date"`
	CheckIn    *string         `json:"check_in,omitempty"`
	CheckOut   *string         `json:"check_out,omitempty"`
	Breaks     []BreakResponse `json:"breaks"`
	Status     string          `json:"status"`
	TotalHours float64         `json:"total_hours"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	breaks := make([]BreakResponse, 0, len(a.Breaks))
	for _, b := range a.Breaks {
		breaks = append(breaks, BreakResponse{Start: b.Start, End: b.End})
	}
	return AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date,
		CheckIn:    a.CheckIn,
		CheckOut:   a.CheckOut,
		Breaks:     breaks,
		Status:     string(a.Status),
		TotalHours: a.TotalHours,
	}
}

func NewAttendanceResponses(records []Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		out = append(out, NewAttendanceResponse(a))
	}
	return out
}

// MutationResponse reports whether a tracker operation changed state. A
// no-op is not an error; Record holds today's record when one exists.
type MutationResponse struct {
	Applied bool                `json:"applied"`
	Record  *AttendanceResponse `json:"record,omitempty"`
}

type TodayResponse struct {
	Date      string              `json:"date"`
	Record    *AttendanceResponse `json:"record"`
	IsOnBreak bool                `json:"is_on_break"`
}

// IsOnBreak reports whether any break has started and not ended.
func (r AttendanceResponse) IsOnBreak() bool {
	return slices.ContainsFunc(r.Breaks, func(b BreakResponse) bool {
		return b.Start != "" && b.End == ""
	})
}
