package attendance

import (
	"math"
	"slices"

	"github.com/dayflow-hris/hris-backend-go/internal/pkg/clock"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half-day"
	StatusLeave   Status = "leave"
)

// Attendance is one employee's record for one calendar day. Times are
// "HH:MM" strings in the configured timezone.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       string
	CheckIn    *string
	CheckOut   *string
	Breaks     []Break
	Status     Status
	TotalHours float64
}

// Break is an interval inside a workday. End is "" while the break is open.
type Break struct {
	Start string
	End   string
}

func (b Break) IsOpen() bool {
	return b.End == ""
}

// IsOnBreak reports whether any break has started and not ended.
func (a Attendance) IsOnBreak() bool {
	return slices.ContainsFunc(a.Breaks, func(b Break) bool {
		return b.Start != "" && b.IsOpen()
	})
}

// LastBreakOpen reports whether the most recent break is still open. Only
// that break can be ended.
func (a Attendance) LastBreakOpen() bool {
	if len(a.Breaks) == 0 {
		return false
	}
	return a.Breaks[len(a.Breaks)-1].IsOpen()
}

// BreakMinutes sums closed breaks only.
func (a Attendance) BreakMinutes() int {
	total := 0
	for _, b := range a.Breaks {
		if b.IsOpen() {
			continue
		}
		start, err := clock.Minutes(b.Start)
		if err != nil {
			continue
		}
		end, err := clock.Minutes(b.End)
		if err != nil {
			continue
		}
		total += end - start
	}
	return total
}

// WorkedHours computes (checkOut - checkIn - closed breaks) in hours rounded
// to one decimal, half up. A missing check-in counts as midnight. The result
// is not clamped and can be negative.
func (a Attendance) WorkedHours(checkOut string) float64 {
	in := 0
	if a.CheckIn != nil {
		if m, err := clock.Minutes(*a.CheckIn); err == nil {
			in = m
		}
	}
	out, err := clock.Minutes(checkOut)
	if err != nil {
		out = 0
	}

	minutes := out - in - a.BreakMinutes()
	return RoundHours(float64(minutes) / 60)
}

// RoundHours rounds to one decimal place, halves toward positive infinity.
func RoundHours(h float64) float64 {
	return math.Floor(h*10+0.5) / 10
}

// Clone returns a copy that shares no slices or pointers with a.
func (a Attendance) Clone() Attendance {
	c := a
	if a.CheckIn != nil {
		v := *a.CheckIn
		c.CheckIn = &v
	}
	if a.CheckOut != nil {
		v := *a.CheckOut
		c.CheckOut = &v
	}
	c.Breaks = make([]Break, len(a.Breaks))
	copy(c.Breaks, a.Breaks)
	return c
}
