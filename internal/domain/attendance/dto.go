package attendance

import (
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
)

// RecapRequest carries the raw query parameters of a recap.
type RecapRequest struct {
	Period report.PeriodRequest
	UserID string
}

// RecapEntry is one user's row of the monthly recap.
type RecapEntry struct {
	UserID          int64  `json:"user_id"`
	UserName        string `json:"user_name"`
	PresentCount    int    `json:"present_count"`
	LateCount       int    `json:"late_count"`
	AbsentCount     int    `json:"absent_count"`
	PermissionCount int    `json:"permission_count"`
	LeaveCount      int    `json:"leave_count"`
	OvertimeCount   int    `json:"overtime_count"`
}

// Add counts one record of the given status. Unknown statuses are ignored.
func (e *RecapEntry) Add(status Status) {
	switch status {
	case StatusPresent:
		e.PresentCount++
	case StatusLate:
		e.LateCount++
	case StatusAbsent:
		e.AbsentCount++
	case StatusPermission:
		e.PermissionCount++
	case StatusLeave:
		e.LeaveCount++
	case StatusOvertime:
		e.OvertimeCount++
	}
}

// Total is the number of records counted into the entry.
func (e RecapEntry) Total() int {
	return e.PresentCount + e.LateCount + e.AbsentCount + e.PermissionCount + e.LeaveCount + e.OvertimeCount
}
