package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create stores a record; an empty status is stored as absent.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// ListByUsersAndPeriod returns the records of userIDs whose date falls in
	// the given year and month.
	ListByUsersAndPeriod(ctx context.Context, userIDs []int64, month, year int) ([]Attendance, error)
}
