package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance reporting
type AttendanceService interface {
	// Recap counts each status per eligible user over one calendar month.
	Recap(ctx context.Context, req RecapRequest) ([]RecapEntry, error)
}
