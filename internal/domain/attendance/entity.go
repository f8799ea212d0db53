package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent    Status = "present"
	StatusLate       Status = "late"
	StatusAbsent     Status = "absent"
	StatusPermission Status = "permission"
	StatusLeave      Status = "leave"
	StatusOvertime   Status = "overtime"
)

// Statuses lists every attendance status in recap order.
var Statuses = []Status{
	StatusPresent,
	StatusLate,
	StatusAbsent,
	StatusPermission,
	StatusLeave,
	StatusOvertime,
}

func (s Status) IsValid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

type Attendance struct {
	ID        int64
	UserID    int64
	Date      time.Time
	TimeIn    *time.Time
	TimeOut   *time.Time
	Status    Status
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Normalize applies the stored default status.
func (a *Attendance) Normalize() {
	if a.Status == "" {
		a.Status = StatusAbsent
	}
}
