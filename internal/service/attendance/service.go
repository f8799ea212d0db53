package attendance

import (
	"context"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/logger"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
	now            func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, userRepo user.UserRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		now:            time.Now,
	}
}

// Recap implements attendance.AttendanceService. Entries follow the order of
// the active-user query and users without records report zero counts.
func (s *AttendanceServiceImpl) Recap(ctx context.Context, req attendance.RecapRequest) ([]attendance.RecapEntry, error) {
	caller, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	period, err := req.Period.Resolve(s.now())
	if err != nil {
		return nil, err
	}

	scope, err := user.ResolveScope(caller, req.UserID)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.ListActive(ctx, scope.TargetID())
	if err != nil {
		return nil, report.NewAggregationError(attendance.RecapFailureMessage, err)
	}

	entries := make([]attendance.RecapEntry, len(users))
	index := make(map[int64]int, len(users))
	userIDs := make([]int64, len(users))
	for i, u := range users {
		entries[i] = attendance.RecapEntry{UserID: u.ID, UserName: u.Name}
		index[u.ID] = i
		userIDs[i] = u.ID
	}

	if len(userIDs) > 0 {
		records, err := s.attendanceRepo.ListByUsersAndPeriod(ctx, userIDs, period.Month, period.Year)
		if err != nil {
			return nil, report.NewAggregationError(attendance.RecapFailureMessage, err)
		}
		for _, record := range records {
			if i, ok := index[record.UserID]; ok {
				entries[i].Add(record.Status)
			}
		}
	}

	logger.From(ctx).DebugContext(ctx, "attendance recap calculated",
		"scope", scope.Kind.String(),
		"period", period.String(),
		"users", len(entries),
	)

	return entries, nil
}
