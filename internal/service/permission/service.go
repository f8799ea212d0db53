package permission

import (
	"context"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/permission"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/logger"
)

type PermissionServiceImpl struct {
	permissionRepo permission.PermissionRepository
	now            func() time.Time
}

func NewPermissionService(permissionRepo permission.PermissionRepository) permission.PermissionService {
	return &PermissionServiceImpl{
		permissionRepo: permissionRepo,
		now:            time.Now,
	}
}

// Summary implements permission.PermissionService.
func (s *PermissionServiceImpl) Summary(ctx context.Context, req permission.SummaryRequest) (permission.Summary, error) {
	caller, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return permission.Summary{}, err
	}

	period, err := req.Period.Resolve(s.now())
	if err != nil {
		return permission.Summary{}, err
	}

	log := logger.From(ctx)
	log.InfoContext(ctx, "calculating permission summary",
		"user_id", caller.UserID,
		"month", period.Month,
		"year", period.Year,
	)

	counts, err := s.permissionRepo.CountByType(ctx, caller.UserID, period.Month, period.Year)
	if err != nil {
		log.ErrorContext(ctx, "permission summary failed", "user_id", caller.UserID, "error", err)
		return permission.Summary{}, report.NewAggregationError(permission.SummaryFailureMessage, err)
	}

	summary := permission.NewSummary(counts)
	log.InfoContext(ctx, "permission summary calculated",
		"user_id", caller.UserID,
		"izin", summary.Izin,
		"cuti", summary.Cuti,
		"lembur", summary.Lembur,
	)

	return summary, nil
}
