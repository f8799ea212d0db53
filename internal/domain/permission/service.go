package permission

import "context"

type PermissionService interface {
	// Summary is always scoped to the authenticated caller.
	Summary(ctx context.Context, req SummaryRequest) (Summary, error)
}
