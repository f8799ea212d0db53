package permission

import "context"

type PermissionRepository interface {
	Create(ctx context.Context, p Permission) (Permission, error)

	// CountByType counts the user's permissions whose tanggal falls in the
	// given year and month, grouped by type. Types with no rows are absent.
	CountByType(ctx context.Context, userID int64, month, year int) (map[Type]int, error)
}
