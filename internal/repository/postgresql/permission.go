package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/permission"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
)

type permissionRepository struct {
	db *database.DB
}

func NewPermissionRepository(db *database.DB) permission.PermissionRepository {
	return &permissionRepository{db: db}
}

// Create implements permission.PermissionRepository.
func (p *permissionRepository) Create(ctx context.Context, record permission.Permission) (permission.Permission, error) {
	if !record.Type.IsValid() {
		return permission.Permission{}, permission.ErrInvalidType
	}

	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO permissions (user_id, type, tanggal, keterangan)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, type, tanggal, keterangan, created_at, updated_at
	`

	var created permission.Permission
	err := q.QueryRow(ctx, query, record.UserID, record.Type, record.Tanggal, record.Keterangan).Scan(
		&created.ID,
		&created.UserID,
		&created.Type,
		&created.Tanggal,
		&created.Keterangan,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return permission.Permission{}, fmt.Errorf("failed to create permission: %w", err)
	}

	return created, nil
}

// CountByType implements permission.PermissionRepository.
func (p *permissionRepository) CountByType(ctx context.Context, userID int64, month, year int) (map[permission.Type]int, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT type, COUNT(*)
		FROM permissions
		WHERE user_id = $1
			AND EXTRACT(YEAR FROM tanggal) = $2
			AND EXTRACT(MONTH FROM tanggal) = $3
		GROUP BY type
	`

	rows, err := q.Query(ctx, query, userID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to count permissions: %w", err)
	}
	defer rows.Close()

	counts := make(map[permission.Type]int)
	for rows.Next() {
		var (
			typ   permission.Type
			count int
		)
		if err := rows.Scan(&typ, &count); err != nil {
			return nil, fmt.Errorf("failed to scan permission count: %w", err)
		}
		counts[typ] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate permission counts: %w", err)
	}

	return counts, nil
}
