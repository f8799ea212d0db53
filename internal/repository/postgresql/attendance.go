package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	record.Normalize()
	if !record.Status.IsValid() {
		return attendance.Attendance{}, attendance.ErrInvalidStatus
	}

	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (user_id, date, time_in, time_out, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, date, time_in, time_out, status, notes, created_at, updated_at
	`

	var created attendance.Attendance
	err := q.QueryRow(ctx, query,
		record.UserID,
		record.Date,
		record.TimeIn,
		record.TimeOut,
		record.Status,
		record.Notes,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.Date,
		&created.TimeIn,
		&created.TimeOut,
		&created.Status,
		&created.Notes,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return created, nil
}

// ListByUsersAndPeriod implements attendance.AttendanceRepository. Year and
// month are matched as two independent predicates on the date column.
func (a *attendanceRepository) ListByUsersAndPeriod(ctx context.Context, userIDs []int64, month, year int) ([]attendance.Attendance, error) {
	records := []attendance.Attendance{}
	if len(userIDs) == 0 {
		return records, nil
	}

	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, user_id, date, time_in, time_out, status, notes, created_at, updated_at
		FROM attendances
		WHERE user_id = ANY($1)
			AND EXTRACT(YEAR FROM date) = $2
			AND EXTRACT(MONTH FROM date) = $3
		ORDER BY user_id, date
	`

	rows, err := q.Query(ctx, query, userIDs, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.UserID, &att.Date, &att.TimeIn, &att.TimeOut,
			&att.Status, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return records, nil
}
