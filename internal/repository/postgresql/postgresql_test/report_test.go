package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/permission"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestAttendanceRepository_ListByUsersAndPeriod(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	users := postgresql.NewUserRepository(db)
	repo := postgresql.NewAttendanceRepository(db)

	a := createUser(t, ctx, users, "Andi", "andi@example.com", user.StatusActive)
	b := createUser(t, ctx, users, "Budi", "budi@example.com", user.StatusActive)

	records := []attendance.Attendance{
		{UserID: a.ID, Date: day(2024, time.March, 1), Status: attendance.StatusPresent},
		{UserID: a.ID, Date: day(2024, time.March, 31), Status: attendance.StatusLate},
		{UserID: a.ID, Date: day(2023, time.March, 10), Status: attendance.StatusPresent},
		{UserID: a.ID, Date: day(2024, time.April, 1), Status: attendance.StatusPresent},
		{UserID: b.ID, Date: day(2024, time.March, 5)},
	}
	for _, r := range records {
		_, err := repo.Create(ctx, r)
		require.NoError(t, err)
	}

	got, err := repo.ListByUsersAndPeriod(ctx, []int64{a.ID}, 3, 2024)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, attendance.StatusPresent, got[0].Status)
	assert.Equal(t, attendance.StatusLate, got[1].Status)

	got, err = repo.ListByUsersAndPeriod(ctx, []int64{b.ID}, 3, 2024)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, attendance.StatusAbsent, got[0].Status, "empty status defaults to absent")

	got, err = repo.ListByUsersAndPeriod(ctx, nil, 3, 2024)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAttendanceRepository_RejectsUnknownStatus(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	users := postgresql.NewUserRepository(db)
	repo := postgresql.NewAttendanceRepository(db)

	a := createUser(t, ctx, users, "Andi", "andi@example.com", user.StatusActive)
	_, err := repo.Create(ctx, attendance.Attendance{UserID: a.ID, Date: day(2024, time.March, 1), Status: "sick"})
	assert.ErrorIs(t, err, attendance.ErrInvalidStatus)
}

func TestPermissionRepository_CountByType(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	users := postgresql.NewUserRepository(db)
	repo := postgresql.NewPermissionRepository(db)

	a := createUser(t, ctx, users, "Andi", "andi@example.com", user.StatusActive)
	b := createUser(t, ctx, users, "Budi", "budi@example.com", user.StatusActive)

	rows := []permission.Permission{
		{UserID: a.ID, Type: permission.TypeIzin, Tanggal: day(2024, time.March, 2)},
		{UserID: a.ID, Type: permission.TypeIzin, Tanggal: day(2024, time.March, 9)},
		{UserID: a.ID, Type: permission.TypeLembur, Tanggal: day(2024, time.March, 20)},
		{UserID: a.ID, Type: permission.TypeCuti, Tanggal: day(2024, time.February, 20)},
		{UserID: b.ID, Type: permission.TypeCuti, Tanggal: day(2024, time.March, 20)},
	}
	for _, p := range rows {
		_, err := repo.Create(ctx, p)
		require.NoError(t, err)
	}

	counts, err := repo.CountByType(ctx, a.ID, 3, 2024)
	require.NoError(t, err)
	assert.Equal(t, map[permission.Type]int{permission.TypeIzin: 2, permission.TypeLembur: 1}, counts)

	_, err = repo.Create(ctx, permission.Permission{UserID: a.ID, Type: "sakit", Tanggal: day(2024, time.March, 1)})
	assert.ErrorIs(t, err, permission.ErrInvalidType)
}
