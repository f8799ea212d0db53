package main

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/permission"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type recordingAttendanceRepo struct {
	attendance.AttendanceRepository
	created []attendance.Attendance
}

func (r *recordingAttendanceRepo) Create(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	r.created = append(r.created, a)
	return a, nil
}

type recordingPermissionRepo struct {
	created []permission.Permission
}

func (r *recordingPermissionRepo) Create(_ context.Context, p permission.Permission) (permission.Permission, error) {
	r.created = append(r.created, p)
	return p, nil
}

func (r *recordingPermissionRepo) CountByType(context.Context, int64, int, int) (map[permission.Type]int, error) {
	return nil, nil
}

type seedUserRepo struct {
	user.UserRepository
	byEmail map[string]user.User
}

func (r *seedUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *seedUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	u.ID = int64(len(r.byEmail) + 1)
	r.byEmail[u.Email] = u
	return u, nil
}

func TestSeedMonth(t *testing.T) {
	attendances := &recordingAttendanceRepo{}
	permissions := &recordingPermissionRepo{}
	now := time.Date(2024, time.March, 8, 15, 0, 0, 0, time.UTC)

	require.NoError(t, seedMonth(context.Background(), attendances, permissions, 4, now))

	require.Len(t, attendances.created, 8)
	for i, a := range attendances.created {
		assert.Equal(t, int64(4), a.UserID)
		assert.Equal(t, 3, int(a.Date.Month()))
		assert.Equal(t, i+1, a.Date.Day())
		assert.Equal(t, attendance.Statuses[i%len(attendance.Statuses)], a.Status)
	}
	late := attendances.created[1]
	require.NotNil(t, late.TimeIn)
	assert.Equal(t, 8, late.TimeIn.Hour())
	assert.Equal(t, 45, late.TimeIn.Minute())
	assert.Nil(t, attendances.created[2].TimeIn, "absent days have no clock-in")

	require.Len(t, permissions.created, len(permission.Types))
	for i, p := range permissions.created {
		assert.Equal(t, permission.Types[i], p.Type)
		assert.Equal(t, 2024, p.Tanggal.Year())
	}
}

func TestEnsureUser(t *testing.T) {
	repo := &seedUserRepo{byEmail: map[string]user.User{}}
	ctx := context.Background()

	u, created, err := ensureUser(ctx, repo, "Admin", "admin@example.com", "password123", user.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, user.RoleAdmin, u.Role)
	assert.Equal(t, user.StatusActive, u.Status)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")))

	again, created, err := ensureUser(ctx, repo, "Someone Else", "admin@example.com", "other", user.RoleStaff)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, u.ID, again.ID)
	assert.Equal(t, "Admin", again.Name)
}
