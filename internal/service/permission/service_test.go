package permission

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/permission"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countCall struct {
	userID      int64
	month, year int
}

type fakePermissionRepo struct {
	counts map[permission.Type]int
	err    error
	calls  []countCall
}

func (f *fakePermissionRepo) Create(_ context.Context, p permission.Permission) (permission.Permission, error) {
	return p, nil
}

func (f *fakePermissionRepo) CountByType(_ context.Context, userID int64, month, year int) (map[permission.Type]int, error) {
	f.calls = append(f.calls, countCall{userID, month, year})
	return f.counts, f.err
}

func ctxAs(t *testing.T, id int64, role user.Role) context.Context {
	t.Helper()
	return jwt.WithIdentity(context.Background(), user.Identity{UserID: id, Role: role})
}

func newService(repo *fakePermissionRepo) *PermissionServiceImpl {
	return &PermissionServiceImpl{
		permissionRepo: repo,
		now:            func() time.Time { return time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC) },
	}
}

func TestSummary_ScopedToCaller(t *testing.T) {
	repo := &fakePermissionRepo{counts: map[permission.Type]int{permission.TypeIzin: 2, permission.TypeLembur: 1}}

	summary, err := newService(repo).Summary(ctxAs(t, 1, user.RoleAdmin), permission.SummaryRequest{
		Period: report.PeriodRequest{Month: "3", Year: "2024"},
	})
	require.NoError(t, err)

	assert.Equal(t, permission.Summary{Izin: 2, Cuti: 0, Lembur: 1}, summary)
	assert.Equal(t, []countCall{{userID: 1, month: 3, year: 2024}}, repo.calls)
}

func TestSummary_ZeroDefaultsAndCurrentPeriod(t *testing.T) {
	repo := &fakePermissionRepo{counts: map[permission.Type]int{}}

	summary, err := newService(repo).Summary(ctxAs(t, 9, user.RoleStaff), permission.SummaryRequest{})
	require.NoError(t, err)

	assert.Equal(t, permission.Summary{}, summary)
	assert.Equal(t, []countCall{{userID: 9, month: 5, year: 2024}}, repo.calls)
}

func TestSummary_RepositoryFailure(t *testing.T) {
	cause := errors.New("timeout")
	_, err := newService(&fakePermissionRepo{err: cause}).Summary(ctxAs(t, 9, user.RoleStaff), permission.SummaryRequest{})

	var aggErr *report.AggregationError
	require.ErrorAs(t, err, &aggErr)
	assert.Equal(t, permission.SummaryFailureMessage, aggErr.Message)
	assert.ErrorIs(t, err, cause)
}

func TestSummary_InvalidPeriod(t *testing.T) {
	repo := &fakePermissionRepo{}
	_, err := newService(repo).Summary(ctxAs(t, 9, user.RoleStaff), permission.SummaryRequest{
		Period: report.PeriodRequest{Year: "99"},
	})
	assert.Error(t, err)
	assert.Empty(t, repo.calls)
}
