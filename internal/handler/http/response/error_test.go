package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandleError_StatusCodes(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{validator.Field("email", "email has already been taken"), http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{fmt.Errorf("wrapped: %w", user.ErrAdminPrivilegeRequired), http.StatusForbidden, "FORBIDDEN"},
		{user.ErrUserNotFound, http.StatusNotFound, "NOT_FOUND"},
		{user.ErrIdentityMissing, http.StatusUnauthorized, "UNAUTHORIZED"},
		{auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{auth.ErrAccountInactive, http.StatusForbidden, "FORBIDDEN"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		HandleError(rec, tc.err)

		assert.Equal(t, tc.status, rec.Code, tc.err.Error())
		body := decode(t, rec)
		assert.False(t, body.Success)
		assert.NotEmpty(t, body.Message)
		require.NotNil(t, body.Error)
		assert.Equal(t, tc.code, body.Error.Code)
	}
}

func TestHandleError_ValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.Field("email", "email has already been taken"))

	body := decode(t, rec)
	assert.Equal(t, map[string]string{"email": "email has already been taken"}, body.Error.Details)
}

func TestHandleError_AggregationFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, report.NewAggregationError("Failed to retrieve permission summary", errors.New("connection refused")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Failed to retrieve permission summary", body.Message)
	assert.Equal(t, "connection refused", body.Error.Message)
	assert.Nil(t, body.Data)
}
