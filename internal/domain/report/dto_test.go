package report

import (
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func TestPeriodRequest_Resolve(t *testing.T) {
	cases := []struct {
		name string
		req  PeriodRequest
		want Period
	}{
		{"defaults to current month and year", PeriodRequest{}, Period{Month: 3, Year: 2024}},
		{"explicit month", PeriodRequest{Month: "11"}, Period{Month: 11, Year: 2024}},
		{"explicit year", PeriodRequest{Year: "2023"}, Period{Month: 3, Year: 2023}},
		{"both", PeriodRequest{Month: "1", Year: "2022"}, Period{Month: 1, Year: 2022}},
		{"zero padded month", PeriodRequest{Month: "03"}, Period{Month: 3, Year: 2024}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.req.Resolve(now)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPeriodRequest_ResolveInvalid(t *testing.T) {
	cases := []struct {
		req   PeriodRequest
		field string
	}{
		{PeriodRequest{Month: "0"}, "month"},
		{PeriodRequest{Month: "13"}, "month"},
		{PeriodRequest{Month: "march"}, "month"},
		{PeriodRequest{Year: "24"}, "year"},
		{PeriodRequest{Year: "20245"}, "year"},
		{PeriodRequest{Year: "-202"}, "year"},
	}

	for _, tc := range cases {
		_, err := tc.req.Resolve(now)

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs, "%+v", tc.req)
		assert.Contains(t, verrs.ToMap(), tc.field)
	}
}

func TestPeriod_String(t *testing.T) {
	assert.Equal(t, "2024-03", Period{Month: 3, Year: 2024}.String())
}

func TestAggregationError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewAggregationError("Error fetching attendance data", cause)

	var aggErr *AggregationError
	require.ErrorAs(t, err, &aggErr)
	assert.Equal(t, "Error fetching attendance data", aggErr.Message)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Error fetching attendance data: connection refused", err.Error())
}
