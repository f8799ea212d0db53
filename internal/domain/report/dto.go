package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

// PeriodRequest is the raw month/year pair of a reporting query string.
// Empty values fall back to the current month and year.
type PeriodRequest struct {
	Month string
	Year  string
}

// Period is a validated calendar month.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// Resolve validates the request against now and fills in the defaults.
func (r PeriodRequest) Resolve(now time.Time) (Period, error) {
	var errs validator.ValidationErrors
	period := Period{Month: int(now.Month()), Year: now.Year()}

	if r.Month != "" {
		month, err := strconv.Atoi(r.Month)
		if err != nil || month < 1 || month > 12 {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: ErrInvalidMonth.Error(),
			})
		} else {
			period.Month = month
		}
	}

	if r.Year != "" {
		year, err := strconv.Atoi(r.Year)
		if err != nil || len(r.Year) != 4 || !validator.IsNumeric(r.Year) {
			errs = append(errs, validator.ValidationError{
				Field:   "year",
				Message: ErrInvalidYear.Error(),
			})
		} else {
			period.Year = year
		}
	}

	if len(errs) > 0 {
		return Period{}, errs
	}
	return period, nil
}
