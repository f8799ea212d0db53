package report

import "errors"

var (
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	ErrInvalidYear  = errors.New("year must be a 4-digit year")
)

// AggregationError is a failure while querying or aggregating report data.
// Message is the client-facing summary; Err carries the underlying cause.
type AggregationError struct {
	Message string
	Err     error
}

func (e *AggregationError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AggregationError) Unwrap() error {
	return e.Err
}

// NewAggregationError wraps err with a client-facing message.
func NewAggregationError(message string, err error) error {
	return &AggregationError{Message: message, Err: err}
}
