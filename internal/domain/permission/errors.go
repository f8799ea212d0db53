package permission

import "errors"

var (
	ErrInvalidType = errors.New("type must be one of: izin, cuti, lembur")
)

// SummaryFailureMessage is the client-facing message of a failed summary.
const SummaryFailureMessage = "Failed to retrieve permission summary"

// SummarySuccessMessage accompanies a successful summary.
const SummarySuccessMessage = "Permission summary retrieved successfully"
