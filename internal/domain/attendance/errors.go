package attendance

import "errors"

var (
	ErrInvalidStatus = errors.New("status must be one of: present, late, absent, permission, leave, overtime")
)

// RecapFailureMessage is the client-facing message of a failed recap.
const RecapFailureMessage = "Error fetching attendance data"
