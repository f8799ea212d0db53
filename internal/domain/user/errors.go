package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUserEmailExists        = errors.New("email has already been taken")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrIdentityMissing        = errors.New("authenticated identity missing from context")
)
