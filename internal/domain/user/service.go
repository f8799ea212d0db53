package user

import "context"

// UserService is the admin-gated account management surface plus the
// caller's own profile lookups.
type UserService interface {
	List(ctx context.Context, filter UserFilter) (ListUserResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, id int64) error

	GetRole(ctx context.Context) (Role, error)
	GetProfile(ctx context.Context) (ProfileResponse, error)
}
