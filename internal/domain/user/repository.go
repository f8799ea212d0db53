package user

import (
	"context"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string, excludeID *int64) (bool, error)

	// List returns one page of users ordered by name, plus the total match count.
	List(ctx context.Context, filter UserFilter) ([]User, int64, error)

	// ListActive returns active users, restricted to a single id when id is non-nil.
	ListActive(ctx context.Context, id *int64) ([]User, error)

	Create(ctx context.Context, newUser User) (User, error)

	// Update writes every profile field; an empty PasswordHash keeps the stored hash.
	Update(ctx context.Context, updated User) (User, error)
	Delete(ctx context.Context, id int64) error
}
