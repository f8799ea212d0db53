package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // Manages accounts, sees every user's recap
	RoleStaff Role = "staff" // Sees own data only
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// PageSize is the fixed number of users per listing page.
const PageSize = 10

type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Department   *string
	Position     *string
	Status       Status
	PhoneNumber  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsActive checks if user account is active
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

func validRoles() []string {
	return []string{string(RoleAdmin), string(RoleStaff)}
}

func validStatuses() []string {
	return []string{string(StatusActive), string(StatusInactive)}
}
