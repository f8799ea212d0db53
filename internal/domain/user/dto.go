package user

import (
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

// UserResponse represents user data in API responses
type UserResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	Department  *string `json:"department"`
	Position    *string `json:"position"`
	Status      string  `json:"status"`
	PhoneNumber *string `json:"phone_number"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        string(u.Role),
		Department:  u.Department,
		Position:    u.Position,
		Status:      string(u.Status),
		PhoneNumber: u.PhoneNumber,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   u.UpdatedAt.Format(time.RFC3339),
	}
}

// ProfileResponse is the caller's own profile
type ProfileResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	Department  *string `json:"department"`
	Position    *string `json:"position"`
	PhoneNumber *string `json:"phone_number"`
}

type ListUserResponse struct {
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
	Users      []UserResponse `json:"users"`
}

// UserFilter holds the optional listing filters. Nil fields are not applied.
type UserFilter struct {
	Search     *string
	Department *string
	Status     *string
	Page       int
}

func (f *UserFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Offset returns the row offset of the filter's page.
func (f *UserFilter) Offset() int {
	return (f.Page - 1) * PageSize
}

// CreateUserRequest represents request to create a new user
type CreateUserRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	Role        string  `json:"role"`
	Department  *string `json:"department"`
	Position    *string `json:"position"`
	Status      string  `json:"status"`
	PhoneNumber *string `json:"phone_number"`
}

func (r *CreateUserRequest) Validate() error {
	errs := validateProfile(r.Name, r.Email, r.Role, r.Status, r.Department, r.Position, r.PhoneNumber)

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateUserRequest represents request to update user. A nil or empty
// Password leaves the stored hash untouched.
type UpdateUserRequest struct {
	ID          int64   `json:"-"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Password    *string `json:"password,omitempty"`
	Role        string  `json:"role"`
	Department  *string `json:"department"`
	Position    *string `json:"position"`
	Status      string  `json:"status"`
	PhoneNumber *string `json:"phone_number"`
}

func (r *UpdateUserRequest) Validate() error {
	errs := validateProfile(r.Name, r.Email, r.Role, r.Status, r.Department, r.Position, r.PhoneNumber)

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Password != nil && *r.Password != "" && len(*r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateProfile(name, email, role, status string, department, position, phone *string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if validator.ExceedsLength(name, 255) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	} else if validator.ExceedsLength(email, 255) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	} else if !validator.IsInSlice(role, validRoles()) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: admin, staff",
		})
	}

	if validator.IsEmpty(status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !validator.IsInSlice(status, validStatuses()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, inactive",
		})
	}

	if department != nil && validator.ExceedsLength(*department, 255) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must not exceed 255 characters",
		})
	}

	if position != nil && validator.ExceedsLength(*position, 255) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position must not exceed 255 characters",
		})
	}

	if phone != nil && validator.ExceedsLength(*phone, 20) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number must not exceed 20 characters",
		})
	}

	return errs
}
