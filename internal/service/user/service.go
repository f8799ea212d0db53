package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	userRepo user.UserRepository
}

func NewUserService(userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// requireAdmin checks the caller's stored role, so a demotion applies to
// tokens issued before it.
func (s *UserServiceImpl) requireAdmin(ctx context.Context) error {
	current, err := s.currentUser(ctx)
	if err != nil {
		return err
	}
	if !current.IsActive() {
		return user.ErrAdminPrivilegeRequired
	}
	return user.RequireAdmin(user.Identity{UserID: current.ID, Role: current.Role})
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func emailTaken() error {
	return validator.Field("email", user.ErrUserEmailExists.Error())
}

// isUniqueViolation reports a write that lost the email race to a concurrent writer.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context, filter user.UserFilter) (user.ListUserResponse, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return user.ListUserResponse{}, err
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if err := filter.Validate(); err != nil {
		return user.ListUserResponse{}, err
	}

	users, total, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return user.ListUserResponse{}, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.NewUserResponse(u))
	}

	totalPages := int((total + user.PageSize - 1) / user.PageSize)

	return user.ListUserResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      user.PageSize,
		TotalPages: totalPages,
		Users:      responses,
	}, nil
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return user.UserResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email, nil)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return user.UserResponse{}, emailTaken()
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         user.Role(req.Role),
		Department:   req.Department,
		Position:     req.Position,
		Status:       user.Status(req.Status),
		PhoneNumber:  req.PhoneNumber,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return user.UserResponse{}, emailTaken()
		}
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user.NewUserResponse(created), nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return user.UserResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	existing, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email, &existing.ID)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return user.UserResponse{}, emailTaken()
	}

	existing.Name = req.Name
	existing.Email = req.Email
	existing.Role = user.Role(req.Role)
	existing.Department = req.Department
	existing.Position = req.Position
	existing.Status = user.Status(req.Status)
	existing.PhoneNumber = req.PhoneNumber
	existing.PasswordHash = ""
	if req.Password != nil && *req.Password != "" {
		existing.PasswordHash, err = hashPassword(*req.Password)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	saved, err := s.userRepo.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.UserResponse{}, err
		}
		if isUniqueViolation(err) {
			return user.UserResponse{}, emailTaken()
		}
		return user.UserResponse{}, fmt.Errorf("failed to update user: %w", err)
	}

	return user.NewUserResponse(saved), nil
}

// Delete implements user.UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.requireAdmin(ctx); err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (s *UserServiceImpl) currentUser(ctx context.Context) (user.User, error) {
	caller, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return user.User{}, err
	}

	current, err := s.userRepo.GetByID(ctx, caller.UserID)
	if errors.Is(err, user.ErrUserNotFound) {
		return user.User{}, user.ErrIdentityMissing
	}
	return current, err
}

// GetRole implements user.UserService.
func (s *UserServiceImpl) GetRole(ctx context.Context) (user.Role, error) {
	current, err := s.currentUser(ctx)
	if err != nil {
		return "", err
	}
	return current.Role, nil
}

// GetProfile implements user.UserService.
func (s *UserServiceImpl) GetProfile(ctx context.Context) (user.ProfileResponse, error) {
	current, err := s.currentUser(ctx)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	return user.ProfileResponse{
		ID:          current.ID,
		Name:        current.Name,
		Email:       current.Email,
		Role:        string(current.Role),
		Department:  current.Department,
		Position:    current.Position,
		PhoneNumber: current.PhoneNumber,
	}, nil
}
