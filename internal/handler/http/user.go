package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/logger"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Role(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &userHandlerImpl{
		userService: userService,
	}
}

type roleResponse struct {
	Success bool   `json:"success"`
	Role    string `json:"role"`
}

func optionalQuery(r *http.Request, key string) *string {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil
	}
	return &value
}

// userIDParam reads {id}; anything that is not a positive integer cannot name a user.
func userIDParam(r *http.Request) (int64, bool) {
	return validator.ParsePositiveInt(chi.URLParam(r, "id"))
}

// List handles GET /users
func (h *userHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := user.UserFilter{
		Search:     optionalQuery(r, "search"),
		Department: optionalQuery(r, "department"),
		Status:     optionalQuery(r, "status"),
		Page:       1,
	}

	if page := r.URL.Query().Get("page"); page != "" {
		n, ok := validator.ParsePositiveInt(page)
		if !ok {
			response.HandleError(w, validator.Field("page", "page must be a positive integer"))
			return
		}
		filter.Page = int(n)
	}

	users, err := h.userService.List(r.Context(), filter)
	if err != nil {
		logger.From(r.Context()).ErrorContext(r.Context(), "List users service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}

// Create handles POST /users
func (h *userHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req user.CreateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.From(r.Context()).ErrorContext(r.Context(), "Create user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.userService.Create(r.Context(), req)
	if err != nil {
		logger.From(r.Context()).ErrorContext(r.Context(), "Create user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User created successfully", created)
}

// Update handles PUT /users/{id}
func (h *userHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(r)
	if !ok {
		response.HandleError(w, user.ErrUserNotFound)
		return
	}

	var req user.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.From(r.Context()).ErrorContext(r.Context(), "Update user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.userService.Update(r.Context(), req)
	if err != nil {
		logger.From(r.Context()).ErrorContext(r.Context(), "Update user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User updated successfully", updated)
}

// Delete handles DELETE /users/{id}
func (h *userHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(r)
	if !ok {
		response.HandleError(w, user.ErrUserNotFound)
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		logger.From(r.Context()).ErrorContext(r.Context(), "Delete user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User deleted successfully", nil)
}

// Role handles GET /user/role
func (h *userHandlerImpl) Role(w http.ResponseWriter, r *http.Request) {
	role, err := h.userService.GetRole(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, roleResponse{Success: true, Role: string(role)})
}

// Profile handles GET /user/profile
func (h *userHandlerImpl) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.userService.GetProfile(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}
