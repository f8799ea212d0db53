package user

import (
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

// AllUsers is the requested-user sentinel meaning "every active user".
const AllUsers = "all"

// Identity is the verified caller of a request.
type Identity struct {
	UserID int64
	Role   Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

type ScopeKind int

const (
	ScopeSelf ScopeKind = iota
	ScopeUser
	ScopeAllActive
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeSelf:
		return "self"
	case ScopeUser:
		return "user"
	case ScopeAllActive:
		return "all_active"
	default:
		return "unknown"
	}
}

// Scope describes which users a read operation may cover.
type Scope struct {
	Kind   ScopeKind
	UserID int64 // set for ScopeSelf and ScopeUser
}

// TargetID returns the single user id the scope is pinned to, or nil for ScopeAllActive.
func (s Scope) TargetID() *int64 {
	if s.Kind == ScopeAllActive {
		return nil
	}
	id := s.UserID
	return &id
}

// ResolveScope decides whose data the caller may read. Non-admins are always
// pinned to themselves and requestedUserID is ignored for them.
func ResolveScope(caller Identity, requestedUserID string) (Scope, error) {
	if !caller.IsAdmin() {
		return Scope{Kind: ScopeSelf, UserID: caller.UserID}, nil
	}

	if requestedUserID == "" || requestedUserID == AllUsers {
		return Scope{Kind: ScopeAllActive}, nil
	}

	id, ok := validator.ParsePositiveInt(requestedUserID)
	if !ok {
		return Scope{}, validator.Field("user_id", "user_id must be a user id or \"all\"")
	}
	return Scope{Kind: ScopeUser, UserID: id}, nil
}

// RequireAdmin gates management operations.
func RequireAdmin(caller Identity) error {
	if !caller.IsAdmin() {
		return ErrAdminPrivilegeRequired
	}
	return nil
}
