package auth

import (
	"context"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Logout revokes the token carried by ctx until it expires.
	Logout(ctx context.Context) error
}
