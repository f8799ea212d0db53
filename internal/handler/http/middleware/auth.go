package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/logger"
	"github.com/go-chi/jwtauth/v5"
)

// UserFinder loads the account behind a token.
type UserFinder interface {
	GetByID(ctx context.Context, id int64) (user.User, error)
}

// AuthRequired rejects requests without a valid, unrevoked access token whose
// account still exists and is active. The identity placed in ctx carries the
// stored role, not the one in the token. It must run after jwtauth.Verifier.
func AuthRequired(tokens jwt.Service, users UserFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token, claims, err := jwtauth.FromContext(ctx)

			if err != nil || token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			revoked, err := tokens.IsTokenRevoked(ctx, token)
			if err != nil {
				logger.From(ctx).ErrorContext(ctx, "token revocation check failed", "error", err)
				response.InternalServerError(w, "An unexpected error occurred")
				return
			}
			if revoked {
				response.HandleError(w, auth.ErrTokenRevoked)
				return
			}

			userID, err := jwt.SubjectFromContext(ctx)
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			current, err := users.GetByID(ctx, userID)
			if err != nil {
				if errors.Is(err, user.ErrUserNotFound) {
					response.HandleError(w, user.ErrIdentityMissing)
					return
				}
				logger.From(ctx).ErrorContext(ctx, "load authenticated user failed", "user_id", userID, "error", err)
				response.InternalServerError(w, "An unexpected error occurred")
				return
			}
			if !current.IsActive() {
				response.HandleError(w, auth.ErrAccountInactive)
				return
			}

			ctx = jwt.WithIdentity(ctx, user.Identity{UserID: current.ID, Role: current.Role})
			ctx = logger.With(ctx, "user_id", current.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}
