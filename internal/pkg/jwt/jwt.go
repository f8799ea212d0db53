package jwt

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const TokenTypeBearer = "Bearer"

type Service interface {
	GenerateAccessToken(u user.User) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(ctx context.Context, token jwt.Token) error
	IsTokenRevoked(ctx context.Context, token jwt.Token) (bool, error)
}

type JWTService struct {
	accessTokenExpiration time.Duration
	tokenAuth             *jwtauth.JWTAuth
	revoked               RevocationStore
	now                   func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// NewJWTService builds an HS256 token service. revoked holds logged-out token ids.
func NewJWTService(secretKey string, accessTokenExpirationTime string, revoked RevocationStore) (*JWTService, error) {
	expiration, err := time.ParseDuration(accessTokenExpirationTime)
	if err != nil {
		return nil, fmt.Errorf("parse access token expiration: %w", err)
	}
	return &JWTService{
		accessTokenExpiration: expiration,
		tokenAuth:             jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revoked:               revoked,
		now:                   time.Now,
	}, nil
}

func (j *JWTService) GenerateAccessToken(u user.User) (token string, expiresAt int64, err error) {
	expiresAt = j.now().Add(j.accessTokenExpiration).Unix()

	claims := map[string]interface{}{
		"user_id":  strconv.FormatInt(u.ID, 10),
		"email":    u.Email,
		"role":     string(u.Role),
		"is_admin": u.IsAdmin(),
		"type":     "access",
		"jti":      uuid.NewString(),
		"exp":      expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// RevokeToken blacklists the token id until the token would have expired anyway.
func (j *JWTService) RevokeToken(ctx context.Context, token jwt.Token) error {
	jti := token.JwtID()
	if jti == "" {
		return fmt.Errorf("token has no jti claim")
	}
	ttl := token.Expiration().Sub(j.now())
	if ttl <= 0 {
		return nil
	}
	return j.revoked.Revoke(ctx, jti, ttl)
}

func (j *JWTService) IsTokenRevoked(ctx context.Context, token jwt.Token) (bool, error) {
	jti := token.JwtID()
	if jti == "" {
		return false, nil
	}
	return j.revoked.IsRevoked(ctx, jti)
}

type identityKey struct{}

// WithIdentity stores the caller as loaded from the user store.
func WithIdentity(ctx context.Context, identity user.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext returns the caller stored by WithIdentity. Token claims
// are never used here: the role in a token is frozen at issue time.
func IdentityFromContext(ctx context.Context) (user.Identity, error) {
	identity, ok := ctx.Value(identityKey{}).(user.Identity)
	if !ok || identity.UserID <= 0 {
		return user.Identity{}, user.ErrIdentityMissing
	}
	return identity, nil
}

// SubjectFromContext reads the user id of the token verified by jwtauth.Verifier.
func SubjectFromContext(ctx context.Context) (int64, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil || claims == nil {
		return 0, user.ErrIdentityMissing
	}

	rawID, ok := claims["user_id"].(string)
	if !ok {
		return 0, user.ErrIdentityMissing
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		return 0, user.ErrIdentityMissing
	}
	return id, nil
}
