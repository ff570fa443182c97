package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/petcare-service/internal/domain"
)

var (
	// ErrNoSecret indicates the signing secret was not configured. Issuance
	// and validation both fail while it is absent, so protected routes stay
	// closed.
	ErrNoSecret = errors.New("signing secret not configured")

	// ErrInvalidToken is the single validation outcome for every bad
	// credential: malformed, forged, expired or mis-structured. Callers must
	// not learn which.
	ErrInvalidToken = errors.New("invalid token")
)

// TokenManager issues and validates signed session credentials.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager. An empty secret is accepted here so
// the process can still serve public routes; signing and validation will
// refuse to operate until a secret exists.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 168 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Claims describes the JWT payload.
type Claims struct {
	UserID string      `json:"userId"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issue builds and signs a credential for the given identity. Passing an
// unknown role is a programming error, not a runtime condition.
func (tm *TokenManager) Issue(userID, email string, role domain.Role) (string, time.Time, error) {
	if !domain.ValidRole(role) {
		return "", time.Time{}, fmt.Errorf("issue token: unknown role %q", role)
	}
	if len(tm.secret) == 0 {
		return "", time.Time{}, ErrNoSecret
	}

	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Validate checks signature, expiry and structure, returning the decoded
// payload. All failure modes collapse into ErrInvalidToken so the cause never
// crosses a trust boundary; a missing secret also validates nothing.
func (tm *TokenManager) Validate(tokenStr string) (*domain.TokenPayload, error) {
	if len(tm.secret) == 0 {
		return nil, ErrInvalidToken
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" || claims.Email == "" || !domain.ValidRole(claims.Role) {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}

	payload := &domain.TokenPayload{
		UserID:    claims.UserID,
		Email:     claims.Email,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		payload.IssuedAt = claims.IssuedAt.Time
	}
	return payload, nil
}
