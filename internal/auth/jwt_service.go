package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"court/internal/model"
)

// Claims represents JWT claims. The role claim is advisory; handlers resolve
// the acting user from the database by user_id so a stale token cannot carry
// an outdated role.
type Claims struct {
	UserID uint       `json:"user_id"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTService handles bearer token generation and validation.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService creates a JWT service with the given secret and token TTL.
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// GenerateToken signs a new access token for the user.
func (s *JWTService) GenerateToken(user *model.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken validates a token string and returns the claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// CurrentClaims extracts the verified claims stored on the context by the
// echo-jwt middleware.
func CurrentClaims(c echo.Context) (*Claims, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, false
	}
	return claims, true
}
