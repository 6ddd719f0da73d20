package auth

import (
	"fmt"
	"strings"
	"time"

	apperrors "capi-onboarding-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	issuer = "capi-onboarding-backend"
	// DefaultTokenTTL is the lifetime of tokens minted without an explicit TTL
	DefaultTokenTTL = 12 * time.Hour
)

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Email                string `json:"email" example:"am@agency.com"`
	Name                 string `json:"name,omitempty" example:"Jane Doe"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// AuthService signs and validates HS256 bearer tokens
type AuthService struct {
	secret []byte
	now    func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(secret string) (*AuthService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, apperrors.NewConfigurationError("JWT secret is required")
	}
	return &AuthService{secret: []byte(secret), now: time.Now}, nil
}

// GenerateJWT creates a token identifying email. A zero ttl uses DefaultTokenTTL.
func (s *AuthService) GenerateJWT(email, name string, ttl time.Duration) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", apperrors.NewValidationError("email", "is required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	now := s.now()
	claims := &AuthClaims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, apperrors.NewAuthenticationError(fmt.Sprintf("invalid token: %v", err))
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid && claims.Email != "" {
		return claims, nil
	}

	return nil, apperrors.NewAuthenticationError("invalid token")
}
