package auth

import (
	"strings"

	apperrors "capi-onboarding-backend/internal/errors"
	"capi-onboarding-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const claimsKey = "auth_claims"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

func (m *AuthMiddleware) authenticate(c *gin.Context) (*AuthClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, apperrors.ErrMissingAuthorization
	}

	// Extract token from Bearer header
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return nil, apperrors.ErrInvalidAuthorization
	}

	return m.service.ValidateJWT(tokenString)
}

// RequireAuth validates JWT tokens and sets the user on the request context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := m.authenticate(c)
		if err != nil {
			logger.WithContext(c.Request.Context()).WithError(err).Debug("Rejected unauthenticated request")
			c.AbortWithStatusJSON(apperrors.HTTPStatus(err), gin.H{"error": gin.H{"message": err.Error()}})
			return
		}
		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth sets the user when a valid token is present but never rejects
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := m.authenticate(c); err == nil {
			setClaims(c, claims)
		}
		c.Next()
	}
}

func setClaims(c *gin.Context, claims *AuthClaims) {
	c.Set(claimsKey, claims)
	c.Request = c.Request.WithContext(logger.ContextWithUser(c.Request.Context(), claims.Email))
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}

// GetUserEmail returns the authenticated email, or "" for anonymous requests
func GetUserEmail(c *gin.Context) string {
	if claims, ok := GetAuthClaims(c); ok {
		return claims.Email
	}
	return ""
}
