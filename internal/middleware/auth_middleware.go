package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/interntrack/server/internal/app/models/dto"
	"github.com/interntrack/server/internal/pkg/auth"
	"github.com/interntrack/server/internal/pkg/logger"
)

// Context keys set by JWTAuth for downstream handlers.
const (
	ContextClaims     = "claims"
	ContextUserID     = "userID"
	ContextIdentifier = "identifier"
	ContextRole       = "role"
)

// JWTAuth authenticates requests with a Bearer token in the Authorization
// header. Expired tokens are reported distinctly from malformed ones.
func JWTAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}

		claims, err := jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Token has expired")
				return
			}
			logger.Debug().Err(err).Msg("Token validation failed")
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token")
			return
		}

		c.Set(ContextClaims, claims)
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextIdentifier, claims.Identifier)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RoleRequired gates a route to an allow-list of roles. It must run after
// JWTAuth.
func RoleRequired(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		if role == "" {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		logger.Debug().Str("role", role).Str("path", c.FullPath()).Msg("Role rejected")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
	}
}

// GetClaims retrieves the authenticated claims set by JWTAuth
func GetClaims(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(ContextClaims)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message string) {
	errorDetail := dto.NewErrorDetail(code, message)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}
