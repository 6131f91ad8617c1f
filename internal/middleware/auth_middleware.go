package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/internhub/internhub/internal/app/models"
	"github.com/internhub/internhub/internal/pkg/apperrors"
	"github.com/internhub/internhub/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextUserRole  = "userRole"
)

// JWTAuth validates the Authorization bearer token and stores the
// authenticated identity on the request context.
func JWTAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(ctx.GetHeader("Authorization"))
		if err != nil {
			HandleAPIError(ctx, apperrors.ErrTokenInvalid)
			return
		}

		claims, err := jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				HandleAPIError(ctx, apperrors.ErrTokenExpired)
				return
			}
			HandleAPIError(ctx, apperrors.ErrTokenInvalid)
			return
		}

		ctx.Set(ContextUserID, claims.UserID)
		ctx.Set(ContextUserEmail, claims.Email)
		ctx.Set(ContextUserRole, claims.Role)

		ctx.Next()
	}
}

// RoleRequired allows the request through only when the authenticated
// role matches one of the given roles. Must run after JWTAuth.
func RoleRequired(roles ...models.RoleType) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		roleValue, exists := ctx.Get(ContextUserRole)
		if !exists {
			HandleAPIError(ctx, apperrors.ErrTokenInvalid)
			return
		}

		role, ok := roleValue.(string)
		if !ok {
			HandleAPIError(ctx, apperrors.ErrTokenInvalid)
			return
		}

		for _, allowed := range roles {
			if role == string(allowed) {
				ctx.Next()
				return
			}
		}

		HandleAPIError(ctx, apperrors.ErrPermissionDenied)
	}
}
