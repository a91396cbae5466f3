package middleware

import (
	"strings"

	"talentcast_backend/internal/auth"
	"talentcast_backend/internal/logger"
	"talentcast_backend/internal/models"
	"talentcast_backend/internal/repositories"
	"talentcast_backend/pkg/apperrors"
	"talentcast_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var authUserRepo = repositories.NewUserRepository()

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(header, "Bearer "), true
}

func dbFromGin(c *gin.Context) *gorm.DB {
	v, _ := c.Get(string(contextkeys.DBContextKey))
	db, _ := v.(*gorm.DB)
	return db
}

// resolveUser turns a bearer token into the live user row. Loading the row on
// every request makes a deleted account's token useless immediately.
func resolveUser(c *gin.Context, token string) (*models.User, error) {
	claims, err := auth.ParseToken(token)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := authUserRepo.FindByID(dbFromGin(c), claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	return user, nil
}

// AuthMiddleware rejects requests without a valid token for an existing user.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			c.Abort()
			return
		}

		user, err := resolveUser(c, token)
		if err != nil {
			apperrors.HandleError(c, err)
			c.Abort()
			return
		}

		c.Set(contextkeys.CurrentUserKey, user)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), user.ID))
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller when a valid token is present and
// continues anonymously otherwise. Public listings vary their view by role.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if user, err := resolveUser(c, token); err == nil {
				c.Set(contextkeys.CurrentUserKey, user)
				c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), user.ID))
			}
		}
		c.Next()
	}
}

// RequireRoles allows only the listed roles past. Must run after
// AuthMiddleware.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !roleSet[user.Role] {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user, or nil on anonymous requests.
func CurrentUser(c *gin.Context) *models.User {
	v, exists := c.Get(contextkeys.CurrentUserKey)
	if !exists {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
