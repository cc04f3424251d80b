package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Ncongwana-808/autorepair-erp/internal/apierror"
	"github.com/Ncongwana-808/autorepair-erp/internal/auth"
	"github.com/Ncongwana-808/autorepair-erp/internal/model"
	"github.com/Ncongwana-808/autorepair-erp/internal/repository"
)

const CurrentUserKey = "current_user"

// JWTAuth validates the Bearer token on every protected route, then
// re-fetches the referenced user from the live store. Claims alone are never
// trusted: a cryptographically valid token for a deleted or deactivated user
// is rejected, so an admin revokes access instantly by flipping is_active.
// All sub-reasons collapse into one 401.
func JWTAuth(codec *auth.Codec, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("authentication required"))
			return
		}

		claims, err := codec.Decode(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("invalid or expired token"))
			return
		}

		user, err := users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			// Only an absent row is an identity failure. Anything else is a
			// store fault and must not masquerade as a bad token.
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("invalid or expired token"))
				return
			}
			log.Error().
				Str("request_id", c.GetString(RequestIDKey)).
				Str("path", c.FullPath()).
				Err(err).
				Msg("user lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New("internal server error"))
			return
		}
		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("invalid or expired token"))
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// requireRole rejects authenticated requests whose live role is not allowed.
// It runs after JWTAuth, so a 403 here always means a valid identity with
// insufficient privileges, not a failed authentication.
func requireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !allowed[user.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("insufficient permissions"))
			return
		}
		c.Next()
	}
}

// AdminOnly gates user management and other administrative operations.
func AdminOnly() gin.HandlerFunc {
	return requireRole(model.RoleAdmin)
}

// WorkerOrAdmin gates write operations on workshop entities. Admin is a
// superset capability of worker.
func WorkerOrAdmin() gin.HandlerFunc {
	return requireRole(model.RoleWorker, model.RoleAdmin)
}

// CurrentUser retrieves the live user record stored by JWTAuth.
func CurrentUser(c *gin.Context) *model.User {
	user, _ := c.Get(CurrentUserKey)
	u, _ := user.(*model.User)
	return u
}
