package middleware

import (
	"net/http"

	"studio-backoffice/internal/models"
	"studio-backoffice/internal/storage"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

// Actor is the authenticated user for the current request, resolved once by
// RequireAuth and carried on the gin context. Handlers never touch the
// session directly.
type Actor struct {
	ID    uint
	Email string
	Role  models.UserRole
}

func ActorFrom(c *gin.Context) (Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return Actor{}, false
	}
	actor, ok := v.(Actor)
	return actor, ok
}

// RequireAuth resolves the session cookie to an Actor or rejects with 401.
func RequireAuth(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		uid, ok := sess.Get("user_id").(uint)
		if !ok || uid == 0 {
			unauthorized(c)
			return
		}

		user, err := store.UserByID(uid)
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(actorKey, Actor{ID: user.ID, Email: user.Email, Role: user.Role})
		c.Next()
	}
}

func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := map[models.UserRole]struct{}{}
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			unauthorized(c)
			return
		}
		if _, allowed := roleSet[actor.Role]; !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"code": "forbidden", "message": "insufficient role"},
			})
			return
		}
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   gin.H{"code": "unauthorized", "message": "authentication required"},
	})
}
