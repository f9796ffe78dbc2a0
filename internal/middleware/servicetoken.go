package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type ServiceClaims struct {
	Service string `json:"service"`
	jwt.RegisteredClaims
}

// RequireServiceToken authenticates the automation API: a signed bearer
// token identifying the calling service (e.g. the campaign analyzer).
func RequireServiceToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			rejectToken(c, "missing token")
			return
		}

		claims := &ServiceClaims{}
		parsed, err := jwt.ParseWithClaims(strings.TrimPrefix(h, "Bearer "), claims,
			func(token *jwt.Token) (any, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
		if err != nil || !parsed.Valid || claims.Service == "" {
			rejectToken(c, "invalid token")
			return
		}

		c.Set("service", claims.Service)
		c.Next()
	}
}

func rejectToken(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   gin.H{"code": "unauthorized", "message": msg},
	})
}
