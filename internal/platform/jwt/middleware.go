package jwtmw

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"portfolio_backend/internal/platform/config"
)

// Context keys set by the middleware for downstream handlers.
const (
	ContextUserID = "userID"
	ContextEmail  = "userEmail"
	ContextName   = "userName"
)

// AuthRequired returns a Gin middleware that validates bearer JWT tokens and
// restricts access to authenticated users. Signature (HS256 only), issuer,
// audience and expiration are all verified; a token is rejected from the exact
// moment its expiration is reached (no leeway). The verification key comes from
// the injected configuration, never from the environment at request time.
func AuthRequired(cfg config.JWT) gin.HandlerFunc {
	secret := []byte(cfg.Secret)
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithExpirationRequired(),
	)

	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		token, err := parser.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		})
		if err != nil || !token.Valid {
			// Invalid signature, wrong issuer/audience, or expired. The caller
			// learns nothing beyond the fact that the token was rejected.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if sub, ok := claims["sub"].(string); ok {
			if id, err := strconv.ParseUint(sub, 10, 64); err == nil {
				c.Set(ContextUserID, uint(id))
			}
		}
		if email, ok := claims["email"].(string); ok {
			c.Set(ContextEmail, email)
		}
		if name, ok := claims["name"].(string); ok {
			c.Set(ContextName, name)
		}

		c.Next()
	}
}

// UserID extracts the authenticated user's ID from the Gin context.
// It returns false when the middleware did not run or the token had no subject.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
