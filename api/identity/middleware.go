package identity

import (
	"errors"
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextUserClaims is the key used to store user claims in the Gin context.
	ContextUserClaims = "userClaims"
)

var ErrNoUser = errors.New("request carries no user")

// Authorize rejects requests without a valid bearer token and stores the
// token's claims under ContextUserClaims.
func Authorize(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(ContextUserClaims, claims)
		c.Next()
	}
}

// UserID returns the ID of the authorized caller.
func UserID(c *gin.Context) (uuid.UUID, error) {
	value, ok := c.Get(ContextUserClaims)
	if !ok {
		return uuid.Nil, ErrNoUser
	}
	claims, ok := value.(map[string]interface{})
	if !ok {
		return uuid.Nil, ErrNoUser
	}
	raw, ok := claims["userID"].(string)
	if !ok {
		return uuid.Nil, ErrNoUser
	}
	return uuid.Parse(raw)
}
