package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yiryeong/wanted-pre-onboarding/internal/domain"
)

// ActorContextKey context key under which the acting user is stored
const ActorContextKey = "actor"

// ActorResolver turns a bearer token into the acting user.
type ActorResolver interface {
	ResolveToken(token string, now time.Time) (domain.Actor, error)
}

// Authenticated verifies the Authorization header and injects the
// resolved actor into the request context.
func Authenticated(resolver ActorResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid authorization header")
			return
		}

		actor, err := resolver.ResolveToken(parts[1], time.Now())
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set(ActorContextKey, actor)
		c.Next()
	}
}

// CurrentActor returns the actor injected by Authenticated.
func CurrentActor(c *gin.Context) (domain.Actor, bool) {
	v, ok := c.Get(ActorContextKey)
	if !ok {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
}
