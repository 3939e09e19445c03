package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yiryeong/wanted-pre-onboarding/internal/domain"
)

type stubResolver struct {
	actor domain.Actor
	err   error
	seen  string
}

func (s *stubResolver) ResolveToken(token string, _ time.Time) (domain.Actor, error) {
	s.seen = token
	return s.actor, s.err
}

func newTestRouter(resolver ActorResolver) (*gin.Engine, *domain.Actor) {
	gin.SetMode(gin.TestMode)
	var got domain.Actor
	r := gin.New()
	r.GET("/secure", Authenticated(resolver), func(c *gin.Context) {
		actor, ok := CurrentActor(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		got = actor
		c.Status(http.StatusOK)
	})
	return r, &got
}

func TestAuthenticatedMissingHeader(t *testing.T) {
	r, _ := newTestRouter(&stubResolver{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticatedBadScheme(t *testing.T) {
	r, _ := newTestRouter(&stubResolver{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Basic abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticatedRejectedToken(t *testing.T) {
	r, _ := newTestRouter(&stubResolver{err: errors.New("token revoked")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticatedInjectsActor(t *testing.T) {
	resolver := &stubResolver{actor: domain.Actor{Id: 7, Username: "staff", IsStaff: true}}
	r, got := newTestRouter(resolver)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "valid-token", resolver.seen)
	assert.Equal(t, int64(7), got.Id)
	assert.Equal(t, "staff", got.Username)
	assert.True(t, got.IsStaff)
}
