package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newScopeContext(t *testing.T) *gin.Context {
	t.Helper()

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/leaves", nil)
	return c
}

func TestIdempotencyScope(t *testing.T) {
	t.Run("success distinct bearer tokens never share a scope", func(t *testing.T) {
		first := newScopeContext(t)
		first.Request.Header.Set("Authorization", "Bearer token-one")

		second := newScopeContext(t)
		second.Request.Header.Set("Authorization", "Bearer token-two")

		assert.NotEqual(t, idempotencyScope(first), idempotencyScope(second))
	})

	t.Run("success same token yields a stable scope", func(t *testing.T) {
		first := newScopeContext(t)
		first.Request.Header.Set("Authorization", "Bearer token-one")

		second := newScopeContext(t)
		second.Request.Header.Set("Authorization", "Bearer token-one")

		assert.Equal(t, idempotencyScope(first), idempotencyScope(second))
	})

	t.Run("success actor id takes precedence over the token", func(t *testing.T) {
		c := newScopeContext(t)
		c.Request.Header.Set("Authorization", "Bearer token-one")
		c.Set("actor_id", int64(7))

		assert.Equal(t, "7", idempotencyScope(c))
	})

	t.Run("success anonymous requests fall back to the remote address", func(t *testing.T) {
		c := newScopeContext(t)

		assert.Equal(t, c.ClientIP(), idempotencyScope(c))
		assert.NotEmpty(t, idempotencyScope(c))
	})
}
