package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go-hrcore/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const idempotencyLockTTL = 30 * time.Second

// idempotencyScope isolates lock keys per caller. The middleware runs ahead
// of token verification, so the actor id is usually not set yet; the bearer
// token (hashed, to bound the key length) stands in for it, and anonymous
// requests fall back to the remote address. Two actors reusing the same
// Idempotency-Key on the same path must never collide.
func idempotencyScope(c *gin.Context) string {
	if actorID := c.GetInt64("actor_id"); actorID > 0 {
		return strconv.FormatInt(actorID, 10)
	}
	if authz := c.GetHeader("Authorization"); authz != "" {
		sum := sha256.Sum256([]byte(authz))
		return hex.EncodeToString(sum[:])
	}
	return c.ClientIP()
}

// Idempotency guards POST retries carrying an Idempotency-Key header. A
// short-lived Redis lock rejects a duplicate while the first attempt is
// still in flight; the lock expires on its own if the process dies.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		lockKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), idempotencyScope(c), idempKey)

		acquired, err := rdb.SetNX(c.Request.Context(), lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			// Redis being down must not block the request path.
			c.Next()
			return
		}
		if !acquired {
			response.Error(c, http.StatusConflict, "DUPLICATE_REQUEST", "a request with this idempotency key is already being processed", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
