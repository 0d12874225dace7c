package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	idempotencyTTL = 24 * time.Hour
	lockTTL        = 30 * time.Second
)

type bodyRecorder struct {
	gin.ResponseWriter
	body []byte
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the cached response for a repeated Idempotency-Key
// and rejects a key whose first request is still in flight. Used on payroll
// generation so a double-submitted POST cannot start a second batch.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		adminID := c.GetString("admin_id")
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), adminID, idempKey)
		lockKey := cacheKey + ":lock"

		if val, err := rdb.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			var cached json.RawMessage = []byte(val)
			c.AbortWithStatusJSON(http.StatusOK, cached)
			return
		}

		// SetNX expires on its own so a crashed request cannot wedge the key.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", lockTTL).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "A request with this idempotency key is still being processed",
			})
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = recorder

		c.Next()

		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 && len(recorder.body) > 0 {
			rdb.Set(c.Request.Context(), cacheKey, recorder.body, idempotencyTTL)
		}
		rdb.Del(c.Request.Context(), lockKey)
	}
}
