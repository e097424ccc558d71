package middleware

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/chefskiss/festival-api/internal/api/handler/v1/response"
)

var errRateLimited = errors.New("too many submissions, please try again later")

// RateLimiter caps public submissions per client IP in a fixed window.
type RateLimiter struct {
	redis  redis.Cmdable
	limit  int64
	window time.Duration
}

func NewRateLimiter(client redis.Cmdable, limit int64, window time.Duration) *RateLimiter {
	return &RateLimiter{
		redis:  client,
		limit:  limit,
		window: window,
	}
}

// Limit fails open when Redis is unreachable so that an outage never blocks
// submissions.
func (r *RateLimiter) Limit(scope string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", scope, ctx.ClientIP())

		count, err := r.redis.Incr(ctx.Request.Context(), key).Result()
		if err != nil {
			zap.L().Warn("rate limiter unavailable", zap.String("key", key), zap.Error(err))
			ctx.Next()
			return
		}
		if count == 1 {
			if err = r.redis.Expire(ctx.Request.Context(), key, r.window).Err(); err != nil {
				zap.L().Warn("rate limiter expire failed", zap.String("key", key), zap.Error(err))
			}
		}

		if count > r.limit {
			ctx.Header("Retry-After", fmt.Sprintf("%d", int(r.window.Seconds())))
			response.RenderErr(ctx, response.ErrTooManyRequests(errRateLimited))
			return
		}

		ctx.Next()
	}
}
