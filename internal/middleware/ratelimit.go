package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// TransferRateLimit limits transfer attempts per source account. With Redis
// the counter is shared across instances; without it a per-process token
// bucket applies. Cache errors fail open.
func TransferRateLimit(cache *redis.Client, maxPerMin int) fiber.Handler {
	if maxPerMin <= 0 {
		maxPerMin = 30
	}

	var (
		mu      sync.Mutex
		buckets = make(map[string]*rate.Limiter)
	)
	local := func(key string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		lim, ok := buckets[key]
		if !ok {
			lim = rate.NewLimiter(rate.Every(time.Minute/time.Duration(maxPerMin)), maxPerMin)
			buckets[key] = lim
		}
		return lim
	}

	return func(c *fiber.Ctx) error {
		var req struct {
			FromAccountNo string `json:"from_account_no"`
		}
		_ = c.BodyParser(&req)
		source := strings.TrimSpace(req.FromAccountNo)
		if source == "" {
			source = c.IP()
		}

		if cache == nil {
			if !local(source).Allow() {
				return fiber.NewError(http.StatusTooManyRequests, "too many transfers, try again later")
			}
			return c.Next()
		}

		key := "rl:transfer:" + source
		cnt, err := cache.Incr(c.UserContext(), key).Result()
		if err == nil && cnt == 1 {
			cache.Expire(c.UserContext(), key, time.Minute)
		}
		if err != nil {
			return c.Next() // fail-open on cache errors
		}
		if cnt > int64(maxPerMin) {
			return fiber.NewError(http.StatusTooManyRequests, "too many transfers, try again later")
		}
		return c.Next()
	}
}
