package middleware

import (
	"fmt"
	"log"
	"net"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/barberia-app/booking-api/internal/httperr"
)

// RateLimitMiddleware is a fixed-window per-IP limiter backed by redis so
// the count survives multiple API instances. Redis being down fails open.
func RateLimitMiddleware(rdb *redis.Client, perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		perMinute = 120
	}

	return func(c *gin.Context) {
		ip := clientIP(c)
		window := time.Now().Unix() / 60
		key := fmt.Sprintf("ratelimit:%s:%d", ip, window)

		count, err := rdb.Incr(c.Request.Context(), key).Result()
		if err != nil {
			log.Printf("ratelimit redis error: %v", err)
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(c.Request.Context(), key, time.Minute)
		}

		if count > int64(perMinute) {
			httperr.TooManyRequests(c, "rate_limited", "Demasiadas solicitudes.")
			c.Abort()
			return
		}

		c.Next()
	}
}

func clientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}
