package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/jhoicas/factory-ops-api/internal/application/dto"
)

// limiterIdleTTL tiempo sin tráfico tras el cual se descarta el limitador de una IP.
const limiterIdleTTL = 10 * time.Minute

// IPRateLimiter un token bucket por IP. Los limitadores viven en un go-cache con expiración
// deslizante para no crecer sin límite.
type IPRateLimiter struct {
	store *cache.Cache
	r     rate.Limit
	b     int
}

// NewIPRateLimiter crea el limitador: r peticiones por segundo con ráfaga b.
func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	if b <= 0 {
		b = 1
	}
	return &IPRateLimiter{
		store: cache.New(limiterIdleTTL, 2*limiterIdleTTL),
		r:     r,
		b:     b,
	}
}

// GetLimiter devuelve (o crea) el limitador de ip y renueva su expiración.
func (l *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	if v, ok := l.store.Get(ip); ok {
		lim := v.(*rate.Limiter)
		l.store.Set(ip, lim, cache.DefaultExpiration)
		return lim
	}
	lim := rate.NewLimiter(l.r, l.b)
	if err := l.store.Add(ip, lim, cache.DefaultExpiration); err != nil {
		// otra petición de la misma IP lo creó primero
		if v, ok := l.store.Get(ip); ok {
			return v.(*rate.Limiter)
		}
	}
	return lim
}

// RateLimit middleware que responde 429 RATE_LIMITED cuando la IP agota su cupo.
func RateLimit(limiter *IPRateLimiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !limiter.GetLimiter(c.IP()).Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "RATE_LIMITED", Message: "demasiadas peticiones, intente más tarde"})
		}
		return c.Next()
	}
}
