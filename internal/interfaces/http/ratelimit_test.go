package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	apphttp "github.com/jhoicas/factory-ops-api/internal/interfaces/http"
)

func TestRateLimit_RafagaAgotada_Retorna429(t *testing.T) {
	limiter := apphttp.NewIPRateLimiter(rate.Limit(0.01), 2)
	app := fiber.New()
	app.Post("/login", apphttp.RateLimit(limiter), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
		statuses = append(statuses, resp.StatusCode)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}

func TestIPRateLimiter_MismoLimitadorPorIP(t *testing.T) {
	limiter := apphttp.NewIPRateLimiter(rate.Limit(1), 1)

	a := limiter.GetLimiter("10.0.0.1")
	assert.Same(t, a, limiter.GetLimiter("10.0.0.1"))
	assert.NotSame(t, a, limiter.GetLimiter("10.0.0.2"))
}
