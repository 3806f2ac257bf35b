package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Allower is the budget check backing the rate limiter (Redis fixed window
// in production).
type Allower interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit rejects clients that exceed their request budget with 429.
// The limiter keys on the client IP. A limiter error fails open: dropping
// legitimate traffic because Redis is down is worse than letting a burst
// through.
func RateLimit(limiter Allower, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Msg("rate limit check failed, allowing request")
				return next(c)
			}
			if !ok {
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests, please try again later")
			}
			return next(c)
		}
	}
}
