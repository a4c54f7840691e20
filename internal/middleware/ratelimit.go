package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/zizouhuweidi/trivia/internal/errs"
)

// Limiter decides whether a client identified by key may make a request
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit rejects requests over the limiter's budget with 429. Clients are
// keyed by IP. When the limiter fails the request is let through.
func RateLimit(limiter Limiter, skipper middleware.Skipper) echo.MiddlewareFunc {
	if skipper == nil {
		skipper = middleware.DefaultSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}

			allowed, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				GetLogger(c).Warn().Err(err).Msg("rate limiter unavailable")
				return next(c)
			}
			if !allowed {
				return errs.NewTooManyRequestsError()
			}

			return next(c)
		}
	}
}
