// Package router assembles the echo server from handlers and middleware.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/zizouhuweidi/trivia/internal/middleware"
)

// Routes is implemented by every handler
type Routes interface {
	Register(e *echo.Echo)
}

// Options configures the global middleware
type Options struct {
	Logger             zerolog.Logger
	CORSAllowedOrigins []string
	// Limiter enables per-client rate limiting when set
	Limiter middleware.Limiter
}

// New builds the echo instance serving routes
func New(opts Options, routes ...Routes) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.GlobalErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.ContextLogger(opts.Logger))
	e.Use(middleware.RequestLogger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: opts.CORSAllowedOrigins,
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
	}))
	if opts.Limiter != nil {
		e.Use(middleware.RateLimit(opts.Limiter, skipRateLimit))
	}

	for _, r := range routes {
		r.Register(e)
	}

	return e
}

// Health checks and the long-lived feed are not rate limited.
func skipRateLimit(c echo.Context) bool {
	switch c.Path() {
	case "/health", "/ws":
		return true
	}
	return false
}
