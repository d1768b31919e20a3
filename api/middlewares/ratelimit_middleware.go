package middlewares

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/top-system/light-news/lib"
	"github.com/top-system/light-news/pkg/echox"
)

// RateLimitMiddleware 按客户端 IP 限流
type RateLimitMiddleware struct {
	handler  lib.HttpHandler
	logger   lib.Logger
	limit    rate.Limit
	burst    int
	visitors *sync.Map // ip -> *rate.Limiter
}

// NewRateLimitMiddleware creates new rate limit middleware
func NewRateLimitMiddleware(handler lib.HttpHandler, logger lib.Logger, config lib.Config) RateLimitMiddleware {
	burst := config.Http.RateBurst
	if burst <= 0 {
		burst = 1
	}

	return RateLimitMiddleware{
		handler:  handler,
		logger:   logger,
		limit:    rate.Limit(config.Http.RateLimit),
		burst:    burst,
		visitors: new(sync.Map),
	}
}

func (a RateLimitMiddleware) getVisitor(ip string) *rate.Limiter {
	if v, ok := a.visitors.Load(ip); ok {
		return v.(*rate.Limiter)
	}

	actual, _ := a.visitors.LoadOrStore(ip, rate.NewLimiter(a.limit, a.burst))
	return actual.(*rate.Limiter)
}

func (a RateLimitMiddleware) handle() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if !a.getVisitor(ctx.RealIP()).Allow() {
				return echox.Response{
					Code:    http.StatusTooManyRequests,
					Message: "Too many requests",
				}.JSON(ctx)
			}

			return next(ctx)
		}
	}
}

func (a RateLimitMiddleware) Setup() {
	if a.limit <= 0 {
		a.logger.Zap.Info("rate limit is disabled")
		return
	}

	a.handler.Engine.Use(a.handle())
}
