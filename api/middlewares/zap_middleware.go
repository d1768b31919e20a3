package middlewares

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/top-system/light-news/lib"
)

// ZapMiddleware 请求访问日志
type ZapMiddleware struct {
	handler lib.HttpHandler
	logger  lib.Logger
}

// NewZapMiddleware creates new zap middleware
func NewZapMiddleware(handler lib.HttpHandler, logger lib.Logger) ZapMiddleware {
	return ZapMiddleware{
		handler: handler,
		logger:  logger,
	}
}

func (a ZapMiddleware) core() echo.MiddlewareFunc {
	logger := a.logger.DesugarZap.With(zap.String("module", "access"))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)
			if err != nil {
				ctx.Error(err)
			}

			request := ctx.Request()
			fields := []zap.Field{
				zap.Int("status", ctx.Response().Status),
				zap.String("method", request.Method),
				zap.String("path", request.URL.Path),
				zap.String("query", request.URL.RawQuery),
				zap.String("ip", ctx.RealIP()),
				zap.String("user-agent", request.UserAgent()),
				zap.Int64("size", ctx.Response().Size),
				zap.Duration("latency", time.Since(start)),
			}

			if ctx.Response().Status >= 500 {
				logger.Error("request", fields...)
			} else {
				logger.Info("request", fields...)
			}

			return nil
		}
	}
}

func (a ZapMiddleware) Setup() {
	a.logger.Zap.Info("setting up zap middleware")
	a.handler.Engine.Use(a.core())
}
