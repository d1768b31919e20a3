package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4/middleware"
	"github.com/samber/lo"

	"github.com/top-system/light-news/lib"
)

// CorsMiddleware middleware for cors
type CorsMiddleware struct {
	handler lib.HttpHandler
	logger  lib.Logger
	config  lib.Config
}

// NewCorsMiddleware creates new cors middleware
func NewCorsMiddleware(handler lib.HttpHandler, logger lib.Logger, config lib.Config) CorsMiddleware {
	return CorsMiddleware{
		handler: handler,
		logger:  logger,
		config:  config,
	}
}

func (a CorsMiddleware) Setup() {
	allowOrigins := a.config.Http.AllowOrigins

	a.handler.Engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOriginFunc: func(origin string) (bool, error) {
			// 未配置白名单时允许所有来源
			if len(allowOrigins) == 0 {
				return true, nil
			}
			return lo.Contains(allowOrigins, origin), nil
		},
		AllowCredentials: true,
		AllowHeaders: []string{
			"Authorization", "Content-Type", "Accept", "Origin",
			"X-Requested-With", "X-Request-ID",
		},
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodDelete, http.MethodOptions, http.MethodPatch,
		},
	}))
}
