package middlewares

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/top-system/light-news/api/cms/service"
	"github.com/top-system/light-news/constants"
	"github.com/top-system/light-news/errors"
	"github.com/top-system/light-news/lib"
	"github.com/top-system/light-news/models/dto"
	"github.com/top-system/light-news/pkg/echox"
)

// AuthMiddleware resolves the bearer token of a request into claims
type AuthMiddleware struct {
	handler     lib.HttpHandler
	logger      lib.Logger
	authService service.AuthService
}

// NewAuthMiddleware creates new auth middleware
func NewAuthMiddleware(handler lib.HttpHandler, logger lib.Logger, authService service.AuthService) AuthMiddleware {
	return AuthMiddleware{
		handler:     handler,
		logger:      logger,
		authService: authService,
	}
}

// bearerToken 解析 Authorization: Bearer <token>
func bearerToken(ctx echo.Context) string {
	auth := ctx.Request().Header.Get(echo.HeaderAuthorization)
	prefix := "Bearer "

	if len(auth) > len(prefix) && strings.EqualFold(auth[:len(prefix)], prefix) {
		return strings.TrimSpace(auth[len(prefix):])
	}

	return ""
}

// authenticate stores the claims on ctx when the request carries a valid token
func (a AuthMiddleware) authenticate(ctx echo.Context) error {
	if _, ok := ctx.Get(constants.CurrentUser).(*dto.JwtClaims); ok {
		return nil
	}

	token := bearerToken(ctx)
	if token == "" {
		return errors.AuthTokenRequired
	}

	claims, err := a.authService.ParseToken(token)
	if err != nil {
		return err
	}

	ctx.Set(constants.CurrentUser, claims)
	return nil
}

func (a AuthMiddleware) core() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			// 公开接口也可携带 token, 无效 token 留给 Required 处理
			_ = a.authenticate(ctx)
			return next(ctx)
		}
	}
}

// Required rejects requests without a valid bearer token
func (a AuthMiddleware) Required() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if err := a.authenticate(ctx); err != nil {
				return echox.FailWithCode(ctx, http.StatusUnauthorized, err)
			}

			return next(ctx)
		}
	}
}

func (a AuthMiddleware) Setup() {
	a.logger.Zap.Info("setting up auth middleware")
	a.handler.Engine.Use(a.core())
}

// CurrentClaims returns the claims stored by AuthMiddleware
func CurrentClaims(ctx echo.Context) (*dto.JwtClaims, bool) {
	claims, ok := ctx.Get(constants.CurrentUser).(*dto.JwtClaims)
	return claims, ok
}
