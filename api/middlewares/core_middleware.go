package middlewares

import (
	"fmt"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/top-system/light-news/constants"
	"github.com/top-system/light-news/lib"
	"github.com/top-system/light-news/pkg/echox"
)

// core middleware is a functional extension to "echo",
// including database transactions and panic recovery
type CoreMiddleware struct {
	handler lib.HttpHandler
	logger  lib.Logger
	db      lib.Database
}

// NewCoreMiddleware creates new database transactions middleware
func NewCoreMiddleware(handler lib.HttpHandler, logger lib.Logger, db lib.Database) CoreMiddleware {
	return CoreMiddleware{
		handler: handler,
		logger:  logger,
		db:      db,
	}
}

func (a CoreMiddleware) core() echo.MiddlewareFunc {
	logger := a.logger.DesugarZap.With(zap.String("module", "core-mw"))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) (err error) {
			// 只读请求与 WebSocket 不开启事务
			// SQLite 单连接, 事务会阻塞异步写入的审计日志
			method := ctx.Request().Method
			withTrx := !lib.IsSQLite() && ctx.Path() != "/ws" &&
				method != http.MethodGet && method != http.MethodHead && method != http.MethodOptions

			var txHandle = a.db.ORM
			if withTrx {
				txHandle = a.db.ORM.Begin()
				ctx.Set(constants.DBTransaction, txHandle)
			}

			defer func() {
				if r := recover(); r != nil {
					perr, ok := r.(error)
					if !ok {
						perr = fmt.Errorf("%v", r)
					}

					stack := make([]byte, 4<<10)
					length := runtime.Stack(stack, false)
					logger.Error(fmt.Sprintf("[PANIC RECOVER] %v %s", perr, stack[:length]))

					if withTrx {
						txHandle.Rollback()
					}
					ctx.Error(perr)
					err = nil
				}
			}()

			if err := next(ctx); err != nil {
				ctx.Error(err)
			}

			if !withTrx {
				return nil
			}

			if code := ctx.Response().Status; code >= http.StatusBadRequest {
				logger.Debug(fmt.Sprintf("rolling back transaction due to status code: %d", code))
				txHandle.Rollback()
			} else if err := txHandle.Commit().Error; err != nil {
				logger.Error(fmt.Sprintf("trx commit error: %v", err))
			} else {
				echox.RunAfterCommit(ctx)
			}

			return nil
		}
	}
}

func (a CoreMiddleware) Setup() {
	a.logger.Zap.Info("setting up core middleware")
	a.handler.Engine.Use(a.core())
}
