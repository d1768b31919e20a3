package middlewares

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mssola/useragent"

	"github.com/top-system/light-news/api/cms/service"
	"github.com/top-system/light-news/lib"
	"github.com/top-system/light-news/models/cms"
)

const maxAuditBodySize = 4096

// 需要审计的模块, 按路由第一段匹配
var auditModules = map[string]string{
	"auth":     "auth",
	"category": "category",
	"news":     "news",
	"pages":    "pages",
}

// 写入日志前需要脱敏的请求字段
var sensitiveFields = []string{"password", "captchaCode"}

// AuditMiddleware 记录写操作审计日志
type AuditMiddleware struct {
	handler         lib.HttpHandler
	logger          lib.Logger
	auditLogService service.AuditLogService
}

// NewAuditMiddleware creates new audit middleware
func NewAuditMiddleware(
	handler lib.HttpHandler,
	logger lib.Logger,
	auditLogService service.AuditLogService,
) AuditMiddleware {
	return AuditMiddleware{
		handler:         handler,
		logger:          logger,
		auditLogService: auditLogService,
	}
}

func (m AuditMiddleware) Setup() {
	if !m.auditLogService.Enabled() {
		m.logger.Zap.Info("audit log is disabled")
		return
	}

	m.handler.Engine.Use(m.Handle())
}

// Handle 记录 POST, PUT, DELETE 请求
func (m AuditMiddleware) Handle() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			method := c.Request().Method
			if method != http.MethodPost && method != http.MethodPut && method != http.MethodDelete {
				return next(c)
			}

			module, ok := auditModules[routeModule(c.Path())]
			if !ok {
				return next(c)
			}

			startTime := time.Now()

			var requestBody []byte
			if c.Request().Body != nil {
				requestBody, _ = io.ReadAll(io.LimitReader(c.Request().Body, maxAuditBodySize))
				c.Request().Body = io.NopCloser(io.MultiReader(bytes.NewReader(requestBody), c.Request().Body))
			}

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			var userID *string
			if claims, ok := CurrentClaims(c); ok {
				id := claims.UserID()
				userID = &id
			}

			ua := useragent.New(c.Request().UserAgent())
			browserName, browserVersion := ua.Browser()

			m.auditLogService.CreateAsync(&cms.AuditLog{
				UserID:         userID,
				Module:         module,
				Method:         method,
				Path:           c.Request().URL.Path,
				Route:          c.Path(),
				IP:             c.RealIP(),
				Browser:        browserName,
				BrowserVersion: browserVersion,
				OS:             ua.OS(),
				StatusCode:     c.Response().Status,
				ExecutionTime:  time.Since(startTime).Milliseconds(),
				RequestBody:    redactBody(requestBody),
			})

			return nil
		}
	}
}

// routeModule 返回路由模板的第一段, 例如 /news/:newsId/comments -> news
func routeModule(route string) string {
	route = strings.TrimPrefix(route, "/")
	if i := strings.IndexByte(route, '/'); i >= 0 {
		return route[:i]
	}
	return route
}

// redactBody masks sensitive fields of a JSON object body
func redactBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(body, &fields); err != nil {
		// 非 JSON 对象或被截断的请求体不落库, 避免泄露敏感字段
		return ""
	}

	for _, key := range sensitiveFields {
		if _, ok := fields[key]; ok {
			fields[key] = "******"
		}
	}

	redacted, err := json.Marshal(fields)
	if err != nil {
		return ""
	}
	return string(redacted)
}
