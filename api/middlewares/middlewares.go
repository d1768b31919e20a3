package middlewares

import "go.uber.org/fx"

// Module Middleware exported
var Module = fx.Options(
	fx.Provide(NewCoreMiddleware),
	fx.Provide(NewCorsMiddleware),
	fx.Provide(NewZapMiddleware),
	fx.Provide(NewAuthMiddleware),
	fx.Provide(NewAuditMiddleware),
	fx.Provide(NewRateLimitMiddleware),
	fx.Provide(NewMiddlewares),
)

// IMiddleware middleware interface
type IMiddleware interface {
	Setup()
}

// Middlewares contains multiple middleware
type Middlewares []IMiddleware

// NewMiddlewares creates new middlewares
// Register the middleware that should be applied directly (globally)
func NewMiddlewares(
	coreMiddleware CoreMiddleware,
	corsMiddleware CorsMiddleware,
	zapMiddleware ZapMiddleware,
	authMiddleware AuthMiddleware,
	auditMiddleware AuditMiddleware,
	rateLimitMiddleware RateLimitMiddleware,
) Middlewares {
	return Middlewares{
		zapMiddleware,
		rateLimitMiddleware,
		corsMiddleware,
		coreMiddleware,
		authMiddleware,
		auditMiddleware,
	}
}

// Setup sets up middlewares
func (a Middlewares) Setup() {
	for _, middleware := range a {
		middleware.Setup()
	}
}
