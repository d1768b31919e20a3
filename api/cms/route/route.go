package route

import "go.uber.org/fx"

// Module exports dependency to container
var Module = fx.Options(
	fx.Provide(NewSwaggerRoutes),
	fx.Provide(NewAuthRoutes),
	fx.Provide(NewCategoryRoutes),
	fx.Provide(NewNewsRoutes),
	fx.Provide(NewPageRoutes),
	fx.Provide(NewAuditLogRoutes),
	fx.Provide(NewFeedRoutes),
	fx.Provide(NewRoutes),
)

// Routes contains multiple routes
type Routes []Route

// Route interface
type Route interface {
	Setup()
}

// NewRoutes sets up routes
func NewRoutes(
	swaggerRoutes SwaggerRoutes,
	authRoutes AuthRoutes,
	categoryRoutes CategoryRoutes,
	newsRoutes NewsRoutes,
	pageRoutes PageRoutes,
	auditLogRoutes AuditLogRoutes,
	feedRoutes FeedRoutes,
) Routes {
	return Routes{
		swaggerRoutes,
		authRoutes,
		categoryRoutes,
		newsRoutes,
		pageRoutes,
		auditLogRoutes,
		feedRoutes,
	}
}

// Setup all the route
func (a Routes) Setup() {
	for _, route := range a {
		route.Setup()
	}
}
