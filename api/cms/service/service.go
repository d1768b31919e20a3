package service

import "go.uber.org/fx"

// Module exports services present
var Module = fx.Options(
	fx.Provide(NewAuthService),
	fx.Provide(NewUserService),
	fx.Provide(NewCategoryService),
	fx.Provide(NewNewsService),
	fx.Provide(NewPageService),
	fx.Provide(NewAuditLogService),
)
