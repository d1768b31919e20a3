package controller

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/top-system/light-news/constants"
	"github.com/top-system/light-news/models/dto"
)

// Module exported for initializing application
var Module = fx.Options(
	fx.Provide(NewAuthController),
	fx.Provide(NewCategoryController),
	fx.Provide(NewNewsController),
	fx.Provide(NewPageController),
	fx.Provide(NewAuditLogController),
	fx.Provide(NewFeedController),
)

// bind 绑定并校验请求参数
func bind(ctx echo.Context, form interface{}) error {
	if err := ctx.Bind(form); err != nil {
		return err
	}
	return ctx.Validate(form)
}

// currentUserID 当前登录用户 ID, 未登录时为空
func currentUserID(ctx echo.Context) string {
	if claims, ok := ctx.Get(constants.CurrentUser).(*dto.JwtClaims); ok {
		return claims.UserID()
	}
	return ""
}
