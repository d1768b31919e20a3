package api

import (
	"go.uber.org/fx"

	"github.com/top-system/light-news/api/cms"
	cmsRoute "github.com/top-system/light-news/api/cms/route"
	"github.com/top-system/light-news/api/middlewares"
)

// Module exports all api modules
// 添加新模块时，只需要在这里添加即可
var Module = fx.Options(
	middlewares.Module,
	cms.Module,
	fx.Provide(NewRoutes),
)

// Routes 聚合所有模块的路由
type Routes struct {
	CMS cmsRoute.Routes
}

// NewRoutes creates aggregated routes
func NewRoutes(cms cmsRoute.Routes) Routes {
	return Routes{
		CMS: cms,
	}
}

// Setup sets up all routes
func (r Routes) Setup() {
	r.CMS.Setup()
}
