package route

import (
	"github.com/top-system/light-news/api/cms/controller"
	"github.com/top-system/light-news/api/middlewares"
	"github.com/top-system/light-news/lib"
)

type PageRoutes struct {
	logger         lib.Logger
	handler        lib.HttpHandler
	pageController controller.PageController
	authMiddleware middlewares.AuthMiddleware
}

// NewPageRoutes creates new page routes
func NewPageRoutes(
	logger lib.Logger,
	handler lib.HttpHandler,
	pageController controller.PageController,
	authMiddleware middlewares.AuthMiddleware,
) PageRoutes {
	return PageRoutes{
		logger:         logger,
		handler:        handler,
		pageController: pageController,
		authMiddleware: authMiddleware,
	}
}

// Setup page routes
func (a PageRoutes) Setup() {
	api := a.handler.Router.Group("/pages")
	{
		api.GET("", a.pageController.Query)
		api.GET("/:id", a.pageController.Get)
		api.POST("", a.pageController.Create, a.authMiddleware.Required())
		api.PUT("/:id", a.pageController.Update, a.authMiddleware.Required())
		api.DELETE("/:id", a.pageController.Remove, a.authMiddleware.Required())
	}
}
