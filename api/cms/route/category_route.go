package route

import (
	"github.com/top-system/light-news/api/cms/controller"
	"github.com/top-system/light-news/api/middlewares"
	"github.com/top-system/light-news/lib"
)

type CategoryRoutes struct {
	logger             lib.Logger
	handler            lib.HttpHandler
	categoryController controller.CategoryController
	authMiddleware     middlewares.AuthMiddleware
}

// NewCategoryRoutes creates new category routes
func NewCategoryRoutes(
	logger lib.Logger,
	handler lib.HttpHandler,
	categoryController controller.CategoryController,
	authMiddleware middlewares.AuthMiddleware,
) CategoryRoutes {
	return CategoryRoutes{
		logger:             logger,
		handler:            handler,
		categoryController: categoryController,
		authMiddleware:     authMiddleware,
	}
}

// Setup category routes
func (a CategoryRoutes) Setup() {
	api := a.handler.Router.Group("/category")
	{
		api.GET("", a.categoryController.Query)
		api.GET("/:id", a.categoryController.Get)
		api.POST("", a.categoryController.Create, a.authMiddleware.Required())
		api.PUT("/:id", a.categoryController.Update, a.authMiddleware.Required())
		api.DELETE("/:id", a.categoryController.Remove, a.authMiddleware.Required())
	}
}
