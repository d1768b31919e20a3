package route

import (
	"github.com/top-system/light-news/api/cms/controller"
	"github.com/top-system/light-news/api/middlewares"
	"github.com/top-system/light-news/lib"
)

type NewsRoutes struct {
	logger         lib.Logger
	handler        lib.HttpHandler
	newsController controller.NewsController
	authMiddleware middlewares.AuthMiddleware
}

// NewNewsRoutes creates new news routes
func NewNewsRoutes(
	logger lib.Logger,
	handler lib.HttpHandler,
	newsController controller.NewsController,
	authMiddleware middlewares.AuthMiddleware,
) NewsRoutes {
	return NewsRoutes{
		logger:         logger,
		handler:        handler,
		newsController: newsController,
		authMiddleware: authMiddleware,
	}
}

// Setup news routes
func (a NewsRoutes) Setup() {
	api := a.handler.Router.Group("/news")
	{
		api.GET("", a.newsController.Query)
		api.GET("/:id", a.newsController.Get)
		api.POST("", a.newsController.Create, a.authMiddleware.Required())
		api.PUT("/:id", a.newsController.Update, a.authMiddleware.Required())
		api.DELETE("/:id", a.newsController.Remove, a.authMiddleware.Required())

		// 评论无需登录
		api.POST("/:newsId/comments", a.newsController.CreateComment)
	}
}
