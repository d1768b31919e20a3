package route

import (
	"github.com/top-system/light-news/api/cms/controller"
	"github.com/top-system/light-news/api/middlewares"
	"github.com/top-system/light-news/lib"
)

type AuthRoutes struct {
	logger         lib.Logger
	handler        lib.HttpHandler
	authController controller.AuthController
	authMiddleware middlewares.AuthMiddleware
}

// NewAuthRoutes creates new auth routes
func NewAuthRoutes(
	logger lib.Logger,
	handler lib.HttpHandler,
	authController controller.AuthController,
	authMiddleware middlewares.AuthMiddleware,
) AuthRoutes {
	return AuthRoutes{
		logger:         logger,
		handler:        handler,
		authController: authController,
		authMiddleware: authMiddleware,
	}
}

// Setup auth routes
func (a AuthRoutes) Setup() {
	auth := a.handler.Router.Group("/auth")
	{
		auth.POST("/register", a.authController.Register)
		auth.POST("/login", a.authController.Login)
		auth.POST("/logout", a.authController.Logout, a.authMiddleware.Required())
		auth.GET("/captcha", a.authController.Captcha)
	}
}
