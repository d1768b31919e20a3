package route

import (
	"github.com/top-system/light-news/api/cms/controller"
	"github.com/top-system/light-news/lib"
)

// FeedRoutes 实时推送路由
type FeedRoutes struct {
	logger         lib.Logger
	handler        lib.HttpHandler
	feedController controller.FeedController
}

// NewFeedRoutes creates new feed routes
func NewFeedRoutes(
	logger lib.Logger,
	handler lib.HttpHandler,
	feedController controller.FeedController,
) FeedRoutes {
	return FeedRoutes{
		logger:         logger,
		handler:        handler,
		feedController: feedController,
	}
}

// Setup feed routes
func (a FeedRoutes) Setup() {
	a.handler.Engine.GET("/ws", a.feedController.Connect)
}
