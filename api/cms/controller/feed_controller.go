package controller

import (
	"github.com/labstack/echo/v4"

	"github.com/top-system/light-news/lib"
	"github.com/top-system/light-news/pkg/websocket"
)

// FeedController 实时推送新闻与评论事件
type FeedController struct {
	hub    *websocket.Hub
	logger lib.Logger
}

// NewFeedController creates new feed controller
func NewFeedController(hub *websocket.Hub, logger lib.Logger) FeedController {
	return FeedController{
		hub:    hub,
		logger: logger,
	}
}

// Connect 升级为 WebSocket 连接
// @Tags Feed
// @Summary 订阅新闻与评论事件
// @Router /ws [get]
func (a FeedController) Connect(ctx echo.Context) error {
	a.hub.ServeHTTP(ctx.Response(), ctx.Request())
	return nil
}
