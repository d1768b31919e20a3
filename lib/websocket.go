package lib

import (
	"context"

	"go.uber.org/fx"

	"github.com/top-system/light-news/pkg/websocket"
)

// NewFeed 创建实时推送中心, 应用停止时断开所有连接
func NewFeed(lc fx.Lifecycle, logger Logger) *websocket.Hub {
	hub := websocket.New(logger.DesugarZap)

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			hub.Close()
			return nil
		},
	})

	return hub
}
