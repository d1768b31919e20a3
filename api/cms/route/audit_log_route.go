package route

import (
	"github.com/top-system/light-news/api/cms/controller"
	"github.com/top-system/light-news/api/middlewares"
	"github.com/top-system/light-news/lib"
)

type AuditLogRoutes struct {
	logger             lib.Logger
	handler            lib.HttpHandler
	auditLogController controller.AuditLogController
	authMiddleware     middlewares.AuthMiddleware
}

// NewAuditLogRoutes creates new audit log routes
func NewAuditLogRoutes(
	logger lib.Logger,
	handler lib.HttpHandler,
	auditLogController controller.AuditLogController,
	authMiddleware middlewares.AuthMiddleware,
) AuditLogRoutes {
	return AuditLogRoutes{
		logger:             logger,
		handler:            handler,
		auditLogController: auditLogController,
		authMiddleware:     authMiddleware,
	}
}

// Setup audit log routes
func (a AuditLogRoutes) Setup() {
	a.handler.Router.GET("/logs", a.auditLogController.Query, a.authMiddleware.Required())
}
