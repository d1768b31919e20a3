package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/top-system/light-news/api/cms/service"
	"github.com/top-system/light-news/lib"
	"github.com/top-system/light-news/models/cms"
	"github.com/top-system/light-news/pkg/echox"
)

type AuditLogController struct {
	auditLogService service.AuditLogService
	logger          lib.Logger
}

// NewAuditLogController creates new audit log controller
func NewAuditLogController(auditLogService service.AuditLogService, logger lib.Logger) AuditLogController {
	return AuditLogController{
		auditLogService: auditLogService,
		logger:          logger,
	}
}

// Query 当前用户的操作日志
// @Tags AuditLog
// @Summary 操作日志分页列表
// @Produce application/json
// @Security Authorization
// @Param module query string false "模块"
// @Param pageNum query int false "当前页"
// @Param pageSize query int false "每页数量"
// @Success 200 {object} echox.Response{data=[]cms.AuditLogVO} "ok"
// @Router /logs [get]
func (a AuditLogController) Query(ctx echo.Context) error {
	param := new(cms.AuditLogQueryParam)
	if err := bind(ctx, param); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}
	param.UserID = currentUserID(ctx)

	qr, err := a.auditLogService.Query(param)
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OKWithPage(ctx, qr.List.ToVOList(), qr.Pagination.Total, qr.Pagination.PageNum, qr.Pagination.PageSize)
}
