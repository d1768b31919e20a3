package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/top-system/light-news/api/cms/service"
	"github.com/top-system/light-news/lib"
	"github.com/top-system/light-news/models/cms"
	"github.com/top-system/light-news/pkg/echox"
)

type PageController struct {
	pageService service.PageService
	logger      lib.Logger
}

// NewPageController creates new page controller
func NewPageController(pageService service.PageService, logger lib.Logger) PageController {
	return PageController{
		pageService: pageService,
		logger:      logger,
	}
}

// @Tags Page
// @Summary 新增页面
// @Produce application/json
// @Security Authorization
// @Param data body cms.PageForm true "页面信息"
// @Success 201 {object} echox.Response "Page created successfully"
// @Failure 400 {object} echox.Response "page already exists"
// @Router /pages [post]
func (a PageController) Create(ctx echo.Context) error {
	form := new(cms.PageForm)
	if err := bind(ctx, form); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	page, err := a.pageService.WithTrx(echox.GetTrx(ctx)).Create(currentUserID(ctx), form)
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.Created(ctx, "Page created successfully", echo.Map{
		"pageId":    page.ID,
		"createdAt": page.CreatedAt,
	})
}

// @Tags Page
// @Summary 页面列表
// @Produce application/json
// @Success 200 {object} echox.Response{data=[]cms.PageVO} "Pages fetched successfully"
// @Router /pages [get]
func (a PageController) Query(ctx echo.Context) error {
	list, err := a.pageService.Query()
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, "Pages fetched successfully", list.ToVOList())
}

// @Tags Page
// @Summary 页面详情
// @Produce application/json
// @Param id path string true "页面ID"
// @Success 200 {object} echox.Response{data=cms.PageVO} "Page fetched successfully"
// @Failure 400 {object} echox.Response "page not found"
// @Router /pages/{id} [get]
func (a PageController) Get(ctx echo.Context) error {
	id, err := echox.GetPathID(ctx, "id")
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	page, err := a.pageService.Get(id)
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, "Page fetched successfully", page.ToVO())
}

// @Tags Page
// @Summary 修改页面
// @Produce application/json
// @Security Authorization
// @Param id path string true "页面ID"
// @Param data body cms.PageUpdateForm true "页面信息"
// @Success 200 {object} echox.Response "Page updated successfully"
// @Failure 400 {object} echox.Response "page not found"
// @Router /pages/{id} [put]
func (a PageController) Update(ctx echo.Context) error {
	id, err := echox.GetPathID(ctx, "id")
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	form := new(cms.PageUpdateForm)
	if err := bind(ctx, form); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	page, err := a.pageService.WithTrx(echox.GetTrx(ctx)).Update(currentUserID(ctx), id, form)
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, "Page updated successfully", echo.Map{
		"pageId":    page.ID,
		"updatedAt": page.UpdatedAt,
	})
}

// @Tags Page
// @Summary 删除页面
// @Produce application/json
// @Security Authorization
// @Param id path string true "页面ID"
// @Success 200 {object} echox.Response "Page deleted successfully"
// @Failure 400 {object} echox.Response "page not found"
// @Router /pages/{id} [delete]
func (a PageController) Remove(ctx echo.Context) error {
	id, err := echox.GetPathID(ctx, "id")
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	page, err := a.pageService.WithTrx(echox.GetTrx(ctx)).Remove(currentUserID(ctx), id)
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, "Page deleted successfully", echo.Map{
		"pageId":    page.ID,
		"deletedAt": page.UpdatedAt,
	})
}
