package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/top-system/light-news/api/cms/service"
	"github.com/top-system/light-news/lib"
	"github.com/top-system/light-news/models/cms"
	"github.com/top-system/light-news/pkg/echox"
)

type CategoryController struct {
	categoryService service.CategoryService
	logger          lib.Logger
}

// NewCategoryController creates new category controller
func NewCategoryController(categoryService service.CategoryService, logger lib.Logger) CategoryController {
	return CategoryController{
		categoryService: categoryService,
		logger:          logger,
	}
}

// Create 新增分类
// @Tags Category
// @Summary 新增分类
// @Produce application/json
// @Security Authorization
// @Param data body cms.CategoryForm true "分类信息"
// @Success 201 {object} echox.Response "Category created successfully"
// @Failure 400 {object} echox.Response "category already exists"
// @Router /category [post]
func (a CategoryController) Create(ctx echo.Context) error {
	form := new(cms.CategoryForm)
	if err := bind(ctx, form); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	category, err := a.categoryService.WithTrx(echox.GetTrx(ctx)).Create(currentUserID(ctx), form)
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.Created(ctx, "Category created successfully", echo.Map{
		"categoryId": category.ID,
		"createdAt":  category.CreatedAt,
	})
}

// Query 分类列表
// @Tags Category
// @Summary 分类列表
// @Produce application/json
// @Success 200 {object} echox.Response{data=[]cms.CategoryVO} "Categories fetched successfully"
// @Router /category [get]
func (a CategoryController) Query(ctx echo.Context) error {
	list, err := a.categoryService.Query()
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, "Categories fetched successfully", list.ToVOList())
}

// Get 分类详情
// @Tags Category
// @Summary 分类详情
// @Produce application/json
// @Param id path string true "分类ID"
// @Success 200 {object} echox.Response{data=cms.CategoryVO} "Category fetched successfully"
// @Failure 400 {object} echox.Response "category not found"
// @Router /category/{id} [get]
func (a CategoryController) Get(ctx echo.Context) error {
	id, err := echox.GetPathID(ctx, "id")
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	category, err := a.categoryService.Get(id)
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, "Category fetched successfully", category.ToVO())
}

// Update 修改分类
// @Tags Category
// @Summary 修改分类
// @Produce application/json
// @Security Authorization
// @Param id path string true "分类ID"
// @Param data body cms.CategoryUpdateForm true "分类信息"
// @Success 200 {object} echox.Response "Category updated successfully"
// @Failure 400 {object} echox.Response "category not found"
// @Router /category/{id} [put]
func (a CategoryController) Update(ctx echo.Context) error {
	id, err := echox.GetPathID(ctx, "id")
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	form := new(cms.CategoryUpdateForm)
	if err := bind(ctx, form); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	category, err := a.categoryService.WithTrx(echox.GetTrx(ctx)).Update(currentUserID(ctx), id, form)
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, "Category updated successfully", echo.Map{
		"categoryId": category.ID,
		"updatedAt":  category.UpdatedAt,
	})
}

// Remove 删除分类
// @Tags Category
// @Summary 删除分类
// @Produce application/json
// @Security Authorization
// @Param id path string true "分类ID"
// @Success 200 {object} echox.Response "Category deleted successfully"
// @Failure 400 {object} echox.Response "category not found"
// @Router /category/{id} [delete]
func (a CategoryController) Remove(ctx echo.Context) error {
	id, err := echox.GetPathID(ctx, "id")
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	category, err := a.categoryService.WithTrx(echox.GetTrx(ctx)).Remove(currentUserID(ctx), id)
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, "Category deleted successfully", echo.Map{
		"categoryId": category.ID,
		"deletedAt":  category.UpdatedAt,
	})
}
