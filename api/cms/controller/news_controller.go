package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/top-system/light-news/api/cms/service"
	"github.com/top-system/light-news/lib"
	"github.com/top-system/light-news/models/cms"
	"github.com/top-system/light-news/pkg/echox"
)

type NewsController struct {
	newsService service.NewsService
	logger      lib.Logger
}

// NewNewsController creates new news controller
func NewNewsController(newsService service.NewsService, logger lib.Logger) NewsController {
	return NewsController{
		newsService: newsService,
		logger:      logger,
	}
}

// Create 发布新闻
// @Tags News
// @Summary 发布新闻
// @Produce application/json
// @Security Authorization
// @Param data body cms.NewsForm true "新闻内容"
// @Success 201 {object} echox.Response "News created successfully"
// @Failure 400 {object} echox.Response "category not found"
// @Router /news [post]
func (a NewsController) Create(ctx echo.Context) error {
	form := new(cms.NewsForm)
	if err := bind(ctx, form); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	news, err := a.newsService.WithTrx(echox.GetTrx(ctx)).Create(currentUserID(ctx), form)
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}
	echox.AfterCommit(ctx, func() { a.newsService.PublishCreated(news) })

	return echox.Created(ctx, "News created successfully", echo.Map{
		"newsId":    news.ID,
		"createdAt": news.CreatedAt,
	})
}

// Query 新闻列表
// @Tags News
// @Summary 新闻列表
// @Produce application/json
// @Success 200 {object} echox.Response{data=[]cms.NewsVO} "News fetched successfully"
// @Router /news [get]
func (a NewsController) Query(ctx echo.Context) error {
	list, err := a.newsService.Query()
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, "News fetched successfully", list.ToVOList())
}

// Get 新闻详情, 包含作者、分类与评论
// @Tags News
// @Summary 新闻详情
// @Produce application/json
// @Param id path string true "新闻ID"
// @Success 200 {object} echox.Response{data=cms.NewsVO} "News fetched successfully"
// @Failure 400 {object} echox.Response "news not found"
// @Router /news/{id} [get]
func (a NewsController) Get(ctx echo.Context) error {
	id, err := echox.GetPathID(ctx, "id")
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	news, err := a.newsService.Get(id)
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, "News fetched successfully", news.ToVO())
}

// Update 修改新闻
// @Tags News
// @Summary 修改新闻
// @Produce application/json
// @Security Authorization
// @Param id path string true "新闻ID"
// @Param data body cms.NewsUpdateForm true "新闻内容"
// @Success 200 {object} echox.Response "News updated successfully"
// @Failure 400 {object} echox.Response "news not found"
// @Router /news/{id} [put]
func (a NewsController) Update(ctx echo.Context) error {
	id, err := echox.GetPathID(ctx, "id")
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	form := new(cms.NewsUpdateForm)
	if err := bind(ctx, form); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	news, err := a.newsService.WithTrx(echox.GetTrx(ctx)).Update(currentUserID(ctx), id, form)
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, "News updated successfully", echo.Map{
		"newsId":    news.ID,
		"updatedAt": news.UpdatedAt,
	})
}

// Remove 删除新闻及其评论
// @Tags News
// @Summary 删除新闻
// @Produce application/json
// @Security Authorization
// @Param id path string true "新闻ID"
// @Success 200 {object} echox.Response "News deleted successfully"
// @Failure 400 {object} echox.Response "news not found"
// @Router /news/{id} [delete]
func (a NewsController) Remove(ctx echo.Context) error {
	id, err := echox.GetPathID(ctx, "id")
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	news, err := a.newsService.WithTrx(echox.GetTrx(ctx)).Remove(currentUserID(ctx), id)
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, "News deleted successfully", echo.Map{
		"newsId":    news.ID,
		"deletedAt": news.UpdatedAt,
	})
}

// CreateComment 发表评论
// @Tags News
// @Summary 发表评论
// @Produce application/json
// @Param newsId path string true "新闻ID"
// @Param data body cms.CommentForm true "评论内容"
// @Success 201 {object} echox.Response "Comment created successfully"
// @Failure 400 {object} echox.Response "news not found"
// @Router /news/{newsId}/comments [post]
func (a NewsController) CreateComment(ctx echo.Context) error {
	newsID, err := echox.GetPathID(ctx, "newsId")
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	form := new(cms.CommentForm)
	if err := bind(ctx, form); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	comment, err := a.newsService.WithTrx(echox.GetTrx(ctx)).CreateComment(newsID, form)
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}
	echox.AfterCommit(ctx, func() { a.newsService.PublishComment(comment) })

	return echox.Created(ctx, "Comment created successfully", echo.Map{
		"commentId": comment.ID,
		"createdAt": comment.CreatedAt,
	})
}
