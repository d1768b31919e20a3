package echox

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/top-system/light-news/constants"
	"github.com/top-system/light-news/errors"
)

// Response in order to unify the returned response structure
type Response struct {
	Code    int         `json:"statusCode"`
	Pretty  bool        `json:"-"`
	Message interface{} `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Page    *PageInfo   `json:"page,omitempty"`
}

// PageInfo 分页信息
type PageInfo struct {
	Total    int64 `json:"total"`
	PageNum  int   `json:"pageNum"`
	PageSize int   `json:"pageSize"`
}

// sends a JSON response with status code.
// An error message that is registered in the errors table overrides Code.
func (a Response) JSON(ctx echo.Context) error {
	if a.Code == 0 {
		a.Code = http.StatusOK
	}

	if err, ok := a.Message.(error); ok {
		if status := errors.HTTPStatusCode(err); status != 0 {
			a.Code = status
		}
		a.Message = err.Error()
	}

	if a.Message == "" || a.Message == nil {
		a.Message = http.StatusText(a.Code)
	}

	if a.Pretty {
		return ctx.JSONPretty(a.Code, a, "\t")
	}

	return ctx.JSON(a.Code, a)
}

// ============ 辅助函数 ============

// OK 返回成功响应
func OK(ctx echo.Context, message string, data interface{}) error {
	return Response{Code: http.StatusOK, Message: message, Data: data}.JSON(ctx)
}

// Created 返回 201 响应
func Created(ctx echo.Context, message string, data interface{}) error {
	return Response{Code: http.StatusCreated, Message: message, Data: data}.JSON(ctx)
}

// OKWithPage 返回带分页的成功响应
func OKWithPage(ctx echo.Context, data interface{}, total int64, pageNum, pageSize int) error {
	return Response{
		Code: http.StatusOK,
		Data: data,
		Page: &PageInfo{Total: total, PageNum: pageNum, PageSize: pageSize},
	}.JSON(ctx)
}

// Fail 返回失败响应, 未登记的错误按 500 处理
func Fail(ctx echo.Context, err error) error {
	return Response{Code: http.StatusInternalServerError, Message: err}.JSON(ctx)
}

// FailWithCode 返回带状态码的失败响应
func FailWithCode(ctx echo.Context, code int, err error) error {
	return Response{Code: code, Message: err}.JSON(ctx)
}

// GetTrx 从上下文获取数据库事务
func GetTrx(ctx echo.Context) *gorm.DB {
	if trx, ok := ctx.Get(constants.DBTransaction).(*gorm.DB); ok {
		return trx
	}
	return nil
}

// AfterCommit defers fn until the request transaction commits.
// Without a transaction fn runs immediately.
func AfterCommit(ctx echo.Context, fn func()) {
	if GetTrx(ctx) == nil {
		fn()
		return
	}

	hooks, _ := ctx.Get(constants.AfterCommitHooks).([]func())
	ctx.Set(constants.AfterCommitHooks, append(hooks, fn))
}

// RunAfterCommit 执行并清空已登记的提交回调
func RunAfterCommit(ctx echo.Context) {
	hooks, _ := ctx.Get(constants.AfterCommitHooks).([]func())
	ctx.Set(constants.AfterCommitHooks, nil)
	for _, fn := range hooks {
		fn()
	}
}

// GetPathID 从路径参数获取 UUID
func GetPathID(ctx echo.Context, param string) (string, error) {
	id, err := uuid.Parse(ctx.Param(param))
	if err != nil {
		return "", errors.RequestIDInvalid
	}
	return id.String(), nil
}
