package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/top-system/light-news/api/cms/service"
	"github.com/top-system/light-news/constants"
	"github.com/top-system/light-news/errors"
	"github.com/top-system/light-news/lib"
	"github.com/top-system/light-news/models/dto"
	"github.com/top-system/light-news/pkg/echox"
)

type AuthController struct {
	userService service.UserService
	authService service.AuthService
	captcha     lib.Captcha
	logger      lib.Logger
}

// NewAuthController creates new auth controller
func NewAuthController(
	userService service.UserService,
	authService service.AuthService,
	captcha lib.Captcha,
	logger lib.Logger,
) AuthController {
	return AuthController{
		userService: userService,
		authService: authService,
		captcha:     captcha,
		logger:      logger,
	}
}

// @tags Auth
// @summary 用户注册
// @produce application/json
// @param data body dto.Register true "Register"
// @success 201 {object} echox.Response "User created successfully"
// @failure 400 {object} echox.Response "bad request"
// @router /auth/register [post]
func (a AuthController) Register(ctx echo.Context) error {
	form := new(dto.Register)
	if err := bind(ctx, form); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	user, err := a.userService.WithTrx(echox.GetTrx(ctx)).Register(form)
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	return echox.Created(ctx, "User created successfully", echo.Map{
		"userId":    user.ID,
		"createdAt": user.CreatedAt,
	})
}

// @tags Auth
// @summary 用户登录
// @produce application/json
// @param data body dto.Login true "Login"
// @success 200 {object} echox.Response{data=dto.LoginResponse} "User logged in successfully"
// @failure 400 {object} echox.Response "invalid credentials"
// @failure 404 {object} echox.Response "user not found"
// @router /auth/login [post]
func (a AuthController) Login(ctx echo.Context) error {
	login := new(dto.Login)
	if err := bind(ctx, login); err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	if !a.captcha.Check(login.CaptchaID, login.CaptchaCode) {
		return echox.Response{Code: http.StatusBadRequest, Message: errors.CaptchaAnswerCodeNoMatch}.JSON(ctx)
	}

	user, err := a.userService.WithTrx(echox.GetTrx(ctx)).Verify(login.Username, login.Password)
	if err != nil {
		return echox.Response{Code: http.StatusBadRequest, Message: err}.JSON(ctx)
	}

	loginResp, err := a.authService.GenerateToken(user)
	if err != nil {
		return echox.Fail(ctx, err)
	}

	return echox.OK(ctx, "User logged in successfully", loginResp)
}

// @tags Auth
// @summary 用户登出
// @produce application/json
// @security Authorization
// @success 200 {object} echox.Response "User logged out successfully"
// @failure 401 {object} echox.Response "unauthorized"
// @router /auth/logout [post]
func (a AuthController) Logout(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.CurrentUser).(*dto.JwtClaims)
	if !ok {
		return echox.Response{Code: http.StatusUnauthorized, Message: errors.AuthTokenRequired}.JSON(ctx)
	}

	if err := a.authService.DestroyToken(claims); err != nil {
		return echox.Response{Code: http.StatusInternalServerError, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, "User logged out successfully", nil)
}

// @tags Auth
// @summary 获取验证码
// @produce application/json
// @success 200 {object} echox.Response "ok"
// @failure 500 {object} echox.Response "internal error"
// @router /auth/captcha [get]
func (a AuthController) Captcha(ctx echo.Context) error {
	id, b64s, _, err := a.captcha.Generate()
	if err != nil {
		return echox.Response{Code: http.StatusInternalServerError, Message: err}.JSON(ctx)
	}

	return echox.OK(ctx, "Captcha generated successfully", echo.Map{
		"captchaId":     id,
		"captchaBase64": b64s,
		"enabled":       a.captcha.Enabled,
	})
}
