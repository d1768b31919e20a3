package lib

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/top-system/light-news/errors"
)

// HttpHandler echo engine plus the group every api route is mounted on
type HttpHandler struct {
	Engine *echo.Echo
	Router *echo.Group
}

// NewHttpHandler creates a new echo engine
func NewHttpHandler(logger Logger) HttpHandler {
	engine := echo.New()
	engine.HideBanner = true
	engine.HidePort = true
	engine.Validator = NewValidator()
	engine.HTTPErrorHandler = httpErrorHandler(logger)

	return HttpHandler{
		Engine: engine,
		Router: engine.Group(""),
	}
}

// Validator adapts go-playground/validator to echo, reporting json field names
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: validate}
}

func (a *Validator) Validate(i interface{}) error {
	err := a.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		switch fe.Tag() {
		case "required":
			messages = append(messages, fe.Field()+" should not be empty")
		case "uuid":
			messages = append(messages, fe.Field()+" must be a UUID")
		case "max":
			messages = append(messages, fe.Field()+" must be at most "+fe.Param()+" characters")
		case "min":
			messages = append(messages, fe.Field()+" must be at least "+fe.Param()+" characters")
		default:
			messages = append(messages, fe.Field()+" is invalid")
		}
	}

	return errors.New(strings.Join(messages, "; "))
}

type errorBody struct {
	Code    int    `json:"statusCode"`
	Message string `json:"message"`
}

// httpErrorHandler renders errors that escape the handlers (404 routes, 405, panics)
// with the same envelope as regular responses.
func httpErrorHandler(logger Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := err.Error()

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		} else if status := errors.HTTPStatusCode(err); status != 0 {
			code = status
		}

		if code >= http.StatusInternalServerError {
			logger.Zap.Errorf("%s %s: %v", ctx.Request().Method, ctx.Request().URL.Path, err)
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(code)
		} else {
			err = ctx.JSON(code, errorBody{Code: code, Message: message})
		}
		if err != nil {
			logger.Zap.Errorf("failed to write error response: %v", err)
		}
	}
}
