package cms

import (
	"go.uber.org/fx"

	"github.com/top-system/light-news/api/cms/controller"
	"github.com/top-system/light-news/api/cms/repository"
	"github.com/top-system/light-news/api/cms/route"
	"github.com/top-system/light-news/api/cms/service"
)

var Module = fx.Options(
	repository.Module,
	service.Module,
	controller.Module,
	route.Module,
)
