package main

import (
	"github.com/top-system/light-news/cmd"
)

// @title Light News API
// @version 1.0
// @description 新闻、分类与自定义页面 API 文档

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey Authorization
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Example: "Bearer {token}"

func main() {
	cmd.Execute()
}
