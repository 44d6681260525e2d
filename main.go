/*
 * @Description:
 * @Author: 日落噪音
 * @Date: 2026-07-12 09:00:03
 * @LastEditTime: 2026-08-25 16:45:10
 * @LastEditors: 日落噪音
 */
package main

import (
	"embed"
	"log"

	"github.com/sunsetnoise/soapcard-app/cmd/server"
)

//go:embed all:assets
var content embed.FS

// @title           soapcard API
// @version         1.0
// @description     韩剧片段与台词卡片站的接口文档
// @host      localhost:8080
// @BasePath  /api
func main() {
	app, cleanup, err := server.NewApp(content)
	if err != nil {
		log.Fatalf("应用初始化失败: %v", err)
	}

	defer cleanup()

	if err := app.Run(); err != nil {
		log.Fatalf("应用运行失败: %v", err)
	}
}
