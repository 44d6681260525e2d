/*
 * @Description: 前端页面路由，服务内嵌的静态页面并执行会话重定向守卫
 * @Author: 日落噪音
 * @Date: 2026-07-11 11:05:40
 * @LastEditTime: 2026-08-24 10:12:26
 * @LastEditors: 日落噪音
 */
package router

import (
	"io/fs"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// servePage 从内嵌文件系统读取单个页面并原样输出
func servePage(fsys fs.FS, name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			log.Printf("[FrontendRouter] 读取内嵌页面 '%s' 失败: %v", name, err)
			c.String(http.StatusInternalServerError, "page not available")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	}
}

// SetupFrontendRoutes 注册页面路由。
// 页面守卫与 API 守卫分开：页面未登录时重定向而不是 401。
func (r *Router) SetupFrontendRoutes(engine *gin.Engine, assets fs.FS) {
	pages, err := fs.Sub(assets, "assets")
	if err != nil {
		log.Fatalf("内嵌静态资源目录缺失: %v", err)
	}

	// 静态资源（样式、脚本）
	static, err := fs.Sub(pages, "static")
	if err == nil {
		engine.StaticFS("/static", http.FS(static))
	}

	// 信息流首页，完全公开
	engine.GET("/", servePage(pages, "index.html"))

	// 管理页：无会话 → 302 /login
	engine.GET("/admin", r.mw.AdminPageGuard(), servePage(pages, "admin.html"))

	// 登录页：已有会话 → 302 /admin
	engine.GET("/login", r.mw.LoginPageGuard(), servePage(pages, "login.html"))
}
