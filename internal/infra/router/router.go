/*
 * @Description:
 * @Author: 日落噪音
 * @Date: 2026-07-11 10:20:15
 * @LastEditTime: 2026-08-24 09:48:33
 * @LastEditors: 日落噪音
 */
// soapcard-app/internal/infra/router/router.go
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/sunsetnoise/soapcard-app/internal/app/middleware"
	auth_handler "github.com/sunsetnoise/soapcard-app/pkg/handler/auth"
	bilibili_handler "github.com/sunsetnoise/soapcard-app/pkg/handler/bilibili"
	card_handler "github.com/sunsetnoise/soapcard-app/pkg/handler/card"
)

// NoCacheMiddleware 全局反缓存中间件，确保所有API响应都不会被CDN缓存
func NoCacheMiddleware() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate, private, max-age=0")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Header("X-Content-Type-Options", "nosniff")

		c.Next()
	})
}

// Router 封装了应用的所有路由和其依赖的处理器。
type Router struct {
	cardHandler     *card_handler.Handler
	authHandler     *auth_handler.AuthHandler
	bilibiliHandler *bilibili_handler.BilibiliHandler
	mw              *middleware.Middleware
}

// NewRouter 是 Router 的构造函数，通过依赖注入接收所有处理器。
func NewRouter(
	cardHandler *card_handler.Handler,
	authHandler *auth_handler.AuthHandler,
	bilibiliHandler *bilibili_handler.BilibiliHandler,
	mw *middleware.Middleware,
) *Router {
	return &Router{
		cardHandler:     cardHandler,
		authHandler:     authHandler,
		bilibiliHandler: bilibiliHandler,
		mw:              mw,
	}
}

// SetupRoutes 注册所有 API 路由
func (r *Router) SetupRoutes(engine *gin.Engine) {
	api := engine.Group("/api")
	api.Use(NoCacheMiddleware())
	{
		// 公开接口，无需认证
		api.GET("/cards", r.cardHandler.ListCards)
		api.GET("/cards/:id/html", r.cardHandler.RenderContent)
		api.GET("/bilibili/cover", r.bilibiliHandler.GetCover)

		api.POST("/login", r.authHandler.Login)
		api.POST("/logout", r.authHandler.Logout)

		// 管理接口，会话 Cookie 校验
		admin := api.Group("/admin")
		admin.Use(r.mw.SessionAuth())
		{
			admin.GET("/cards", r.cardHandler.ListCards)
			admin.POST("/cards", r.cardHandler.CreateCard)
			admin.PATCH("/cards/:id", r.cardHandler.UpdateCard)
			admin.DELETE("/cards/:id", r.cardHandler.DeleteCard)
		}
	}
}
