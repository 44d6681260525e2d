/*
 * @Description: 管理员登录/登出 HTTP 处理器
 * @Author: 日落噪音
 * @Date: 2026-07-09 15:10:38
 * @LastEditTime: 2026-08-23 12:15:20
 * @LastEditors: 日落噪音
 */
package auth_handler

import (
	"net/http"

	"github.com/sunsetnoise/soapcard-app/pkg/constant"
	"github.com/sunsetnoise/soapcard-app/pkg/response"
	"github.com/sunsetnoise/soapcard-app/pkg/service/auth"

	"github.com/gin-gonic/gin"
)

// AuthHandler 封装登录登出相关的控制器方法
type AuthHandler struct {
	sessionSvc auth.SessionService
}

// NewAuthHandler 是 AuthHandler 的构造函数
func NewAuthHandler(sessionSvc auth.SessionService) *AuthHandler {
	return &AuthHandler{sessionSvc: sessionSvc}
}

// Login 管理员登录
// @Summary      管理员登录
// @Description  表单提交用户名密码，匹配则种下会话 Cookie（HttpOnly、7 天、SameSite=Lax）
// @Tags         认证
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "用户名"
// @Param        password  formData  string  true  "密码"
// @Success      200  {object}  object{success=bool}  "登录成功"
// @Failure      401  {object}  object{success=bool}  "凭证错误，不设置 Cookie"
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if !h.sessionSvc.VerifyCredentials(username, password) {
		response.FailLogin(c)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		constant.SessionCookieName,
		constant.SessionCookieValue,
		int(constant.SessionMaxAge.Seconds()),
		"/",
		"",    // 不限定域名
		false, // 部署在反向代理后，由代理层负责 HTTPS
		true,  // HttpOnly
	)
	response.Success(c)
}

// Logout 管理员登出，清除会话 Cookie
// @Summary      管理员登出
// @Tags         认证
// @Produce      json
// @Success      200  {object}  object{success=bool}  "登出成功"
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constant.SessionCookieName, "", -1, "/", "", false, true)
	response.Success(c)
}
