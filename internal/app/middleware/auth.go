// internal/app/middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/sunsetnoise/soapcard-app/pkg/constant"
	"github.com/sunsetnoise/soapcard-app/pkg/response"
	service_auth "github.com/sunsetnoise/soapcard-app/pkg/service/auth"

	"github.com/gin-gonic/gin"
)

type Middleware struct {
	sessionSvc service_auth.SessionService
}

func NewMiddleware(sessionSvc service_auth.SessionService) *Middleware {
	return &Middleware{sessionSvc: sessionSvc}
}

// hasValidSession 从请求中取会话 Cookie 并校验其值
func (m *Middleware) hasValidSession(c *gin.Context) bool {
	value, err := c.Cookie(constant.SessionCookieName)
	if err != nil {
		return false
	}
	return m.sessionSvc.ValidateSession(value)
}

// SessionAuth 是管理接口的强制会话校验中间件。
// 没有合法会话 Cookie 的请求一律 401，不区分"没带"和"带错"。
func (m *Middleware) SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.hasValidSession(c) {
			response.Error(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminPageGuard 是管理页面的守卫：未登录访问 /admin 一律重定向到登录页
func (m *Middleware) AdminPageGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.hasValidSession(c) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// LoginPageGuard 是登录页面的守卫：已登录访问 /login 直接跳去管理页
func (m *Middleware) LoginPageGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.hasValidSession(c) {
			c.Redirect(http.StatusFound, "/admin")
			c.Abort()
			return
		}
		c.Next()
	}
}
