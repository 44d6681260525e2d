/*
 * @Description: 管理员会话相关常量
 * @Author: 日落噪音
 * @Date: 2026-07-04 10:15:02
 * @LastEditTime: 2026-07-04 10:15:02
 * @LastEditors: 日落噪音
 */
package constant

import "time"

const (
	// SessionCookieName 管理员会话 Cookie 的名称
	SessionCookieName = "admin_session"

	// SessionCookieValue 会话 Cookie 的合法值。
	// 注意：该值本身就是全部凭证，持有此值的请求即被视为管理员。
	// 这是对源站行为的有意保留，不是待修复的缺陷（详见 DESIGN.md）。
	SessionCookieValue = "authenticated"

	// SessionMaxAge 会话 Cookie 的有效期（7 天）
	SessionMaxAge = 7 * 24 * time.Hour
)
