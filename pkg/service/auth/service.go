/*
 * @Description: 管理员会话认证逻辑
 * @Author: 日落噪音
 * @Date: 2026-07-07 10:05:51
 * @LastEditTime: 2026-08-21 10:40:12
 * @LastEditors: 日落噪音
 */
package auth

import (
	"crypto/subtle"

	"github.com/sunsetnoise/soapcard-app/pkg/constant"
)

// 源站的管理员凭证是写死在代码里的一对字面量。
// 这里保留相同的默认值，同时允许通过配置/环境变量覆盖。
const (
	defaultAdminUsername = "sunsetnoise"
	defaultAdminPassword = "123456"
)

// SessionService 定义管理员会话相关的业务逻辑接口。
// 会话本身没有服务端状态：Cookie 里的固定字面量就是全部凭证，
// 不做签名、不查会话表、除 Cookie 自身的 Max-Age 外没有过期校验。
type SessionService interface {
	// VerifyCredentials 校验用户名密码是否匹配管理员凭证
	VerifyCredentials(username, password string) bool

	// ValidateSession 校验 Cookie 值是否为合法的会话标记
	ValidateSession(cookieValue string) bool
}

type sessionService struct {
	username string
	password string
}

// NewSessionService 是会话服务的构造函数，凭证缺省时退回源站的硬编码值。
func NewSessionService(username, password string) SessionService {
	if username == "" {
		username = defaultAdminUsername
	}
	if password == "" {
		password = defaultAdminPassword
	}
	return &sessionService{username: username, password: password}
}

func (s *sessionService) VerifyCredentials(username, password string) bool {
	// 常数时间比较，避免凭证比较被计时侧信道利用
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	return userOK && passOK
}

func (s *sessionService) ValidateSession(cookieValue string) bool {
	return cookieValue == constant.SessionCookieValue
}
