/*
 * @Description: 统一的 API 响应辅助函数
 * @Author: 日落噪音
 * @Date: 2026-07-04 11:02:10
 * @LastEditTime: 2026-08-12 19:21:47
 * @LastEditors: 日落噪音
 */
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 本应用的对外接口沿用源站的裸 JSON 约定：
// 成功时直接返回数据本身（数组或对象），失败时返回 {"error": "..."}，
// 登录接口返回 {"success": bool}。不额外包一层 code/message 信封。

// JSON 成功响应，直接输出数据本身
func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error 失败响应，输出 {"error": message}
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// Success 输出 {"success": true}，用于删除、登录等只需确认结果的接口
func Success(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// FailLogin 登录失败响应，输出 {"success": false}
func FailLogin(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"success": false})
}
