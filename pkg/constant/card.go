/*
 * @Description: 卡片存储相关常量
 * @Author: 日落噪音
 * @Date: 2026-07-04 10:16:44
 * @LastEditTime: 2026-08-10 21:03:18
 * @LastEditors: 日落噪音
 */
package constant

const (
	// DefaultStoreName 默认的 Blob 命名空间名称
	DefaultStoreName = "korea-soap-cards"

	// CardsDocumentKey 卡片集合在 Blob 命名空间中的文档键。
	// 整个卡片数组作为单个 JSON 文档存储在这一个键下。
	CardsDocumentKey = "cards"
)
