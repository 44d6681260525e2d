/*
 * @Description: 卡片仓储接口
 * @Author: 日落噪音
 * @Date: 2026-07-04 10:52:17
 * @LastEditTime: 2026-08-15 20:14:38
 * @LastEditors: 日落噪音
 */
package repository

import (
	"context"

	"github.com/sunsetnoise/soapcard-app/pkg/domain/model"
)

// CardRepository 定义卡片集合的持久化操作。
// 整个集合是 Blob 命名空间里的一个 JSON 文档，每次写入都会重写整个数组；
// 读-改-写之间没有任何并发控制，两个并发写可能互相覆盖（沿用源站的已知限制）。
type CardRepository interface {
	// FindAll 返回全部卡片。文档不存在、解析失败或网络错误时
	// 一律降级为返回空列表，错误在仓储边界被记录后吞掉。
	FindAll(ctx context.Context) []model.Card

	// Create 服务端分配 id 和 timestamp，追加后持久化整个列表
	Create(ctx context.Context, draft model.CardDraft) (*model.Card, error)

	// Update 按 id 浅合并补丁字段。id 不存在时返回 (nil, nil) 表示未找到。
	Update(ctx context.Context, id string, patch model.CardPatch) (*model.Card, error)

	// Delete 过滤掉指定 id 后持久化剩余列表。删除不存在的 id 不算错误。
	Delete(ctx context.Context, id string) error
}
