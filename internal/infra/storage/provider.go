/*
 * @Description: 定义了所有 Blob 存储驱动需要遵守的接口和公共结构
 * @Author: 日落噪音
 * @Date: 2026-07-05 09:20:41
 * @LastEditTime: 2026-08-16 11:47:29
 * @LastEditors: 日落噪音
 */
package storage

import (
	"context"
	"errors"
)

// 本应用的持久化模型极其简单：一个命名空间（store）下若干个键，
// 每个键对应一个完整的 JSON 文档。驱动只需要实现按键读写整个文档，
// 不需要目录、流式传输或预签名等文件系统语义。

// ErrDocumentNotFound 表示命名空间中不存在该键对应的文档
var ErrDocumentNotFound = errors.New("blob 文档不存在")

// IBlobProvider 定义了所有 Blob 存储驱动必须实现的接口
type IBlobProvider interface {
	// GetJSON 读取指定键下的完整 JSON 文档。键不存在时返回 ErrDocumentNotFound。
	GetJSON(ctx context.Context, key string) ([]byte, error)
	// SetJSON 整体覆写指定键下的 JSON 文档
	SetJSON(ctx context.Context, key string, data []byte) error
	// Exists 检查指定键是否存在文档
	Exists(ctx context.Context, key string) (bool, error)
}
