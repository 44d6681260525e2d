/*
 * @Description: 本地文件系统 Blob 驱动，用于开发环境和测试
 * @Author: 日落噪音
 * @Date: 2026-07-05 09:35:12
 * @LastEditTime: 2026-08-16 11:52:03
 * @LastEditors: 日落噪音
 */
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalProvider 实现了 IBlobProvider 接口，把每个文档键映射为磁盘上的一个 .json 文件。
type LocalProvider struct {
	baseDir string
}

// NewLocalProvider 是 LocalProvider 的构造函数，baseDir 是文档文件所在目录。
func NewLocalProvider(baseDir string) IBlobProvider {
	return &LocalProvider{baseDir: baseDir}
}

// documentPath 把文档键转换为物理文件路径，顺带防御路径穿越
func (p *LocalProvider) documentPath(key string) (string, error) {
	cleaned := filepath.Clean(key)
	if cleaned == "." || cleaned == ".." || strings.Contains(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("非法的文档键: %q", key)
	}
	return filepath.Join(p.baseDir, cleaned+".json"), nil
}

func (p *LocalProvider) GetJSON(ctx context.Context, key string) ([]byte, error) {
	path, err := p.documentPath(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("读取本地文档 '%s' 失败: %w", path, err)
	}
	return data, nil
}

func (p *LocalProvider) SetJSON(ctx context.Context, key string, data []byte) error {
	path, err := p.documentPath(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("创建文档目录失败: %w", err)
	}

	// 先写临时文件再重命名，避免写一半崩溃导致文档损坏
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("写入本地文档 '%s' 失败: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("重命名本地文档失败: %w", err)
	}
	return nil
}

func (p *LocalProvider) Exists(ctx context.Context, key string) (bool, error) {
	path, err := p.documentPath(key)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
