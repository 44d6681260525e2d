/*
 * @Description: 卡片正文的 Markdown 渲染
 * @Author: 日落噪音
 * @Date: 2026-07-06 15:21:09
 * @LastEditTime: 2026-08-09 18:46:33
 * @LastEditors: 日落噪音
 */
// internal/pkg/parser/markdown.go
package parser

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var mdParser goldmark.Markdown
var policy *bluemonday.Policy

func init() {
	// 初始化 Goldmark 解析器。卡片正文多为台词、随想一类的短文，
	// GFM 加自动链接已经覆盖了管理后台实际会写出来的语法。
	mdParser = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,     // 支持 GitHub Flavored Markdown
			extension.Linkify, // 自动识别链接
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // 硬换行，台词断行按原样呈现
			html.WithUnsafe(),    // 信任原始 HTML，后续由 bluemonday 清理
		),
	)

	// bluemonday 的 UGCPolicy 适用于用户生成内容
	policy = bluemonday.UGCPolicy()
}

// MarkdownToHTML 将 Markdown 字符串转换为安全的 HTML 字符串
func MarkdownToHTML(mdContent string) (string, error) {
	var buf bytes.Buffer
	if err := mdParser.Convert([]byte(mdContent), &buf); err != nil {
		return "", err
	}
	// 使用 bluemonday 清理 HTML，防止 XSS
	return policy.Sanitize(buf.String()), nil
}
