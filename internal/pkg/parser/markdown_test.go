package parser

import (
	"strings"
	"testing"
)

func TestMarkdownToHTML(t *testing.T) {
	tests := []struct {
		name        string
		md          string
		wantContain string
		notContain  string
	}{
		{
			name:        "基础语法",
			md:          "# 标题\n\n**加粗** 和 *斜体*",
			wantContain: "<strong>加粗</strong>",
		},
		{
			name:        "硬换行保留台词断行",
			md:          "第一句台词\n第二句台词",
			wantContain: "<br",
		},
		{
			name:        "自动识别链接",
			md:          "看这里 https://example.com 的片段",
			wantContain: `<a href="https://example.com"`,
		},
		{
			name:        "GFM删除线",
			md:          "~~划掉~~",
			wantContain: "<del>划掉</del>",
		},
		{
			name:       "script标签被净化",
			md:         "正文<script>alert(1)</script>",
			notContain: "<script>",
		},
		{
			name:       "内联事件被净化",
			md:         `<img src="x" onerror="alert(1)">`,
			notContain: "onerror",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := MarkdownToHTML(tt.md)
			if err != nil {
				t.Fatalf("MarkdownToHTML() 失败: %v", err)
			}
			if tt.wantContain != "" && !strings.Contains(html, tt.wantContain) {
				t.Errorf("结果 %q 未包含 %q", html, tt.wantContain)
			}
			if tt.notContain != "" && strings.Contains(html, tt.notContain) {
				t.Errorf("结果 %q 不应包含 %q", html, tt.notContain)
			}
		})
	}
}

func TestMarkdownToHTMLEmptyInput(t *testing.T) {
	html, err := MarkdownToHTML("")
	if err != nil {
		t.Fatalf("MarkdownToHTML() 失败: %v", err)
	}
	if strings.TrimSpace(html) != "" {
		t.Errorf("空输入应产生空 HTML，得到 %q", html)
	}
}
