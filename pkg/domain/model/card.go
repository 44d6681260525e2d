/*
 * @Description: 卡片领域模型
 * @Author: 日落噪音
 * @Date: 2026-07-04 10:45:33
 * @LastEditTime: 2026-08-15 20:11:02
 * @LastEditors: 日落噪音
 */
package model

import (
	"fmt"
)

// CardType 卡片类型，封闭枚举：video / text / mixed
type CardType string

const (
	// CardTypeVideo 纯视频卡片，只有 B 站视频
	CardTypeVideo CardType = "video"
	// CardTypeText 纯文字卡片，只有台词或随想
	CardTypeText CardType = "text"
	// CardTypeMixed 混合卡片，视频 + 长文字内容
	CardTypeMixed CardType = "mixed"
)

// IsValid 判断是否为合法的卡片类型
func (t CardType) IsValid() bool {
	switch t {
	case CardTypeVideo, CardTypeText, CardTypeMixed:
		return true
	}
	return false
}

// NeedsBilibiliID 判断该类型是否必须携带 B 站视频号。
// 源站只在 video 类型上做了这个校验，mixed 类型漏掉了；
// 这里按 UI 的实际使用统一校验（决策记录见 DESIGN.md）。
func (t CardType) NeedsBilibiliID() bool {
	return t == CardTypeVideo || t == CardTypeMixed
}

// Card 一条信息流卡片，本应用唯一的实体。
// JSON 字段名与源站的存储格式保持逐字一致，保证存量数据可直接读取。
type Card struct {
	ID         string   `json:"id"`
	Type       CardType `json:"type"`
	BilibiliID string   `json:"bilibiliId,omitempty"`
	Summary    string   `json:"summary"`
	Content    string   `json:"content,omitempty"`
	Timestamp  int64    `json:"timestamp"` // 创建时间，epoch 毫秒，信息流默认按它倒序
}

// CardDraft 创建卡片时客户端提交的字段，id 和 timestamp 由服务端分配
type CardDraft struct {
	Type       CardType `json:"type"`
	BilibiliID string   `json:"bilibiliId,omitempty"`
	Summary    string   `json:"summary"`
	Content    string   `json:"content,omitempty"`
}

// Validate 在创建时统一校验卡片字段。
// 规则：type 必须是合法枚举，summary 必填，video/mixed 必须携带 bilibiliId。
// 更新走浅合并，不经过此校验（与源站行为一致）。
func (d *CardDraft) Validate() error {
	if d.Type == "" || d.Summary == "" {
		return fmt.Errorf("缺少必填字段: type 和 summary 不能为空")
	}
	if !d.Type.IsValid() {
		return fmt.Errorf("无效的卡片类型: %q", d.Type)
	}
	if d.Type.NeedsBilibiliID() && d.BilibiliID == "" {
		return fmt.Errorf("%s 类型的卡片必须提供 bilibiliId", d.Type)
	}
	return nil
}

// CardPatch 更新卡片时的部分字段。指针为 nil 表示该字段不更新。
type CardPatch struct {
	Type       *CardType `json:"type,omitempty"`
	BilibiliID *string   `json:"bilibiliId,omitempty"`
	Summary    *string   `json:"summary,omitempty"`
	Content    *string   `json:"content,omitempty"`
}

// Apply 将补丁浅合并到已有卡片上。id 和 timestamp 不可变。
func (p *CardPatch) Apply(c *Card) {
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.BilibiliID != nil {
		c.BilibiliID = *p.BilibiliID
	}
	if p.Summary != nil {
		c.Summary = *p.Summary
	}
	if p.Content != nil {
		c.Content = *p.Content
	}
}
