/*
 * @Description: 卡片业务逻辑
 * @Author: 日落噪音
 * @Date: 2026-07-07 09:12:44
 * @LastEditTime: 2026-08-21 10:27:36
 * @LastEditors: 日落噪音
 */
package card

import (
	"context"
	"fmt"
	"sort"

	"github.com/sunsetnoise/soapcard-app/internal/pkg/parser"
	"github.com/sunsetnoise/soapcard-app/pkg/constant"
	"github.com/sunsetnoise/soapcard-app/pkg/domain/model"
	"github.com/sunsetnoise/soapcard-app/pkg/domain/repository"
)

// Service 定义卡片相关的业务逻辑接口
type Service interface {
	// List 返回全部卡片，按创建时间倒序（时间戳相同的保持原有相对顺序）
	List(ctx context.Context) []model.Card

	// Create 校验草稿后创建卡片，id 和 timestamp 由仓储分配
	Create(ctx context.Context, draft model.CardDraft) (*model.Card, error)

	// Update 按 id 浅合并补丁。id 不存在时返回 (nil, nil)。
	// 与源站一致，更新不做字段校验。
	Update(ctx context.Context, id string, patch model.CardPatch) (*model.Card, error)

	// Delete 删除卡片，id 不存在也视为成功
	Delete(ctx context.Context, id string) error

	// RenderHTML 把卡片正文（content 为空时退回 summary）的 Markdown
	// 渲染为净化后的 HTML。id 不存在时返回 constant.ErrNotFound。
	RenderHTML(ctx context.Context, id string) (string, error)
}

type cardService struct {
	cardRepo repository.CardRepository
}

// NewService 是卡片服务的构造函数
func NewService(cardRepo repository.CardRepository) Service {
	return &cardService{cardRepo: cardRepo}
}

// SortByRecency 按 timestamp 倒序稳定排序，相同时间戳保持取回顺序
func SortByRecency(cards []model.Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Timestamp > cards[j].Timestamp
	})
}

func (s *cardService) List(ctx context.Context) []model.Card {
	cards := s.cardRepo.FindAll(ctx)
	SortByRecency(cards)
	return cards
}

func (s *cardService) Create(ctx context.Context, draft model.CardDraft) (*model.Card, error) {
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", constant.ErrBadRequest, err)
	}
	return s.cardRepo.Create(ctx, draft)
}

func (s *cardService) Update(ctx context.Context, id string, patch model.CardPatch) (*model.Card, error) {
	return s.cardRepo.Update(ctx, id, patch)
}

func (s *cardService) Delete(ctx context.Context, id string) error {
	return s.cardRepo.Delete(ctx, id)
}

func (s *cardService) RenderHTML(ctx context.Context, id string) (string, error) {
	for _, c := range s.cardRepo.FindAll(ctx) {
		if c.ID == id {
			source := c.Content
			if source == "" {
				source = c.Summary
			}
			html, err := parser.MarkdownToHTML(source)
			if err != nil {
				return "", fmt.Errorf("渲染卡片 '%s' 正文失败: %w", id, err)
			}
			return html, nil
		}
	}
	return "", constant.ErrNotFound
}
