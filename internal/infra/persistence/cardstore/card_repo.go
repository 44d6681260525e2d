/*
 * @Description: 基于 Blob 文档的卡片仓储实现
 * @Author: 日落噪音
 * @Date: 2026-07-06 14:08:27
 * @LastEditTime: 2026-08-20 17:35:10
 * @LastEditors: 日落噪音
 */
package cardstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/sunsetnoise/soapcard-app/internal/infra/storage"
	"github.com/sunsetnoise/soapcard-app/pkg/constant"
	"github.com/sunsetnoise/soapcard-app/pkg/domain/model"
	"github.com/sunsetnoise/soapcard-app/pkg/domain/repository"
)

// cardRepo 把整个卡片集合当作 Blob 命名空间里 "cards" 键下的一个 JSON 数组维护。
// 每次变更都是读出整个数组、在内存里改、再整体写回。
// 读-改-写之间没有乐观锁或任何并发令牌，两个并发写会出现丢失更新，
// 这是对源站行为的有意保留。
type cardRepo struct {
	provider storage.IBlobProvider
	// now 可替换的时钟，测试时注入固定时间
	now func() time.Time
}

// NewCardRepository 是卡片仓储的构造函数。
func NewCardRepository(provider storage.IBlobProvider) repository.CardRepository {
	return &cardRepo{
		provider: provider,
		now:      time.Now,
	}
}

// loadAll 读取并解析整个卡片数组。任何失败都降级为空列表：
// 文档不存在是首次部署的正常状态，网络或解析错误也只记录日志，
// 不向上层暴露（读路径的错误在这一层被吞掉，与源站一致）。
func (r *cardRepo) loadAll(ctx context.Context) []model.Card {
	data, err := r.provider.GetJSON(ctx, constant.CardsDocumentKey)
	if err != nil {
		if !errors.Is(err, storage.ErrDocumentNotFound) {
			log.Printf("[CardStore] 读取卡片文档失败，降级为空列表: %v", err)
		}
		return []model.Card{}
	}

	var cards []model.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		log.Printf("[CardStore] 卡片文档解析失败，降级为空列表: %v", err)
		return []model.Card{}
	}
	return cards
}

// saveAll 把整个卡片数组序列化后整体写回
func (r *cardRepo) saveAll(ctx context.Context, cards []model.Card) error {
	data, err := json.Marshal(cards)
	if err != nil {
		return fmt.Errorf("序列化卡片列表失败: %w", err)
	}
	if err := r.provider.SetJSON(ctx, constant.CardsDocumentKey, data); err != nil {
		return fmt.Errorf("持久化卡片列表失败: %w", err)
	}
	return nil
}

func (r *cardRepo) FindAll(ctx context.Context) []model.Card {
	return r.loadAll(ctx)
}

func (r *cardRepo) Create(ctx context.Context, draft model.CardDraft) (*model.Card, error) {
	cards := r.loadAll(ctx)

	// id 取创建时刻的毫秒时间戳。同一毫秒内连续创建会撞号，
	// 这里向后递增一毫秒直到不冲突，保证 id 在集合内唯一且时间戳不回退。
	ms := r.now().UnixMilli()
	for idTaken(cards, strconv.FormatInt(ms, 10)) {
		ms++
	}

	newCard := model.Card{
		ID:         strconv.FormatInt(ms, 10),
		Type:       draft.Type,
		BilibiliID: draft.BilibiliID,
		Summary:    draft.Summary,
		Content:    draft.Content,
		Timestamp:  ms,
	}

	cards = append(cards, newCard)
	if err := r.saveAll(ctx, cards); err != nil {
		return nil, err
	}
	return &newCard, nil
}

func (r *cardRepo) Update(ctx context.Context, id string, patch model.CardPatch) (*model.Card, error) {
	cards := r.loadAll(ctx)

	idx := -1
	for i := range cards {
		if cards[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		// 未找到不是错误，由调用方转换为 404
		return nil, nil
	}

	patch.Apply(&cards[idx])
	if err := r.saveAll(ctx, cards); err != nil {
		return nil, err
	}
	return &cards[idx], nil
}

func (r *cardRepo) Delete(ctx context.Context, id string) error {
	cards := r.loadAll(ctx)

	filtered := make([]model.Card, 0, len(cards))
	for _, c := range cards {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}

	// 删除不存在的 id 也照常写回，幂等
	return r.saveAll(ctx, filtered)
}

func idTaken(cards []model.Card, id string) bool {
	for i := range cards {
		if cards[i].ID == id {
			return true
		}
	}
	return false
}
