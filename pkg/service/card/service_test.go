package card

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/sunsetnoise/soapcard-app/pkg/constant"
	"github.com/sunsetnoise/soapcard-app/pkg/domain/model"
)

// fakeRepo 内存版卡片仓储，测试专用
type fakeRepo struct {
	cards  []model.Card
	nextMS int64
}

func (f *fakeRepo) FindAll(ctx context.Context) []model.Card {
	out := make([]model.Card, len(f.cards))
	copy(out, f.cards)
	return out
}

func (f *fakeRepo) Create(ctx context.Context, draft model.CardDraft) (*model.Card, error) {
	f.nextMS++
	c := model.Card{
		ID:         strconv.FormatInt(f.nextMS, 10),
		Type:       draft.Type,
		BilibiliID: draft.BilibiliID,
		Summary:    draft.Summary,
		Content:    draft.Content,
		Timestamp:  f.nextMS,
	}
	f.cards = append(f.cards, c)
	return &c, nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, patch model.CardPatch) (*model.Card, error) {
	for i := range f.cards {
		if f.cards[i].ID == id {
			patch.Apply(&f.cards[i])
			return &f.cards[i], nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	kept := f.cards[:0]
	for _, c := range f.cards {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	f.cards = kept
	return nil
}

func TestSortByRecency(t *testing.T) {
	cards := []model.Card{
		{ID: "a", Timestamp: 100},
		{ID: "b", Timestamp: 300},
		{ID: "c", Timestamp: 200},
		{ID: "d", Timestamp: 200}, // 与 c 平局，应保持在 c 之后
		{ID: "e", Timestamp: 300}, // 与 b 平局，应保持在 b 之后
	}

	SortByRecency(cards)

	want := []string{"b", "e", "c", "d", "a"}
	for i, id := range want {
		if cards[i].ID != id {
			got := make([]string, len(cards))
			for j, c := range cards {
				got[j] = c.ID
			}
			t.Fatalf("排序结果 %v，期望 %v", got, want)
		}
	}
}

func TestListReturnsSortedCards(t *testing.T) {
	repo := &fakeRepo{cards: []model.Card{
		{ID: "old", Timestamp: 1},
		{ID: "new", Timestamp: 9},
		{ID: "mid", Timestamp: 5},
	}}
	svc := NewService(repo)

	cards := svc.List(context.Background())
	if len(cards) != 3 || cards[0].ID != "new" || cards[2].ID != "old" {
		t.Errorf("List() 未按时间倒序: %+v", cards)
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name       string
		draft      model.CardDraft
		wantBadReq bool
	}{
		{
			name:       "合法草稿直接创建",
			draft:      model.CardDraft{Type: model.CardTypeText, Summary: "台词"},
			wantBadReq: false,
		},
		{
			name:       "视频缺BV号被拒",
			draft:      model.CardDraft{Type: model.CardTypeVideo, Summary: "片段"},
			wantBadReq: true,
		},
		{
			name:       "混合缺BV号被拒",
			draft:      model.CardDraft{Type: model.CardTypeMixed, Summary: "片段"},
			wantBadReq: true,
		},
		{
			name:       "缺摘要被拒",
			draft:      model.CardDraft{Type: model.CardTypeText},
			wantBadReq: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			svc := NewService(repo)

			created, err := svc.Create(context.Background(), tt.draft)
			if tt.wantBadReq {
				if !errors.Is(err, constant.ErrBadRequest) {
					t.Errorf("期望 ErrBadRequest，得到 %v", err)
				}
				if len(repo.cards) != 0 {
					t.Errorf("校验失败后集合应为空: %+v", repo.cards)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create() 失败: %v", err)
			}
			if created.ID == "" {
				t.Errorf("创建成功但未分配 id: %+v", created)
			}
		})
	}
}

func TestRenderHTML(t *testing.T) {
	repo := &fakeRepo{cards: []model.Card{
		{ID: "1", Type: model.CardTypeText, Summary: "只有摘要"},
		{ID: "2", Type: model.CardTypeText, Summary: "摘要", Content: "**加粗的正文**"},
	}}
	svc := NewService(repo)
	ctx := context.Background()

	t.Run("正文为空退回摘要", func(t *testing.T) {
		html, err := svc.RenderHTML(ctx, "1")
		if err != nil {
			t.Fatalf("RenderHTML() 失败: %v", err)
		}
		if html == "" {
			t.Error("期望非空 HTML")
		}
	})

	t.Run("Markdown被渲染", func(t *testing.T) {
		html, err := svc.RenderHTML(ctx, "2")
		if err != nil {
			t.Fatalf("RenderHTML() 失败: %v", err)
		}
		if want := "<strong>"; !strings.Contains(html, want) {
			t.Errorf("渲染结果 %q 未包含 %q", html, want)
		}
	})

	t.Run("卡片不存在", func(t *testing.T) {
		_, err := svc.RenderHTML(ctx, "no-such-id")
		if !errors.Is(err, constant.ErrNotFound) {
			t.Errorf("期望 ErrNotFound，得到 %v", err)
		}
	})
}
