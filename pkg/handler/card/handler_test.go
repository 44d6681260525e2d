package card_handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sunsetnoise/soapcard-app/internal/app/middleware"
	"github.com/sunsetnoise/soapcard-app/internal/infra/persistence/cardstore"
	"github.com/sunsetnoise/soapcard-app/internal/infra/storage"
	"github.com/sunsetnoise/soapcard-app/pkg/constant"
	"github.com/sunsetnoise/soapcard-app/pkg/domain/model"
	service_auth "github.com/sunsetnoise/soapcard-app/pkg/service/auth"
	"github.com/sunsetnoise/soapcard-app/pkg/service/card"

	"github.com/gin-gonic/gin"
)

// newTestServer 组装一套贴近真实路由的测试环境：
// 本地文件存储 + 仓储 + 服务 + 会话中间件。
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := cardstore.NewCardRepository(storage.NewLocalProvider(t.TempDir()))
	handler := NewHandler(card.NewService(repo))
	mw := middleware.NewMiddleware(service_auth.NewSessionService("", ""))

	engine := gin.New()
	api := engine.Group("/api")
	{
		api.GET("/cards", handler.ListCards)
		api.GET("/cards/:id/html", handler.RenderContent)

		admin := api.Group("/admin")
		admin.Use(mw.SessionAuth())
		{
			admin.POST("/cards", handler.CreateCard)
			admin.PATCH("/cards/:id", handler.UpdateCard)
			admin.DELETE("/cards/:id", handler.DeleteCard)
		}
	}
	return engine
}

func adminRequest(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{
		Name:  constant.SessionCookieName,
		Value: constant.SessionCookieValue,
	})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestListCardsReturnsBareArray(t *testing.T) {
	engine := newTestServer(t)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cards", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, 期望 200", w.Code)
	}

	// 空集合也必须是裸数组 []，不能是 null 或包装对象
	var cards []model.Card
	if err := json.Unmarshal(w.Body.Bytes(), &cards); err != nil {
		t.Fatalf("响应不是 JSON 数组: %s", w.Body.String())
	}
	if strings.TrimSpace(w.Body.String()) == "null" {
		t.Error("空集合应返回 []，不应返回 null")
	}
}

func TestAdminRoutesRequireSession(t *testing.T) {
	engine := newTestServer(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/admin/cards"},
		{http.MethodPatch, "/api/admin/cards/1"},
		{http.MethodDelete, "/api/admin/cards/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(`{}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("状态码 = %d, 期望 401", w.Code)
			}
			if !strings.Contains(w.Body.String(), `"error"`) {
				t.Errorf("响应体 = %s, 期望 error 字段", w.Body.String())
			}
		})
	}
}

func TestCreateCard(t *testing.T) {
	t.Run("合法请求创建成功", func(t *testing.T) {
		engine := newTestServer(t)

		w := adminRequest(engine, http.MethodPost, "/api/admin/cards",
			`{"type":"video","bilibiliId":"BV1GJ411x7h7","summary":"经典片段"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("状态码 = %d, 响应 = %s", w.Code, w.Body.String())
		}

		var created model.Card
		if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
			t.Fatalf("响应解析失败: %v", err)
		}
		if created.ID == "" || created.Timestamp == 0 {
			t.Errorf("服务端未分配 id/timestamp: %+v", created)
		}
		if created.BilibiliID != "BV1GJ411x7h7" {
			t.Errorf("BilibiliID = %q", created.BilibiliID)
		}
	})

	t.Run("视频卡片缺BV号返回400", func(t *testing.T) {
		engine := newTestServer(t)

		w := adminRequest(engine, http.MethodPost, "/api/admin/cards",
			`{"type":"video","summary":"没有视频号"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("状态码 = %d, 期望 400", w.Code)
		}
	})

	t.Run("非法JSON返回400", func(t *testing.T) {
		engine := newTestServer(t)

		w := adminRequest(engine, http.MethodPost, "/api/admin/cards", `{broken`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("状态码 = %d, 期望 400", w.Code)
		}
	})
}

func TestUpdateCard(t *testing.T) {
	engine := newTestServer(t)

	w := adminRequest(engine, http.MethodPost, "/api/admin/cards",
		`{"type":"text","summary":"旧摘要","content":"正文"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("前置创建失败: %s", w.Body.String())
	}
	var created model.Card
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}

	t.Run("按id浅合并", func(t *testing.T) {
		w := adminRequest(engine, http.MethodPatch, "/api/admin/cards/"+created.ID,
			`{"summary":"新摘要"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("状态码 = %d, 响应 = %s", w.Code, w.Body.String())
		}

		var updated model.Card
		if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
			t.Fatal(err)
		}
		if updated.Summary != "新摘要" || updated.Content != "正文" {
			t.Errorf("浅合并结果不正确: %+v", updated)
		}
		if updated.ID != created.ID || updated.Timestamp != created.Timestamp {
			t.Errorf("id/timestamp 不应被修改: %+v", updated)
		}
	})

	t.Run("不存在的id返回404", func(t *testing.T) {
		w := adminRequest(engine, http.MethodPatch, "/api/admin/cards/no-such-id",
			`{"summary":"新摘要"}`)
		if w.Code != http.StatusNotFound {
			t.Errorf("状态码 = %d, 期望 404", w.Code)
		}
	})
}

func TestDeleteCard(t *testing.T) {
	engine := newTestServer(t)

	w := adminRequest(engine, http.MethodPost, "/api/admin/cards",
		`{"type":"text","summary":"待删除"}`)
	var created model.Card
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}

	t.Run("删除成功", func(t *testing.T) {
		w := adminRequest(engine, http.MethodDelete, "/api/admin/cards/"+created.ID, "")
		if w.Code != http.StatusOK {
			t.Fatalf("状态码 = %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"success":true`) {
			t.Errorf("响应体 = %s", w.Body.String())
		}

		list := httptest.NewRecorder()
		engine.ServeHTTP(list, httptest.NewRequest(http.MethodGet, "/api/cards", nil))
		var cards []model.Card
		if err := json.Unmarshal(list.Body.Bytes(), &cards); err != nil {
			t.Fatal(err)
		}
		for _, c := range cards {
			if c.ID == created.ID {
				t.Errorf("删除后仍能列出卡片 %q", c.ID)
			}
		}
	})

	t.Run("删除不存在的id也返回成功", func(t *testing.T) {
		w := adminRequest(engine, http.MethodDelete, "/api/admin/cards/no-such-id", "")
		if w.Code != http.StatusOK {
			t.Errorf("状态码 = %d, 期望 200", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"success":true`) {
			t.Errorf("响应体 = %s", w.Body.String())
		}
	})
}

func TestRenderContentEndpoint(t *testing.T) {
	engine := newTestServer(t)

	w := adminRequest(engine, http.MethodPost, "/api/admin/cards",
		`{"type":"text","summary":"摘要","content":"# 标题\n\n正文段落"}`)
	var created model.Card
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}

	t.Run("渲染正文", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cards/"+created.ID+"/html", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("状态码 = %d", w.Code)
		}

		var body struct {
			HTML string `json:"html"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(body.HTML, "<h1") {
			t.Errorf("渲染结果未包含标题标签: %q", body.HTML)
		}
	})

	t.Run("卡片不存在返回404", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cards/no-such-id/html", nil))
		if w.Code != http.StatusNotFound {
			t.Errorf("状态码 = %d, 期望 404", w.Code)
		}
	})
}
