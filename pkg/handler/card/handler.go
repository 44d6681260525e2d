/*
 * @Description: 卡片相关 HTTP 处理器
 * @Author: 日落噪音
 * @Date: 2026-07-09 14:30:22
 * @LastEditTime: 2026-08-23 12:02:57
 * @LastEditors: 日落噪音
 */
package card_handler

import (
	"errors"
	"net/http"

	"github.com/sunsetnoise/soapcard-app/pkg/constant"
	"github.com/sunsetnoise/soapcard-app/pkg/domain/model"
	"github.com/sunsetnoise/soapcard-app/pkg/response"
	"github.com/sunsetnoise/soapcard-app/pkg/service/card"

	"github.com/gin-gonic/gin"
)

// Handler 封装卡片相关的控制器方法
type Handler struct {
	cardSvc card.Service
}

// NewHandler 是 Handler 的构造函数
func NewHandler(cardSvc card.Service) *Handler {
	return &Handler{cardSvc: cardSvc}
}

// ListCards 获取全部卡片
// @Summary      获取卡片列表
// @Description  返回全部卡片的裸 JSON 数组，按创建时间倒序，无需认证
// @Tags         卡片
// @Produce      json
// @Success      200  {array}  model.Card  "卡片数组"
// @Router       /api/cards [get]
func (h *Handler) ListCards(c *gin.Context) {
	// 存储层的读失败在仓储边界已经降级为空列表，这里不会再出错
	response.JSON(c, h.cardSvc.List(c.Request.Context()))
}

// RenderContent 渲染卡片正文为 HTML
// @Summary      渲染卡片正文
// @Description  把卡片的 Markdown 正文（无正文时退回摘要）渲染为净化后的 HTML。
// @Description  详情弹层展开时才会请求，列表页不触发渲染。
// @Tags         卡片
// @Produce      json
// @Param        id  path  string  true  "卡片ID"
// @Success      200  {object}  object{html=string}  "渲染结果"
// @Failure      404  {object}  object{error=string}  "卡片不存在"
// @Router       /api/cards/{id}/html [get]
func (h *Handler) RenderContent(c *gin.Context) {
	html, err := h.cardSvc.RenderHTML(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Card not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to render card")
		return
	}
	response.JSON(c, gin.H{"html": html})
}

// CreateCard 创建新卡片
// @Summary      创建卡片
// @Description  创建新卡片，id 和 timestamp 由服务端分配，需要管理员会话
// @Tags         卡片管理
// @Accept       json
// @Produce      json
// @Param        body  body  model.CardDraft  true  "卡片草稿"
// @Success      200  {object}  model.Card  "创建成功"
// @Failure      400  {object}  object{error=string}  "缺少必填字段"
// @Failure      401  {object}  object{error=string}  "未授权"
// @Router       /api/admin/cards [post]
func (h *Handler) CreateCard(c *gin.Context) {
	var draft model.CardDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		response.Error(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	newCard, err := h.cardSvc.Create(c.Request.Context(), draft)
	if err != nil {
		if errors.Is(err, constant.ErrBadRequest) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to create card")
		return
	}
	response.JSON(c, newCard)
}

// UpdateCard 更新卡片
// @Summary      更新卡片
// @Description  按 id 浅合并请求体里的字段，需要管理员会话
// @Tags         卡片管理
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "卡片ID"
// @Param        body  body  model.CardPatch  true  "要更新的字段"
// @Success      200  {object}  model.Card  "更新后的卡片"
// @Failure      404  {object}  object{error=string}  "卡片不存在"
// @Router       /api/admin/cards/{id} [patch]
func (h *Handler) UpdateCard(c *gin.Context) {
	var patch model.CardPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.cardSvc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to update card")
		return
	}
	if updated == nil {
		response.Error(c, http.StatusNotFound, "Card not found")
		return
	}
	response.JSON(c, updated)
}

// DeleteCard 删除卡片
// @Summary      删除卡片
// @Description  删除卡片，幂等：删除不存在的 id 也返回成功。需要管理员会话
// @Tags         卡片管理
// @Produce      json
// @Param        id  path  string  true  "卡片ID"
// @Success      200  {object}  object{success=bool}  "删除成功"
// @Failure      401  {object}  object{error=string}  "未授权"
// @Router       /api/admin/cards/{id} [delete]
func (h *Handler) DeleteCard(c *gin.Context) {
	if err := h.cardSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to delete card")
		return
	}
	response.Success(c)
}
