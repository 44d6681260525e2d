/*
 * @Description: B 站封面代理 HTTP 处理器
 * @Author: 日落噪音
 * @Date: 2026-07-10 09:42:13
 * @LastEditTime: 2026-08-23 12:20:48
 * @LastEditors: 日落噪音
 */
package bilibili_handler

import (
	"log"
	"net/http"

	"github.com/sunsetnoise/soapcard-app/pkg/response"
	"github.com/sunsetnoise/soapcard-app/pkg/service/bilibili"

	"github.com/gin-gonic/gin"
)

// BilibiliHandler 封装 B 站视频信息相关的控制器方法
type BilibiliHandler struct {
	videoSvc bilibili.VideoInfoService
}

// NewBilibiliHandler 是 BilibiliHandler 的构造函数
func NewBilibiliHandler(videoSvc bilibili.VideoInfoService) *BilibiliHandler {
	return &BilibiliHandler{videoSvc: videoSvc}
}

// GetCover 获取视频封面地址
// @Summary      获取 B 站视频封面
// @Description  服务端代理 B 站视频详情接口，返回封面图地址。
// @Description  拉取失败时返回空地址而非错误，由前端降级为占位图标。
// @Tags         卡片
// @Produce      json
// @Param        bvid  query  string  true  "BV 号"
// @Success      200  {object}  object{pic=string}  "封面地址，失败时为空串"
// @Failure      400  {object}  object{error=string}  "缺少 bvid 参数"
// @Router       /api/bilibili/cover [get]
func (h *BilibiliHandler) GetCover(c *gin.Context) {
	bvid := c.Query("bvid")
	if bvid == "" {
		response.Error(c, http.StatusBadRequest, "Missing bvid parameter")
		return
	}

	pic, err := h.videoSvc.FetchCoverURL(c.Request.Context(), bvid)
	if err != nil {
		// 封面失败不致命，前端用占位图标兜底
		log.Printf("[BilibiliHandler] 获取封面失败 bvid=%s: %v", bvid, err)
		response.JSON(c, gin.H{"pic": ""})
		return
	}
	response.JSON(c, gin.H{"pic": pic})
}
