/*
 * @Description: B 站视频信息服务，为卡片封面提供服务端代理
 * @Author: 日落噪音
 * @Date: 2026-07-08 11:18:06
 * @LastEditTime: 2026-08-22 15:09:41
 * @LastEditors: 日落噪音
 */
package bilibili

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// VideoInfoService 定义 B 站视频信息接口。
// 前端卡片的封面图来自 B 站的视频详情接口，浏览器直接跨域拉取会被拦，
// 所以由服务端代为请求，只透出封面地址。
type VideoInfoService interface {
	// FetchCoverURL 按 BV 号获取视频封面图地址。
	// 拉取失败返回错误，由调用方降级为占位图（封面失败不影响卡片展示）。
	FetchCoverURL(ctx context.Context, bvid string) (string, error)
}

type videoInfoService struct {
	apiBaseURL string
	httpClient *http.Client
}

// NewVideoInfoService 是 VideoInfoService 的构造函数
func NewVideoInfoService() VideoInfoService {
	return &videoInfoService{
		apiBaseURL: "https://api.bilibili.com/x/web-interface/view",
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// viewResponse B 站视频详情接口的响应结构（只取用到的字段）
type viewResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Pic string `json:"pic"`
	} `json:"data"`
}

func (s *videoInfoService) FetchCoverURL(ctx context.Context, bvid string) (string, error) {
	reqURL := fmt.Sprintf("%s?bvid=%s", s.apiBaseURL, url.QueryEscape(bvid))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("构建 B 站接口请求失败: %w", err)
	}
	// B 站接口对无 UA 的请求直接拒绝
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36")
	req.Header.Set("Referer", "https://www.bilibili.com")

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("请求 B 站接口失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("读取 B 站接口响应失败: %w", err)
	}
	log.Printf("[BILI_API] bvid=%s 状态码=%d 耗时=%v", bvid, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("B 站接口返回状态码 %d", resp.StatusCode)
	}

	var view viewResponse
	if err := json.Unmarshal(body, &view); err != nil {
		return "", fmt.Errorf("解析 B 站接口响应失败: %w", err)
	}
	if view.Code != 0 {
		return "", fmt.Errorf("B 站接口业务错误: code=%d message=%s", view.Code, view.Message)
	}
	return view.Data.Pic, nil
}
