/*
 * @Description: Netlify Blobs 存储驱动（源站使用的云端键值 Blob 服务）
 * @Author: 日落噪音
 * @Date: 2026-07-05 10:02:55
 * @LastEditTime: 2026-08-16 12:10:44
 * @LastEditors: 日落噪音
 */
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// Netlify Blobs 的 deploy-independent 存储通过官方 REST API 访问：
//   https://api.netlify.com/api/v1/blobs/{site_id}/{store_name}/{key}
// 鉴权使用 Bearer Token。Token 和站点 ID 由环境变量提供
// （NETLIFY_TOKEN / NETLIFY_SITE_ID，名称与源站保持一致）。

const netlifyAPIBase = "https://api.netlify.com/api/v1/blobs"

// NetlifyProvider 实现了 IBlobProvider 接口，对接 Netlify Blobs 服务。
type NetlifyProvider struct {
	token      string
	siteID     string
	storeName  string
	httpClient *http.Client
}

// NewNetlifyProvider 是 NetlifyProvider 的构造函数。
// token 和 siteID 缺失时不在此处报错，而是在首次请求时失败，
// 以便本地驱动可用的环境下应用仍能正常启动。
func NewNetlifyProvider(token, siteID, storeName string) IBlobProvider {
	if token == "" || siteID == "" {
		log.Println("[NetlifyBlobs] 警告: NETLIFY_TOKEN 或 NETLIFY_SITE_ID 未设置，云端存储请求将会失败")
	}
	return &NetlifyProvider{
		token:      token,
		siteID:     siteID,
		storeName:  storeName,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// blobURL 拼出单个文档的 API 地址
func (p *NetlifyProvider) blobURL(key string) string {
	return fmt.Sprintf("%s/%s/%s/%s",
		netlifyAPIBase,
		url.PathEscape(p.siteID),
		url.PathEscape(p.storeName),
		url.PathEscape(key),
	)
}

func (p *NetlifyProvider) do(ctx context.Context, method, key string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, p.blobURL(key), reader)
	if err != nil {
		return nil, fmt.Errorf("构建 Netlify Blobs 请求失败: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("请求 Netlify Blobs 失败: %w", err)
	}
	return resp, nil
}

func (p *NetlifyProvider) GetJSON(ctx context.Context, key string) ([]byte, error) {
	resp, err := p.do(ctx, http.MethodGet, key, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrDocumentNotFound
	case resp.StatusCode >= 300:
		return nil, fmt.Errorf("Netlify Blobs 读取失败，状态码: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取 Netlify Blobs 响应体失败: %w", err)
	}
	return data, nil
}

func (p *NetlifyProvider) SetJSON(ctx context.Context, key string, data []byte) error {
	resp, err := p.do(ctx, http.MethodPut, key, data)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("Netlify Blobs 写入失败，状态码: %d", resp.StatusCode)
	}
	log.Printf("[NetlifyBlobs] 已写入文档 '%s'，大小: %d bytes", key, len(data))
	return nil
}

func (p *NetlifyProvider) Exists(ctx context.Context, key string) (bool, error) {
	resp, err := p.do(ctx, http.MethodHead, key, nil)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode >= 300:
		return false, fmt.Errorf("Netlify Blobs 检查失败，状态码: %d", resp.StatusCode)
	}
	return true, nil
}
