/*
 * @Description: S3 兼容对象存储 Blob 驱动（使用 aws-sdk-go-v2）
 * @Author: 日落噪音
 * @Date: 2026-07-05 10:40:18
 * @LastEditTime: 2026-08-16 12:31:56
 * @LastEditors: 日落噪音
 */
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Options S3 驱动的连接参数，来自配置文件的 [S3] 分区
type S3Options struct {
	Bucket    string
	Region    string
	Endpoint  string // 留空时使用 AWS 官方端点；兼容 MinIO 等自建服务
	AccessKey string
	SecretKey string
	BasePath  string // 所有文档键统一加上的对象键前缀
}

// S3Provider 实现了 IBlobProvider 接口，把文档存为桶内的 JSON 对象。
type S3Provider struct {
	opts   S3Options
	client *s3.Client
}

// NewS3Provider 是 S3Provider 的构造函数。
func NewS3Provider(ctx context.Context, opts S3Options) (IBlobProvider, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("S3 配置缺少存储桶名称")
	}
	if opts.AccessKey == "" || opts.SecretKey == "" {
		return nil, fmt.Errorf("S3 配置缺少 AccessKey 或 SecretKey")
	}

	region := opts.Region
	if region == "" {
		region = "us-east-1"
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("加载 S3 配置失败: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			// 自建 S3 兼容服务（如 MinIO）通常只支持 path-style 访问
			o.UsePathStyle = true
		}
	})

	log.Printf("[S3] 驱动初始化完成 - 桶: %s, 区域: %s", opts.Bucket, region)
	return &S3Provider{opts: opts, client: client}, nil
}

// objectKey 把文档键转换为桶内对象键
func (p *S3Provider) objectKey(key string) string {
	return path.Join(strings.Trim(p.opts.BasePath, "/"), key+".json")
}

func (p *S3Provider) GetJSON(ctx context.Context, key string) ([]byte, error) {
	out, err := p.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.opts.Bucket),
		Key:    aws.String(p.objectKey(key)),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("读取 S3 对象 '%s' 失败: %w", p.objectKey(key), err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("读取 S3 响应体失败: %w", err)
	}
	return data, nil
}

func (p *S3Provider) SetJSON(ctx context.Context, key string, data []byte) error {
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.opts.Bucket),
		Key:         aws.String(p.objectKey(key)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("写入 S3 对象 '%s' 失败: %w", p.objectKey(key), err)
	}
	log.Printf("[S3] 已写入对象 '%s'，大小: %d bytes", p.objectKey(key), len(data))
	return nil
}

func (p *S3Provider) Exists(ctx context.Context, key string) (bool, error) {
	_, err := p.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(p.opts.Bucket),
		Key:    aws.String(p.objectKey(key)),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("检查 S3 对象 '%s' 失败: %w", p.objectKey(key), err)
	}
	return true, nil
}
