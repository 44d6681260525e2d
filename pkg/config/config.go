/*
 * @Description: 统一配置管理（手动加载，文件 + 环境变量覆盖）
 * @Author: 日落噪音
 * @Date: 2026-07-04 10:30:18
 * @LastEditTime: 2026-08-18 14:22:51
 * @LastEditors: 日落噪音
 */
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-ini/ini"
	"github.com/spf13/viper"
)

// 定义所有已知的配置键
var allKeys = []string{
	KeyServerPort, KeyServerDebug,
	KeyBlobType, KeyBlobStoreName, KeyBlobLocalDir,
	KeyS3Bucket, KeyS3Region, KeyS3Endpoint, KeyS3AccessKey, KeyS3SecretKey, KeyS3BasePath,
	KeyAdminUsername, KeyAdminPassword,
}

const (
	KeyServerPort  = "System.Port"
	KeyServerDebug = "System.Debug"

	// Blob.Type 可选值：netlify、s3、local
	KeyBlobType      = "Blob.Type"
	KeyBlobStoreName = "Blob.StoreName"
	KeyBlobLocalDir  = "Blob.LocalDir"

	KeyS3Bucket    = "S3.Bucket"
	KeyS3Region    = "S3.Region"
	KeyS3Endpoint  = "S3.Endpoint"
	KeyS3AccessKey = "S3.AccessKey"
	KeyS3SecretKey = "S3.SecretKey"
	KeyS3BasePath  = "S3.BasePath"

	KeyAdminUsername = "Admin.Username"
	KeyAdminPassword = "Admin.Password"
)

type Config struct {
	vp *viper.Viper
}

// NewConfig 手动加载配置：先读 data/conf.ini 作为默认值，再用环境变量覆盖
func NewConfig() (*Config, error) {
	vp := viper.New()
	filePath := "data/conf.ini"

	// --- 步骤 1: 使用 go-ini 从文件加载配置 (作为默认值) ---
	iniCfg, err := ini.Load(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("提示: 未找到 %s，将创建默认配置文件。", filePath)
			if err := createDefaultConfigFile(filePath); err != nil {
				log.Printf("警告: 创建默认配置文件失败: %v，将仅依赖环境变量或内部默认值。", err)
			} else {
				log.Printf("✅ 已创建默认配置文件: %s", filePath)
				iniCfg, err = ini.Load(filePath)
				if err != nil {
					log.Printf("警告: 重新加载配置文件失败: %v", err)
				}
			}
		} else {
			return nil, fmt.Errorf("错误: 解析配置文件 '%s' 失败: %w", filePath, err)
		}
	}

	// 如果文件成功加载，则将其中的值全部设置到 Viper 中
	if iniCfg != nil {
		for _, section := range iniCfg.Sections() {
			for _, key := range section.Keys() {
				// 构建 Viper 使用的 key，例如 "Blob.Type"
				viperKey := fmt.Sprintf("%s.%s", section.Name(), key.Name())
				// 特殊处理默认分区 "DEFAULT"
				if section.Name() == "DEFAULT" {
					viperKey = key.Name()
				}
				vp.Set(viperKey, key.Value())
			}
		}
		log.Println("从 data/conf.ini 文件加载了默认配置。")
	}

	// --- 步骤 2: 手动检查并覆盖环境变量 ---
	envReplacer := strings.NewReplacer(".", "_")
	envPrefix := "SOAPCARD"

	for _, key := range allKeys {
		// 构建环境变量名，例如 SOAPCARD_BLOB_TYPE
		envVarName := fmt.Sprintf("%s_%s", envPrefix, envReplacer.Replace(strings.ToUpper(key)))

		if value, found := os.LookupEnv(envVarName); found {
			vp.Set(key, value)
			log.Printf("发现环境变量: %s, 已覆盖配置 '%s'。", envVarName, key)
		}
	}

	log.Println("✅ 配置加载器初始化完成。")
	return &Config{vp: vp}, nil
}

func (c *Config) GetString(key string) string {
	return c.vp.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.vp.GetInt(key)
}

func (c *Config) GetBool(key string) bool {
	return c.vp.GetBool(key)
}

// Set 覆盖单个配置项，主要用于测试
func (c *Config) Set(key string, value interface{}) {
	c.vp.Set(key, value)
}

// createDefaultConfigFile 创建默认的配置文件
func createDefaultConfigFile(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("创建目录失败: %w", err)
	}

	// 默认配置内容（使用本地 Blob 驱动，便于零配置启动）
	defaultConfig := `[System]
Port = 8080
Debug = false

# Blob 存储配置
# Type 可选: netlify / s3 / local
# netlify 驱动额外依赖环境变量 NETLIFY_TOKEN 和 NETLIFY_SITE_ID
[Blob]
Type = local
StoreName = korea-soap-cards
LocalDir = data/blobs

# S3 兼容存储配置（Type = s3 时生效）
[S3]
Bucket =
Region =
Endpoint =
AccessKey =
SecretKey =
BasePath =

# 管理员登录凭证（源站为硬编码值，此处允许通过配置覆盖）
[Admin]
Username = sunsetnoise
Password = 123456
`

	if err := os.WriteFile(filePath, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("写入默认配置文件失败: %w", err)
	}
	return nil
}
