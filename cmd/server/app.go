/*
 * @Description:
 * @Author: 日落噪音
 * @Date: 2026-07-12 09:02:18
 * @LastEditTime: 2026-08-25 16:40:52
 * @LastEditors: 日落噪音
 */
// soapcard-app/cmd/server/app.go
package server

import (
	"context"
	"embed"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/sunsetnoise/soapcard-app/internal/app/middleware"
	"github.com/sunsetnoise/soapcard-app/internal/infra/persistence/cardstore"
	"github.com/sunsetnoise/soapcard-app/internal/infra/router"
	"github.com/sunsetnoise/soapcard-app/internal/infra/storage"
	"github.com/sunsetnoise/soapcard-app/pkg/config"
	"github.com/sunsetnoise/soapcard-app/pkg/constant"
	"github.com/sunsetnoise/soapcard-app/pkg/domain/repository"
	auth_handler "github.com/sunsetnoise/soapcard-app/pkg/handler/auth"
	bilibili_handler "github.com/sunsetnoise/soapcard-app/pkg/handler/bilibili"
	card_handler "github.com/sunsetnoise/soapcard-app/pkg/handler/card"
	"github.com/sunsetnoise/soapcard-app/pkg/service/auth"
	"github.com/sunsetnoise/soapcard-app/pkg/service/bilibili"
	card_service "github.com/sunsetnoise/soapcard-app/pkg/service/card"
)

// App 结构体，封装应用的所有核心组件
type App struct {
	cfg      *config.Config
	engine   *gin.Engine
	cardRepo repository.CardRepository
	cardSvc  card_service.Service
	mw       *middleware.Middleware
}

// NewApp 组装整个应用：配置 → Blob 驱动 → 仓储 → 服务 → 处理器 → 路由
func NewApp(content embed.FS) (*App, func(), error) {
	// .env 文件不存在时静默跳过，线上环境直接注入环境变量
	if err := godotenv.Load(); err == nil {
		log.Println("从 .env 文件加载了环境变量。")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}

	if cfg.GetBool(config.KeyServerDebug) {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// 按配置选择 Blob 存储驱动
	provider, err := newBlobProvider(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("初始化 Blob 存储驱动失败: %w", err)
	}

	// 仓储与服务
	cardRepo := cardstore.NewCardRepository(provider)
	cardSvc := card_service.NewService(cardRepo)
	sessionSvc := auth.NewSessionService(
		cfg.GetString(config.KeyAdminUsername),
		cfg.GetString(config.KeyAdminPassword),
	)
	videoSvc := bilibili.NewVideoInfoService()

	// 处理器与中间件
	mw := middleware.NewMiddleware(sessionSvc)
	cardHandler := card_handler.NewHandler(cardSvc)
	authHandler := auth_handler.NewAuthHandler(sessionSvc)
	bilibiliHandler := bilibili_handler.NewBilibiliHandler(videoSvc)

	// 路由
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery(), middleware.Cors())

	appRouter := router.NewRouter(cardHandler, authHandler, bilibiliHandler, mw)
	appRouter.SetupRoutes(engine)
	appRouter.SetupFrontendRoutes(engine, content)

	app := &App{
		cfg:      cfg,
		engine:   engine,
		cardRepo: cardRepo,
		cardSvc:  cardSvc,
		mw:       mw,
	}

	// 当前没有需要显式释放的资源，保留 cleanup 挂钩以便将来扩展
	cleanup := func() {
		log.Println("应用已退出。")
	}

	return app, cleanup, nil
}

// newBlobProvider 根据配置实例化 Blob 存储驱动
func newBlobProvider(cfg *config.Config) (storage.IBlobProvider, error) {
	storeName := cfg.GetString(config.KeyBlobStoreName)
	if storeName == "" {
		storeName = constant.DefaultStoreName
	}

	blobType := cfg.GetString(config.KeyBlobType)
	switch blobType {
	case "netlify":
		// Token 和站点 ID 的变量名与源站部署保持一致
		return storage.NewNetlifyProvider(
			os.Getenv("NETLIFY_TOKEN"),
			os.Getenv("NETLIFY_SITE_ID"),
			storeName,
		), nil
	case "s3":
		return storage.NewS3Provider(context.Background(), storage.S3Options{
			Bucket:    cfg.GetString(config.KeyS3Bucket),
			Region:    cfg.GetString(config.KeyS3Region),
			Endpoint:  cfg.GetString(config.KeyS3Endpoint),
			AccessKey: cfg.GetString(config.KeyS3AccessKey),
			SecretKey: cfg.GetString(config.KeyS3SecretKey),
			BasePath:  cfg.GetString(config.KeyS3BasePath),
		})
	case "local", "":
		dir := cfg.GetString(config.KeyBlobLocalDir)
		if dir == "" {
			dir = "data/blobs"
		}
		log.Printf("[App] 使用本地 Blob 驱动，目录: %s", dir)
		return storage.NewLocalProvider(dir), nil
	default:
		return nil, fmt.Errorf("未知的 Blob 存储类型: %q", blobType)
	}
}

func (a *App) Config() *config.Config {
	return a.cfg
}

func (a *App) Engine() *gin.Engine {
	return a.engine
}

// CardRepository 返回卡片仓储实例
func (a *App) CardRepository() repository.CardRepository {
	return a.cardRepo
}

// CardService 返回卡片服务实例
func (a *App) CardService() card_service.Service {
	return a.cardSvc
}

func (a *App) Middleware() *middleware.Middleware {
	return a.mw
}

func (a *App) Run() error {
	port := a.cfg.GetString(config.KeyServerPort)
	if port == "" {
		port = "8080"
	}
	fmt.Printf("应用程序启动成功，正在监听端口: %s\n", port)

	return a.engine.Run(":" + port)
}
