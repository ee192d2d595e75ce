package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"influenceos-backend/internal/config"
	"influenceos-backend/internal/handler"
	"influenceos-backend/internal/model"
	"influenceos-backend/internal/service"
	"influenceos-backend/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "./configs/config.yaml", "配置文件路径")
	flag.Parse()

	// 加载配置，凭证缺失时直接退出
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化日志
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	// 初始化上游客户端与服务
	ctx := context.Background()
	chatModel := model.NewChatModel(ctx)
	imageClient := model.NewImageClient(cfg.OpenAI)
	replicateClient := model.NewReplicateClient(cfg.Replicate)

	agentHandler := handler.NewAgentHandler(service.NewAgentService(chatModel))
	studioHandler := handler.NewStudioHandler(service.NewStudioService(imageClient))
	strategyHandler := handler.NewStrategyHandler(service.NewStrategyService(chatModel))
	videoHandler := handler.NewVideoHandler(service.NewVideoService(replicateClient))

	// 创建路由
	router := setupRouter(cfg, agentHandler, studioHandler, strategyHandler, videoHandler)

	// 创建HTTP服务器
	server := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	// 启动服务器
	go func() {
		logger.Infof("服务器启动在端口 %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("服务器启动失败: %v", err)
		}
	}()

	// 等待信号优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("服务器正在关闭...")
	if err := server.Close(); err != nil {
		logger.Errorf("服务器关闭失败: %v", err)
	}
	logger.Info("服务器已关闭")
}

func setupRouter(
	cfg *config.Config,
	agentHandler *handler.AgentHandler,
	studioHandler *handler.StudioHandler,
	strategyHandler *handler.StrategyHandler,
	videoHandler *handler.VideoHandler,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// 中间件
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// CORS配置
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           time.Duration(cfg.CORS.MaxAge) * time.Second,
	}
	router.Use(cors.New(corsConfig))

	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Unix(),
		})
	})

	// API路由
	api := router.Group("/api")
	{
		api.POST("/agent", agentHandler.Chat)
		api.POST("/images", studioHandler.Generate)
		api.POST("/strategy", strategyHandler.Generate)
		api.POST("/video", videoHandler.Create)
	}

	return router
}
