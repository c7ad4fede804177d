package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/matsuyama952/touhyou-system/api"
	"github.com/matsuyama952/touhyou-system/internal/platform/config"
	"github.com/matsuyama952/touhyou-system/internal/platform/database"
	"github.com/matsuyama952/touhyou-system/internal/platform/health"
	"github.com/matsuyama952/touhyou-system/internal/platform/shutdown"
	"github.com/matsuyama952/touhyou-system/internal/platform/startup"
	"github.com/matsuyama952/touhyou-system/pkg/lifecycle"
)

func main() {
	// 1. 設定の読み込み
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("設定の読み込みに失敗しました: %v", err))
	}

	// 2. ストレージとキャッシュの初期化
	database.InitDB(cfg.Database.Sqlite)
	database.InitRedis(cfg.Database.Redis)

	// 3. ブロッキングで初期Run IDを取得する
	health.InitializeRunID()

	// 4. アプリ初回起動の初期化フロー
	if err := startup.InitializeApplication(cfg); err != nil {
		panic(fmt.Sprintf("アプリの初期化に失敗したため起動できません: %v", err))
	}

	// 5. 起動直後に一度ヘルスチェックを実行する
	fmt.Println("起動後ヘルスチェックを実行しています...")
	health.PerformCheck()

	// 6. バックグラウンドの継続的ヘルスチェッカーを起動する
	gracefulMgr := lifecycle.NewManager()
	forcefulMgr := lifecycle.NewManager()
	healthHandle, err := gracefulMgr.NewServiceHandle("redis-health-checker")
	if err != nil {
		panic(fmt.Sprintf("ヘルスチェッカーの登録に失敗しました: %v", err))
	}
	go health.StartRedisHealthCheck(healthHandle)

	// 7. Ginエンジンの構築
	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.Cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(r)

	// 8. HTTPサーバーの起動と優雅な停止の編成
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	go func() {
		fmt.Printf("サーバーの準備が整いました。%s で待ち受けます\n", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic("サーバーの起動に失敗しました: " + err.Error())
		}
	}()

	coordinator := shutdown.NewCoordinator(gracefulMgr, forcefulMgr)
	coordinator.ListenForSignalsAndShutdown(server)
}
