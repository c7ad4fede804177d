package shutdown

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matsuyama952/touhyou-system/internal/platform/database"
	"github.com/matsuyama952/touhyou-system/pkg/lifecycle"
)

// Coordinator はアプリケーションの優雅な停止フローを編成する。
// 外部で生成されたライフサイクルマネージャを受け取り、それを使って停止を調停する。
type Coordinator struct {
	GracefulManager *lifecycle.Manager
	ForcefulManager *lifecycle.Manager
}

// NewCoordinator は新しい停止コーディネータを生成する。
func NewCoordinator(gracefulMgr, forcefulMgr *lifecycle.Manager) *Coordinator {
	return &Coordinator{
		GracefulManager: gracefulMgr,
		ForcefulManager: forcefulMgr,
	}
}

// ListenForSignalsAndShutdown はシグナルを監視し、停止フローの完了までブロックする。
func (c *Coordinator) ListenForSignalsAndShutdown(server *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// 停止シグナルまでブロック
	<-sigChan
	fmt.Println("\n停止シグナルを受信しました。優雅な停止を開始します...")

	// HTTPサーバーを閉じ、処理中のリクエストの完了を待つ
	httpTimeout := 15 * time.Second
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), httpTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Printf("HTTPサーバーの停止エラー: %v\n", err)
	} else {
		fmt.Println("HTTPサーバーを停止しました。")
	}

	// --- 第一段階: 優雅な停止 ---
	gracefulTimeout := 30 * time.Second
	fmt.Printf("第一段階の停止: 最大 %v までタスクの完了を待ちます...\n", gracefulTimeout)
	c.GracefulManager.Shutdown()

	remainingServices := c.GracefulManager.WaitWithTimeout(gracefulTimeout)
	if len(remainingServices) == 0 {
		fmt.Println("全サービスが第一段階で停止しました。")
	} else {
		// --- 第二段階: 強制停止 ---
		forcefulTimeout := 1 * time.Second
		fmt.Printf("第一段階がタイムアウトしました。第二段階の停止シグナルを送信します (最大 %v 待機)...\n", forcefulTimeout)
		c.ForcefulManager.Shutdown()
		c.ForcefulManager.WaitWithTimeout(forcefulTimeout)
	}

	// --- 最終処理: ストレージの後始末 ---
	if database.RDB != nil {
		if err := database.RDB.Close(); err != nil {
			fmt.Printf("Redisクライアントの終了エラー: %v\n", err)
		}
	}
	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			fmt.Printf("データベースハンドルの終了エラー: %v\n", err)
		}
	}

	fmt.Println("優雅な停止が完了しました。")
}
