package health

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/matsuyama952/touhyou-system/internal/platform/database"
	"github.com/matsuyama952/touhyou-system/internal/platform/startup"
	"github.com/matsuyama952/touhyou-system/pkg/lifecycle"
)

const (
	checkInterval = 5 * time.Second
	pingTimeout   = 2 * time.Second
)

// getRedisRunID はRedisサーバー情報からrun_idを抽出する
func getRedisRunID() (string, error) {
	ctx, cancel := context.WithTimeout(database.Ctx, pingTimeout)
	defer cancel()
	info, err := database.RDB.Info(ctx, "server").Result()
	if err != nil {
		return "", err
	}
	re := regexp.MustCompile(`run_id:([a-f0-9]+)`)
	matches := re.FindStringSubmatch(info)
	if len(matches) < 2 {
		return "", fmt.Errorf("Redis INFOからrun_idを見つけられません")
	}
	return matches[1], nil
}

// InitializeRunID はアプリ起動時に一度だけ実行し、初期のrun_idを設定する。
func InitializeRunID() {
	fmt.Println("初期のRedis Run IDを取得しています...")
	runID, err := getRedisRunID()
	if err != nil {
		panic(fmt.Sprintf("起動時にRedis Run IDを取得できません。Redisサービスを確認してください: %v", err))
	}
	database.SetInitialRunID(runID)
	fmt.Printf("初期Redis Run IDの取得に成功しました: %s\n", runID)
}

// triggerAtomicRebuild はキャッシュの再構築を一度実行し、その間にRedisが
// 再起動していないことをrun_idで確認する。確認できた場合のみ成功とみなす。
func triggerAtomicRebuild(idBeforeRebuild string) bool {
	fmt.Println("ヘルスチェック: キャッシュのホット再構築を実行します...")
	if err := startup.RebuildCache(); err != nil {
		fmt.Printf("ヘルスチェックエラー: キャッシュ再構築に失敗しました: %v\n", err)
		return false
	}

	idAfterRebuild, err := getRedisRunID()
	if err != nil {
		fmt.Println("ヘルスチェックエラー: 再構築後にRedisへ接続できないため、再構築は無効です。")
		return false
	}

	if idBeforeRebuild != idAfterRebuild {
		fmt.Printf("ヘルスチェックエラー: 再構築中にRedisの再起動を検出しました (run_id: %s -> %s)。再構築は無効です。\n", idBeforeRebuild, idAfterRebuild)
		return false
	}

	fmt.Println("ヘルスチェック: キャッシュ再構築が成功し、原子性の確認も通過しました。")
	return true
}

// PerformCheck はヘルスチェックと必要な修復を一度だけ実行する。
func PerformCheck() {
	currentRunID, err := getRedisRunID()
	if err != nil {
		// Redisへ接続できないので利用不可として記録する
		database.UpdateStatus(false, "")
		return
	}

	lastKnownRunID := database.GetLastKnownRunID()

	if currentRunID != lastKnownRunID {
		// Redisの再起動を検出。キャッシュを原子的に再構築する
		if triggerAtomicRebuild(currentRunID) {
			database.UpdateStatus(true, currentRunID)
		} else {
			database.UpdateStatus(false, "")
		}
	} else {
		database.UpdateStatus(true, currentRunID)
	}
}

// StartRedisHealthCheck はバックグラウンドで定期的にヘルスチェックを実行する。
// 停止シグナルはライフサイクルハンドル経由で受け取る。
func StartRedisHealthCheck(handle *lifecycle.Handle) {
	defer handle.Close()
	fmt.Println("Redisヘルスチェッカーを起動しました。")

	for {
		if err := handle.Sleep(checkInterval); err != nil {
			fmt.Println("Redisヘルスチェッカーを停止します。")
			return
		}
		PerformCheck()
	}
}
