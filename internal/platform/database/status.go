package database

import (
	"fmt"
	"sync"
)

// statusManager はシステムのキャッシュ健全性をスレッドセーフに管理する。
type statusManager struct {
	mu             sync.RWMutex
	isRedisHealthy bool
	lastKnownRunID string
}

// グローバルな状態管理インスタンス
// InitRedisが成功するまでRedisは不健全として扱う
var globalStatus = &statusManager{
	isRedisHealthy: false,
}

// IsRedisHealthy は現在のRedisの健全性を返す。
func IsRedisHealthy() bool {
	globalStatus.mu.RLock()
	defer globalStatus.mu.RUnlock()
	return globalStatus.isRedisHealthy
}

// markRedisAvailable はInitRedis成功時に内部から呼ばれる。
func markRedisAvailable() {
	globalStatus.mu.Lock()
	defer globalStatus.mu.Unlock()
	globalStatus.isRedisHealthy = true
}

// SetInitialRunID はアプリ起動時にmainから呼ばれ、初期のRedis run_idを設定する。
func SetInitialRunID(runID string) {
	globalStatus.mu.Lock()
	defer globalStatus.mu.Unlock()
	globalStatus.lastKnownRunID = runID
}

// UpdateStatus は健全性をスレッドセーフに更新する。
func UpdateStatus(isHealthy bool, newRunID string) {
	globalStatus.mu.Lock()
	defer globalStatus.mu.Unlock()

	// 状態が変化したときだけログを出す
	if globalStatus.isRedisHealthy != isHealthy {
		globalStatus.isRedisHealthy = isHealthy
		if isHealthy {
			fmt.Println("ヘルスチェック: Redisの状態を [利用可能] に更新しました")
		} else {
			fmt.Println("ヘルスチェック警告: Redisの状態を [利用不可] に更新しました")
		}
	}

	// 健全な場合のみ既知のrun_idを更新する
	if isHealthy {
		globalStatus.lastKnownRunID = newRunID
	}
}

// GetLastKnownRunID は既知のrun_idをスレッドセーフに取得する。
func GetLastKnownRunID() string {
	globalStatus.mu.RLock()
	defer globalStatus.mu.RUnlock()
	return globalStatus.lastKnownRunID
}
