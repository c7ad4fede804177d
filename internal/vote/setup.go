package vote

import (
	"fmt"

	"github.com/matsuyama952/touhyou-system/internal/platform/database"
)

// PrimeModule はvoteモジュールのデータベースを初期化する
func PrimeModule() error {
	if err := MigrateDB(); err != nil {
		return err
	}
	// Redisが使える場合は投票者Setを事実テーブルから予熱しておく
	if database.IsRedisHealthy() {
		if err := WarmupCache(); err != nil {
			return err
		}
	}
	return nil
}

// MigrateDB はテーブル構造を自動マイグレーションする
func MigrateDB() error {
	if err := database.DB.AutoMigrate(&Evaluation{}); err != nil {
		return fmt.Errorf("evaluationsテーブルをマイグレーションできません: %w", err)
	}
	fmt.Println("Evaluationテーブルのマイグレーションに成功しました。")
	return nil
}
