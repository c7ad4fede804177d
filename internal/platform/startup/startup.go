package startup

import (
	"fmt"

	"github.com/matsuyama952/touhyou-system/internal/criteria"
	"github.com/matsuyama952/touhyou-system/internal/department"
	"github.com/matsuyama952/touhyou-system/internal/event"
	"github.com/matsuyama952/touhyou-system/internal/platform/config"
	"github.com/matsuyama952/touhyou-system/internal/vote"
)

// InitializeApplication はアプリ初回起動時の初期化の総入口。
// 各モジュールを依存順に初期化する。
func InitializeApplication(cfg *config.Config) error {
	fmt.Println("アプリケーションの初期化を開始します...")

	if err := department.PrimeModule(); err != nil {
		return err
	}
	if err := criteria.PrimeModule(); err != nil {
		return err
	}
	if err := event.PrimeModule(cfg.Event); err != nil {
		return err
	}
	if err := vote.PrimeModule(); err != nil {
		return err
	}

	fmt.Println("アプリケーションの初期化が完了しました！")
	return nil
}

// RebuildCache はRedis再起動後にキャッシュを再構築する。
// 投票者SetはSQLiteの事実テーブルから作り直す。ランキングキャッシュは
// TTLが短いため、古い内容は放置しても自然に失効する。
func RebuildCache() error {
	fmt.Println("キャッシュのホット再構築を開始します...")

	if err := vote.WarmupCache(); err != nil {
		return err
	}

	fmt.Println("キャッシュのホット再構築が完了しました。")
	return nil
}
