package event

import (
	"fmt"
	"time"

	"github.com/matsuyama952/touhyou-system/internal/platform/config"
	"github.com/matsuyama952/touhyou-system/internal/platform/database"
)

// PrimeModule はeventモジュールのデータベースを初期化する
func PrimeModule(cfg config.EventConfig) error {
	if err := MigrateDB(); err != nil {
		return err
	}
	return EnsureSeedData(cfg)
}

// MigrateDB はテーブル構造を自動マイグレーションする
func MigrateDB() error {
	if err := database.DB.AutoMigrate(&Config{}); err != nil {
		return fmt.Errorf("event_configsテーブルをマイグレーションできません: %w", err)
	}
	fmt.Println("EventConfigテーブルのマイグレーションに成功しました。")
	return nil
}

// EnsureSeedData は設定された年度のイベント設定が無ければ作成する。
func EnsureSeedData(cfg config.EventConfig) error {
	year := cfg.Year
	if year == 0 {
		year = time.Now().Year()
	}
	target := cfg.TargetEvaluators
	if target <= 0 {
		target = DefaultTargetEvaluators
	}

	var count int64
	if err := database.DB.Model(&Config{}).Where("year = ?", year).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := Config{Year: year, TargetEvaluators: target, IsActive: true}
	if err := database.DB.Create(&seed).Error; err != nil {
		return fmt.Errorf("%d年度のイベント設定を投入できません: %w", year, err)
	}
	fmt.Printf("%d年度のイベント設定を投入しました（目標評価者数: %d）。\n", year, target)
	return nil
}
