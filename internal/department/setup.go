package department

import (
	"fmt"

	"github.com/matsuyama952/touhyou-system/internal/platform/database"
)

// PrimeModule はdepartmentモジュールのデータベースとメモリ倉庫を初期化する
func PrimeModule() error {
	if err := MigrateDB(); err != nil {
		return err
	}
	if err := EnsureSeedData(); err != nil {
		return err
	}
	return InitializeRepository()
}

// MigrateDB はテーブル構造を自動マイグレーションする
func MigrateDB() error {
	if err := database.DB.AutoMigrate(&Department{}); err != nil {
		return fmt.Errorf("departmentテーブルをマイグレーションできません: %w", err)
	}
	fmt.Println("Departmentテーブルのマイグレーションに成功しました。")
	return nil
}

// EnsureSeedData はテーブルが空の場合のみ既定の部署データを投入する。
// 本来のシードスクリプトの代替として、初回起動を成立させるための最小投入。
func EnsureSeedData() error {
	var count int64
	if err := database.DB.Model(&Department{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []Department{
		{ID: "consumer", Name: "コンシューマーカンパニー", DisplayOrder: 1, ImageURL: "https://placehold.co/400x300/00d4ff/ffffff?text=Consumer"},
		{ID: "corporate-sales", Name: "コーポレートセールスカンパニー", DisplayOrder: 2, ImageURL: "https://placehold.co/400x300/00d4ff/ffffff?text=Corporate"},
		{ID: "ssd", Name: "SSDカンパニー", DisplayOrder: 3, ImageURL: "https://placehold.co/400x300/00d4ff/ffffff?text=SSD"},
		{ID: "bbc", Name: "BBC", DisplayOrder: 4, ImageURL: "https://placehold.co/400x300/00d4ff/ffffff?text=BBC"},
		{ID: "unneon", Name: "Unneon", DisplayOrder: 5, ImageURL: "https://placehold.co/400x300/00d4ff/ffffff?text=Unneon"},
	}
	if err := database.DB.Create(&defaults).Error; err != nil {
		return fmt.Errorf("部署の初期データを投入できません: %w", err)
	}
	fmt.Printf("部署の初期データを %d 件投入しました。\n", len(defaults))
	return nil
}
