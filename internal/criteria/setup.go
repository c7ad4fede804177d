package criteria

import (
	"fmt"

	"github.com/matsuyama952/touhyou-system/internal/platform/database"
)

// PrimeModule はcriteriaモジュールのデータベースとメモリ倉庫を初期化する
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
	if err := database.DB.AutoMigrate(&Criterion{}); err != nil {
		return fmt.Errorf("criteriaテーブルをマイグレーションできません: %w", err)
	}
	fmt.Println("Criterionテーブルのマイグレーションに成功しました。")
	return nil
}

// EnsureSeedData はテーブルが空の場合のみ既定の評価項目を投入する。
func EnsureSeedData() error {
	var count int64
	if err := database.DB.Model(&Criterion{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []Criterion{
		{
			ID:           "criteria-1",
			Name:         "Philosophy（理念・目的）\nカンパニー・部署の存在意義、ビジョンへの共感度。",
			DisplayOrder: 1,
			IsActive:     true,
		},
		{
			ID:           "criteria-2",
			Name:         "Profession（仕事・事業）\n事業内容や提供している商品・サービスの独自性や競争力。\n市場における成長性や将来性。\n具体的な仕事内容や、そこで得られるスキル・経験の魅力度。",
			DisplayOrder: 2,
			IsActive:     true,
		},
		{
			ID:           "criteria-3",
			Name:         "People（人材・風土）\n一緒に働く人々の人柄やチームワーク。\nカンパニー・事業部の文化や風土が自分に合っているか。\n活躍している社員の具体的なイメージができるか。\n一緒に働きたいと感じるか。",
			DisplayOrder: 3,
			IsActive:     true,
		},
		{
			ID:           "criteria-4",
			Name:         "Privilege（特権・待遇）\n昇格の機会や仕事の裁量権。\nここで働くことで得られる報酬や経験等の魅力度。",
			DisplayOrder: 4,
			IsActive:     true,
		},
	}
	if err := database.DB.Create(&defaults).Error; err != nil {
		return fmt.Errorf("評価項目の初期データを投入できません: %w", err)
	}
	fmt.Printf("評価項目の初期データを %d 件投入しました。\n", len(defaults))
	return nil
}
