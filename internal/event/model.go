package event

import "gorm.io/gorm"

// Config はイベント年度ごとの設定を定義する。
// 年度ごとに高々1件が有効(IsActive)であることを想定する。
type Config struct {
	gorm.Model

	// Year はイベントの開催年度。集計と二重投票チェックの分割キーになる
	Year int `gorm:"uniqueIndex;not null" json:"year"`

	// TargetEvaluators は進捗表示用の評価者目標人数
	TargetEvaluators int `json:"targetEvaluators"`

	// IsActive が真の設定のみ参照される
	IsActive bool `json:"isActive"`
}

// TableName はテーブル名を明示する
func (Config) TableName() string {
	return "event_configs"
}
