package vote

import "time"

// スコアの許容範囲
const (
	MinScore = 1
	MaxScore = 10
)

// Evaluation は投票1票分の事実レコードを定義する。
// 1人の投票（バロット）は (部署 × 有効な評価項目) ごとに1行、このテーブルへ
// まとめて追記される。アプリケーションからの更新・削除は行わない（追記専用）。
type Evaluation struct {
	ID uint `gorm:"primarykey" json:"id"`

	// DepartmentID は評価対象の部署ID
	DepartmentID string `gorm:"index;not null" json:"departmentId"`

	// CriteriaID は評価項目ID
	CriteriaID string `gorm:"index;not null" json:"criteriaId"`

	// Score は1〜10の整数スコア。挿入前に検証される
	Score int `gorm:"not null" json:"score"`

	// Fingerprint は投票者の端末識別子。単体では一意キーにならない
	Fingerprint string `gorm:"index;not null" json:"fingerprint"`

	// EventYear はイベント開催年度。集計と二重投票チェックの分割キー
	EventYear int `gorm:"index;not null" json:"eventYear"`

	CreatedAt time.Time `json:"createdAt"`
}
