package criteria

import "time"

// Criterion はデータベース上の評価項目を定義する。
// Name にはタイトルに続けて全角括弧の補足や改行区切りの説明文を含められる。
// 例: "Philosophy（理念・目的）\nカンパニー・部署の存在意義、ビジョンへの共感度。"
type Criterion struct {
	// ID は評価項目の安定した識別子。例: "criteria-1"
	ID string `gorm:"primarykey;type:varchar(64)" json:"id"`

	// Name は評価項目名（タイトル＋説明）
	Name string `gorm:"not null" json:"name"`

	// DisplayOrder は一覧での表示順
	DisplayOrder int `gorm:"index" json:"displayOrder"`

	// IsActive が真の項目のみ投票と集計に参加する
	IsActive bool `gorm:"index" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName はテーブル名を明示する
func (Criterion) TableName() string {
	return "evaluation_criteria"
}
