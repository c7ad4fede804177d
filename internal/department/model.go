package department

import "time"

// Department はデータベース上の部署（カンパニー）を定義する。
// イベント期間中は不変で、シード時にのみ作成される。
type Department struct {
	// ID は部署を識別する安定したスラッグ。例: "consumer"
	ID string `gorm:"primarykey;type:varchar(64)" json:"id"`

	// Name は部署の表示名
	Name string `gorm:"not null" json:"name"`

	// ImageURL は部署のイメージ画像への参照
	ImageURL string `json:"imageUrl"`

	// DisplayOrder は一覧での表示順
	DisplayOrder int `gorm:"index" json:"displayOrder"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
