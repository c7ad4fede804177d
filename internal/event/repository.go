package event

import (
	"errors"

	"github.com/matsuyama952/touhyou-system/internal/platform/database"
	"gorm.io/gorm"
)

// DefaultTargetEvaluators は設定が見つからない場合の目標評価者数
const DefaultTargetEvaluators = 100

// TargetEvaluatorsForYear は指定年度の有効な設定から目標評価者数を返す。
// 有効な設定が無い年度は既定値(100)を返す。最初に一致した1件を採用する。
func TargetEvaluatorsForYear(year int) (int, error) {
	var cfg Config
	err := database.DB.Where("year = ? AND is_active = ?", year, true).First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DefaultTargetEvaluators, nil
		}
		return 0, err
	}
	return cfg.TargetEvaluators, nil
}
