package criteria

import (
	"fmt"

	"github.com/matsuyama952/touhyou-system/internal/platform/database"
)

// repository はcriteriaモジュールの中央データ倉庫。
// 有効な評価項目のみを表示順で保持する。起動後は読み取り専用。
type repository struct {
	idToIndex map[string]int
	active    []Criterion // DisplayOrder昇順、IsActive=trueのみ
}

var globalRepository *repository

// InitializeRepository はSQLiteから有効な評価項目を読み込み、メモリ倉庫を初期化する。
func InitializeRepository() error {
	var criteriaFromDB []Criterion
	if err := database.DB.Where("is_active = ?", true).Order("display_order asc").Find(&criteriaFromDB).Error; err != nil {
		return fmt.Errorf("SQLiteから評価項目データを読み込めません: %w", err)
	}

	size := len(criteriaFromDB)
	if size == 0 {
		return fmt.Errorf("有効な評価項目が無いため、倉庫を初期化できません")
	}

	globalRepository = &repository{
		idToIndex: make(map[string]int, size),
		active:    criteriaFromDB,
	}
	for i, cr := range criteriaFromDB {
		globalRepository.idToIndex[cr.ID] = i
	}

	fmt.Printf("評価項目倉庫 (Repository) の初期化に成功しました。%d 件の有効な項目を読み込みました。\n", size)
	return nil
}

// Active は有効な評価項目を表示順で返す。
func Active() []Criterion {
	return globalRepository.active
}

// GetByID はIDで有効な評価項目を引く。
func GetByID(id string) (Criterion, bool) {
	index, ok := globalRepository.idToIndex[id]
	if !ok {
		return Criterion{}, false
	}
	return globalRepository.active[index], true
}

// Count は有効な評価項目数を返す。
func Count() int {
	return len(globalRepository.active)
}
