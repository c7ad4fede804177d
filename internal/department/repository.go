package department

import (
	"fmt"

	"github.com/matsuyama952/touhyou-system/internal/platform/database"
)

// repository はdepartmentモジュールの中央データ倉庫。
// 部署はイベント中不変なので、起動時にメモリへ読み込んだ後は読み取り専用。
type repository struct {
	idToIndex map[string]int
	ordered   []Department // DisplayOrder昇順
}

// globalRepository は倉庫のプライベートなシングルトン
var globalRepository *repository

// InitializeRepository はSQLiteから部署データを読み込み、メモリ倉庫を初期化する。
// アプリ起動時に一度だけ呼ぶこと。
func InitializeRepository() error {
	var departmentsFromDB []Department
	if err := database.DB.Order("display_order asc").Find(&departmentsFromDB).Error; err != nil {
		return fmt.Errorf("SQLiteから部署データを読み込めません: %w", err)
	}

	size := len(departmentsFromDB)
	if size == 0 {
		return fmt.Errorf("部署データが空のため、倉庫を初期化できません")
	}

	globalRepository = &repository{
		idToIndex: make(map[string]int, size),
		ordered:   departmentsFromDB,
	}
	for i, d := range departmentsFromDB {
		globalRepository.idToIndex[d.ID] = i
	}

	fmt.Printf("部署倉庫 (Repository) の初期化に成功しました。%d 件の部署を読み込みました。\n", size)
	return nil
}

// All は表示順に並んだ全部署を返す。起動後は読み取り専用なのでスレッドセーフ。
func All() []Department {
	return globalRepository.ordered
}

// GetByID はIDで部署を引く。存在しなければ ok=false を返す。
func GetByID(id string) (Department, bool) {
	index, ok := globalRepository.idToIndex[id]
	if !ok {
		return Department{}, false
	}
	return globalRepository.ordered[index], true
}

// Count は登録済みの部署数を返す。
func Count() int {
	return len(globalRepository.ordered)
}
