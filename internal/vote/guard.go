package vote

import (
	"errors"

	"gorm.io/gorm"
)

// HasVoted は指定の (端末識別子, 年度) にEvaluation行が既に存在するかを返す。
// 読み取り専用で副作用は無い。ストレージエラーはそのまま呼び出し側へ伝播させ、
// 「未投票」と誤魔化すことはしない。
//
// 注意: このチェックと後続の挿入を別々に行うと、同一端末からのほぼ同時の送信が
// 両方ともチェックを通過し得る。呼び出し側（SubmitBallot）はチェックと一括挿入を
// 単一トランザクション内で実行して競合を閉じている。
func HasVoted(tx *gorm.DB, fingerprint string, eventYear int) (bool, error) {
	var existing Evaluation
	err := tx.Select("id").
		Where("fingerprint = ? AND event_year = ?", fingerprint, eventYear).
		Take(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
