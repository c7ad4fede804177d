package vote

import (
	"errors"

	"github.com/matsuyama952/touhyou-system/internal/platform/database"
	"github.com/matsuyama952/touhyou-system/internal/result"
	"gorm.io/gorm"
)

// ErrAlreadyVoted は同一端末・同一年度の二重投票を表すセンチネルエラー
var ErrAlreadyVoted = errors.New("既に投票済みです")

// ValidationError はリクエスト内容の不備を表す。メッセージはそのまま利用者へ返される。
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// BallotEntry はバロット内の1評価 (部署 × 評価項目 × スコア)
type BallotEntry struct {
	DepartmentID string `json:"departmentId"`
	CriteriaID   string `json:"criteriaId"`
	Score        int    `json:"score"`
}

// BallotRequest は投票者1人分の完全なバロット
type BallotRequest struct {
	Evaluations []BallotEntry `json:"evaluations"`
	Fingerprint string        `json:"fingerprint"`
	EventYear   int           `json:"eventYear"`
}

// validateBallot はバロットを仕様の順序で検証し、最初の不備で打ち切る。
func validateBallot(req *BallotRequest) *ValidationError {
	if len(req.Evaluations) == 0 {
		return &ValidationError{Message: "評価データが必要です"}
	}
	if req.Fingerprint == "" {
		return &ValidationError{Message: "端末識別子が必要です"}
	}
	if req.EventYear <= 0 {
		return &ValidationError{Message: "評価年度が必要です"}
	}
	for _, entry := range req.Evaluations {
		if entry.Score < MinScore || entry.Score > MaxScore {
			return &ValidationError{Message: "スコアは1〜10の範囲で入力してください"}
		}
	}
	return nil
}

// SubmitBallot は投票者1人分のバロットを検証し、全件記録するか全件拒否する。
//
// 二重投票チェックと一括挿入は単一のgormトランザクション内で行う。SQLiteは
// 書き込みを直列化するため、同一端末からのほぼ同時の送信が両方とも
// チェックを通過することはない（check-then-insertの競合窓は閉じている）。
func SubmitBallot(req *BallotRequest) error {
	// 1. 検証（ストレージに触れる前に必ず完了させる）
	if verr := validateBallot(req); verr != nil {
		return verr
	}

	// 2. Redisの投票者Setによる高速な事前チェック（キャッシュヒット時のみ信用）
	if cacheHasVoted(req.Fingerprint, req.EventYear) {
		return ErrAlreadyVoted
	}

	// 3. チェックと一括挿入をトランザクションで原子的に実行する
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		voted, err := HasVoted(tx, req.Fingerprint, req.EventYear)
		if err != nil {
			return err
		}
		if voted {
			return ErrAlreadyVoted
		}

		rows := make([]Evaluation, 0, len(req.Evaluations))
		for _, entry := range req.Evaluations {
			rows = append(rows, Evaluation{
				DepartmentID: entry.DepartmentID,
				CriteriaID:   entry.CriteriaID,
				Score:        entry.Score,
				Fingerprint:  req.Fingerprint,
				EventYear:    req.EventYear,
			})
		}
		// 一括挿入。失敗すればトランザクションごとロールバックされ、
		// 部分的なバロットが永続化されることはない
		return tx.Create(&rows).Error
	})
	if err != nil {
		return err
	}

	// 4. コミット成功後のキャッシュ更新（失敗しても投票自体は成立している）
	cacheMarkVoted(req.Fingerprint, req.EventYear)
	result.InvalidateLeaderboardCache(req.EventYear)

	return nil
}
