package vote_test

import (
	"errors"
	"testing"

	"github.com/matsuyama952/touhyou-system/internal/platform/database"
	"github.com/matsuyama952/touhyou-system/internal/testutil"
	"github.com/matsuyama952/touhyou-system/internal/vote"
)

const testYear = 2026

func validBallot(fingerprint string) *vote.BallotRequest {
	return &vote.BallotRequest{
		Evaluations: []vote.BallotEntry{
			{DepartmentID: "d1", CriteriaID: "c1", Score: 8},
			{DepartmentID: "d2", CriteriaID: "c1", Score: 3},
		},
		Fingerprint: fingerprint,
		EventYear:   testYear,
	}
}

func countEvaluations(t *testing.T) int64 {
	t.Helper()
	var count int64
	if err := database.DB.Model(&vote.Evaluation{}).Count(&count).Error; err != nil {
		t.Fatalf("行数の取得に失敗しました: %v", err)
	}
	return count
}

func TestSubmitBallotPersistsAllRows(t *testing.T) {
	testutil.SetupTestDB(t)

	if err := vote.SubmitBallot(validBallot("fp-a")); err != nil {
		t.Fatalf("SubmitBallot failed: %v", err)
	}

	if got := countEvaluations(t); got != 2 {
		t.Errorf("保存された行数 = %d, want 2", got)
	}

	voted, err := vote.HasVoted(database.DB, "fp-a", testYear)
	if err != nil {
		t.Fatalf("HasVoted failed: %v", err)
	}
	if !voted {
		t.Error("送信後はHasVotedがtrueを返すはず")
	}
}

func TestSubmitBallotValidationOrder(t *testing.T) {
	testutil.SetupTestDB(t)

	tests := []struct {
		name    string
		mutate  func(*vote.BallotRequest)
		message string
	}{
		{
			name:    "評価データが空",
			mutate:  func(req *vote.BallotRequest) { req.Evaluations = nil },
			message: "評価データが必要です",
		},
		{
			name: "評価データが空なら識別子エラーより優先される",
			mutate: func(req *vote.BallotRequest) {
				req.Evaluations = nil
				req.Fingerprint = ""
			},
			message: "評価データが必要です",
		},
		{
			name:    "端末識別子が空",
			mutate:  func(req *vote.BallotRequest) { req.Fingerprint = "" },
			message: "端末識別子が必要です",
		},
		{
			name:    "年度が無い",
			mutate:  func(req *vote.BallotRequest) { req.EventYear = 0 },
			message: "評価年度が必要です",
		},
		{
			name:    "スコアが下限未満",
			mutate:  func(req *vote.BallotRequest) { req.Evaluations[1].Score = 0 },
			message: "スコアは1〜10の範囲で入力してください",
		},
		{
			name:    "スコアが上限超過",
			mutate:  func(req *vote.BallotRequest) { req.Evaluations[0].Score = 11 },
			message: "スコアは1〜10の範囲で入力してください",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBallot("fp-validation")
			tt.mutate(req)

			err := vote.SubmitBallot(req)
			var verr *vote.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("ValidationErrorを期待しましたが err = %v", err)
			}
			if verr.Message != tt.message {
				t.Errorf("メッセージ = %q, want %q", verr.Message, tt.message)
			}
		})
	}

	// 検証で弾かれたバロットは1行も書き込まれない
	if got := countEvaluations(t); got != 0 {
		t.Errorf("検証失敗後の行数 = %d, want 0", got)
	}
}

func TestSubmitBallotRejectsDuplicate(t *testing.T) {
	testutil.SetupTestDB(t)

	if err := vote.SubmitBallot(validBallot("fp-dup")); err != nil {
		t.Fatalf("1回目のSubmitBallot failed: %v", err)
	}
	rowsAfterFirst := countEvaluations(t)

	err := vote.SubmitBallot(validBallot("fp-dup"))
	if !errors.Is(err, vote.ErrAlreadyVoted) {
		t.Fatalf("2回目はErrAlreadyVotedを期待しましたが err = %v", err)
	}

	// 行数は1回目の送信分から増えていない
	if got := countEvaluations(t); got != rowsAfterFirst {
		t.Errorf("重複送信後の行数 = %d, want %d", got, rowsAfterFirst)
	}
}

func TestSubmitBallotSameFingerprintDifferentYear(t *testing.T) {
	testutil.SetupTestDB(t)

	if err := vote.SubmitBallot(validBallot("fp-years")); err != nil {
		t.Fatalf("SubmitBallot failed: %v", err)
	}

	// 年度が違えば同じ端末でも投票できる
	nextYear := validBallot("fp-years")
	nextYear.EventYear = testYear + 1
	if err := vote.SubmitBallot(nextYear); err != nil {
		t.Errorf("別年度の送信が拒否されました: %v", err)
	}
}

func TestHasVotedPropagatesStorageError(t *testing.T) {
	testutil.SetupTestDB(t)

	// テーブルを落として、ストレージエラーが「未投票」に化けないことを確かめる
	if err := database.DB.Migrator().DropTable(&vote.Evaluation{}); err != nil {
		t.Fatalf("テーブルの削除に失敗しました: %v", err)
	}

	_, err := vote.HasVoted(database.DB, "fp-err", testYear)
	if err == nil {
		t.Error("ストレージエラーはそのまま伝播するはず")
	}
}
