package vote

import (
	"fmt"

	"github.com/matsuyama952/touhyou-system/internal/platform/database"
)

// votersKeyPrefix は投票済み端末識別子を年度別に保持するRedis Setキーの接頭辞。
// Member: Fingerprint
const votersKeyPrefix = "vote:voters:"

// VotersKey は指定年度の投票者SetのRedisキーを返す。
func VotersKey(eventYear int) string {
	return fmt.Sprintf("%s%d", votersKeyPrefix, eventYear)
}

// cacheHasVoted はRedisの投票者Setによる高速な事前チェック。
// SQLiteが常に正であり、このSetはあくまでキャッシュ。ヒットした場合のみ信用し、
// ミスやエラーの場合は呼び出し側がSQLiteで確認する。
func cacheHasVoted(fingerprint string, eventYear int) bool {
	if !database.IsRedisHealthy() {
		return false
	}
	isMember, err := database.RDB.SIsMember(database.Ctx, VotersKey(eventYear), fingerprint).Result()
	if err != nil {
		return false
	}
	return isMember
}

// cacheMarkVoted はコミット成功後にRedisの投票者Setへ端末識別子を追加する。
// キャッシュ更新の失敗は投票の成否に影響させない。
func cacheMarkVoted(fingerprint string, eventYear int) {
	if !database.IsRedisHealthy() {
		return
	}
	if err := database.RDB.SAdd(database.Ctx, VotersKey(eventYear), fingerprint).Err(); err != nil {
		fmt.Printf("警告: 投票者Setの更新に失敗しました: %v\n", err)
	}
}

// WarmupCache はSQLiteの事実テーブルからRedisの投票者Setを再構築する。
// Redis再起動後のキャッシュ再構築時に呼ばれる。
func WarmupCache() error {
	type voterRow struct {
		Fingerprint string
		EventYear   int
	}
	var rows []voterRow
	err := database.DB.Model(&Evaluation{}).
		Distinct("fingerprint", "event_year").
		Find(&rows).Error
	if err != nil {
		return fmt.Errorf("SQLiteから投票者一覧を読み込めません: %w", err)
	}

	pipe := database.RDB.Pipeline()
	seenYears := make(map[int]bool)
	for _, row := range rows {
		if !seenYears[row.EventYear] {
			// 年度ごとに一度だけ、古い内容を消してから作り直す
			pipe.Del(database.Ctx, VotersKey(row.EventYear))
			seenYears[row.EventYear] = true
		}
		pipe.SAdd(database.Ctx, VotersKey(row.EventYear), row.Fingerprint)
	}
	if _, err := pipe.Exec(database.Ctx); err != nil {
		return fmt.Errorf("投票者SetのRedisへの予熱に失敗しました: %w", err)
	}

	fmt.Printf("投票者Setを再構築しました（%d 件、%d 年度分）。\n", len(rows), len(seenYears))
	return nil
}
