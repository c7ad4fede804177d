package result

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/matsuyama952/touhyou-system/internal/platform/database"
	"github.com/redis/go-redis/v9"
)

// ランキングは結果画面から数秒間隔でポーリングされるため、
// 短いTTLのRedisキャッシュで集計クエリの連打を吸収する。
const leaderboardCacheTTL = 5 * time.Second

// leaderboardCacheKey は年度と内訳有無ごとのキャッシュキーを返す。
func leaderboardCacheKey(eventYear int, withBreakdown bool) string {
	if withBreakdown {
		return fmt.Sprintf("result:leaderboard:%d:breakdown", eventYear)
	}
	return fmt.Sprintf("result:leaderboard:%d", eventYear)
}

// getCachedLeaderboard はRedisキャッシュからランキングを取得する。
// キャッシュミスは正常系であり、エラーにはしない。
func getCachedLeaderboard(eventYear int, withBreakdown bool) *LeaderboardResponse {
	if !database.IsRedisHealthy() {
		return nil
	}
	data, err := database.RDB.Get(database.Ctx, leaderboardCacheKey(eventYear, withBreakdown)).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return nil
	}

	var response LeaderboardResponse
	if err := json.Unmarshal([]byte(data), &response); err != nil {
		return nil
	}
	return &response
}

// setCachedLeaderboard はランキングをRedisキャッシュへ保存する。
// 失敗してもレスポンスには影響させない。
func setCachedLeaderboard(eventYear int, withBreakdown bool, response *LeaderboardResponse) {
	if !database.IsRedisHealthy() {
		return
	}
	data, err := json.Marshal(response)
	if err != nil {
		return
	}
	if err := database.RDB.Set(database.Ctx, leaderboardCacheKey(eventYear, withBreakdown), data, leaderboardCacheTTL).Err(); err != nil {
		fmt.Printf("警告: ランキングキャッシュの保存に失敗しました: %v\n", err)
	}
}

// InvalidateLeaderboardCache は投票コミット後に年度のキャッシュを破棄する。
// TTLが短いため失敗しても自然に失効する。
func InvalidateLeaderboardCache(eventYear int) {
	if !database.IsRedisHealthy() {
		return
	}
	keys := []string{
		leaderboardCacheKey(eventYear, false),
		leaderboardCacheKey(eventYear, true),
	}
	if err := database.RDB.Del(database.Ctx, keys...).Err(); err != nil {
		fmt.Printf("警告: ランキングキャッシュの破棄に失敗しました: %v\n", err)
	}
}
