package result

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// eventYearFromQuery は year クエリパラメータを解析する。
// 欠落・解析不能・非正の場合は現在の暦年にフォールバックする。
func eventYearFromQuery(c *gin.Context) int {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year <= 0 {
		return time.Now().Year()
	}
	return year
}

// GetLeaderboard は年度内の部署ランキングを返す
func GetLeaderboard(c *gin.Context) {
	eventYear := eventYearFromQuery(c)
	withBreakdown := c.Query("breakdown") == "1" || c.Query("breakdown") == "true"

	// キャッシュヒットならそのまま返す
	if cached := getCachedLeaderboard(eventYear, withBreakdown); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	response, err := Leaderboard(eventYear, withBreakdown)
	if err != nil {
		fmt.Printf("ランキングの集計に失敗しました: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "サーバーエラーが発生しました"})
		return
	}

	setCachedLeaderboard(eventYear, withBreakdown, response)
	c.JSON(http.StatusOK, response)
}

// GetDepartmentDetail は部署1件の評価項目別の集計を返す
func GetDepartmentDetail(c *gin.Context) {
	departmentID := c.Param("departmentId")
	eventYear := eventYearFromQuery(c)

	response, err := DepartmentDetail(departmentID, eventYear)
	if err != nil {
		if errors.Is(err, ErrDepartmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "指定された部署が見つかりません"})
			return
		}
		fmt.Printf("部署詳細の集計に失敗しました: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "サーバーエラーが発生しました"})
		return
	}

	c.JSON(http.StatusOK, response)
}
