package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/matsuyama952/touhyou-system/internal/criteria"
	"github.com/matsuyama952/touhyou-system/internal/department"
	"github.com/matsuyama952/touhyou-system/internal/platform/health"
	"github.com/matsuyama952/touhyou-system/internal/result"
	"github.com/matsuyama952/touhyou-system/internal/vote"
)

// SetupRoutes はプロジェクトの全APIルートを登録する
func SetupRoutes(router *gin.Engine) {
	// 登録済みパスへの誤ったHTTPメソッドは405で応答する
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	api := router.Group("/api")
	{
		// 死活確認
		api.GET("/health", health.Handler)

		// マスタデータ
		api.GET("/departments", department.ListDepartments)
		api.GET("/criteria", criteria.ListCriteria)

		// 投票
		api.POST("/vote", vote.SubmitVote)

		// 集計結果
		api.GET("/results", result.GetLeaderboard)
		api.GET("/results/:departmentId", result.GetDepartmentDetail)
	}
}
