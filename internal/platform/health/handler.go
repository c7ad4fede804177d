package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/matsuyama952/touhyou-system/internal/platform/database"
)

// HealthResponse は死活確認APIのレスポンス形式
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
}

// Handler はプロセスの生存とストレージ疎通を報告する
func Handler(c *gin.Context) {
	timestamp := time.Now().UTC().Format(time.RFC3339)

	if err := database.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, HealthResponse{
			Status:    "error",
			Timestamp: timestamp,
			Database:  "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: timestamp,
		Database:  "connected",
	})
}
