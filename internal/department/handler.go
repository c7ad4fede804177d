package department

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListDepartments は部署一覧を表示順で返す
func ListDepartments(c *gin.Context) {
	// 倉庫は起動時に表示順で読み込まれているため、そのまま返せる
	c.JSON(http.StatusOK, All())
}
