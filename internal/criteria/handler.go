package criteria

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListCriteria は有効な評価項目一覧を表示順で返す
func ListCriteria(c *gin.Context) {
	c.JSON(http.StatusOK, Active())
}
