package vote

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SubmitVoteResponse は投票APIのレスポンス形式
type SubmitVoteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SubmitVote は投票者1人分のバロット送信を処理する
func SubmitVote(c *gin.Context) {
	var body BallotRequest

	// 1. リクエストボディをバインドする。フィールド単位の検証は
	// サービス層が仕様の順序で行うため、ここではJSONの形だけを見る
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, SubmitVoteResponse{
			Success: false,
			Message: "リクエスト形式が不正です",
		})
		return
	}

	// 2. サービス層へ委譲し、エラーを境界でステータスへ変換する
	if err := SubmitBallot(&body); err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, SubmitVoteResponse{Success: false, Message: verr.Message})
		case errors.Is(err, ErrAlreadyVoted):
			c.JSON(http.StatusConflict, SubmitVoteResponse{Success: false, Message: "既に投票済みです"})
		default:
			// 内部の詳細は利用者へ出さず、サーバー側でのみ記録する
			fmt.Printf("投票の処理に失敗しました: %v\n", err)
			c.JSON(http.StatusInternalServerError, SubmitVoteResponse{Success: false, Message: "サーバーエラーが発生しました"})
		}
		return
	}

	// 3. 成功応答
	c.JSON(http.StatusOK, SubmitVoteResponse{Success: true, Message: "投票が完了しました"})
}
