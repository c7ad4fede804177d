package wizard

import (
	"encoding/json"

	"github.com/google/uuid"
)

// GuardState はクライアント側に保存される投票済み状態。
// あくまで再入場を抑止するための助言であり、権威ある二重投票チェックは
// サーバー側のガードが行う。
type GuardState struct {
	Fingerprint string `json:"fingerprint"`
	HasVoted    bool   `json:"hasVoted"`
	EventYear   int    `json:"eventYear"`
}

// EncodeGuardState はGuardStateを保存用のJSONへ変換する。
func EncodeGuardState(state GuardState) ([]byte, error) {
	return json.Marshal(state)
}

// DecodeGuardState は保存されたJSONからGuardStateを復元する。
// 壊れたデータはゼロ値として扱い、エラーにはしない。
func DecodeGuardState(data []byte) GuardState {
	var state GuardState
	if err := json.Unmarshal(data, &state); err != nil {
		return GuardState{}
	}
	return state
}

// HasVotedFor は指定年度について投票済みかどうかを返す。
func (s GuardState) HasVotedFor(eventYear int) bool {
	return s.HasVoted && s.EventYear == eventYear
}

// EnsureFingerprint は端末識別子を確定させる。
// デバイス識別の取得に失敗した場合（空文字）にはランダムなIDへフォールバック
// するため、二重投票防止は本質的にベストエフォートである。
func EnsureFingerprint(provided string) string {
	if provided != "" {
		return provided
	}
	return uuid.NewString()
}
