package lifecycle

import (
	"context"
	"time"
)

// Handle は各バックグラウンドサービスへ配布されるライフサイクル制御器。
// Manager が生成し、サービス側の終了処理を包み込む。
type Handle struct {
	ctx context.Context
	// Close は所属サービスの終了をManagerへ通知する関数。
	// サービスのGoroutineが抜ける前に defer で呼ぶこと。
	Close func()
}

// Ctx はHandle内部のctxを返す
func (h *Handle) Ctx() context.Context {
	return h.ctx
}

// Done は停止シグナルの発行時にcloseされるchannelを返す。
// select文で停止を監視するために使う。
func (h *Handle) Done() <-chan struct{} {
	return h.ctx.Done()
}

// Err はDone()のchannelがcloseされた後、キャンセル理由を返す。
func (h *Handle) Err() error {
	return h.ctx.Err()
}

// Sleep は指定時間停止するが、停止シグナルを受けると早期にエラーを返す。
// バックグラウンドのポーリングループではこちらを使うこと。
func (h *Handle) Sleep(duration time.Duration) error {
	timer := time.NewTimer(duration)

	select {
	case <-h.Done():
		if !timer.Stop() {
			<-timer.C
		}
		return h.Err()
	case <-timer.C:
		return nil
	}
}
