package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Manager はバックグラウンドサービスのライフサイクルを調停する。
// 上位モジュール（shutdownなど）が生成・保持し、各サービスへハンドル(Handle)を配布する。
type Manager struct {
	wg       sync.WaitGroup
	mu       sync.Mutex
	services map[string]bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewManager は新しいライフサイクルマネージャを生成する。
func NewManager() *Manager {
	m := &Manager{
		services: make(map[string]bool),
	}

	m.ctx, m.cancel = context.WithCancel(context.Background())

	return m
}

// NewServiceHandle はサービス1つ分のライフサイクルハンドルを生成する。
// マネージャは自動的にサービスを登録し、WaitGroupのカウントを増やす。
func (m *Manager) NewServiceHandle(name string) (*Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.services[name] {
		return nil, fmt.Errorf("ライフサイクルマネージャ: サービス '%s' は登録済みです", name)
	}
	m.services[name] = true
	m.wg.Add(1)
	fmt.Printf("ライフサイクルマネージャ: サービス [%s] を登録しました。\n", name)

	return &Handle{
		ctx: m.ctx,
		Close: func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			if _, exists := m.services[name]; !exists {
				return
			}
			delete(m.services, name)
			m.wg.Done()
		},
	}, nil
}

// Shutdown は停止シグナルを全サービスへブロードキャストする。
func (m *Manager) Shutdown() {
	fmt.Println("ライフサイクルマネージャ: 停止シグナルをブロードキャストします...")
	m.cancel()
}

// WaitWithTimeout は登録済みの全サービスが完了するのをタイムアウトまで待つ。
// タイムアウトした場合は未完了サービス名の一覧を返す。
func (m *Manager) WaitWithTimeout(timeout time.Duration) []string {
	doneChan := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(doneChan)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-doneChan:
		return nil
	case <-timer.C:
		m.mu.Lock()
		defer m.mu.Unlock()
		return m.getRemainingServices()
	}
}

func (m *Manager) getRemainingServices() []string {
	remaining := make([]string, 0, len(m.services))
	for name := range m.services {
		remaining = append(remaining, name)
	}
	return remaining
}
