// Package testutil はテスト用のデータベース準備とHTTPリクエスト実行の補助を提供する。
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/matsuyama952/touhyou-system/internal/criteria"
	"github.com/matsuyama952/touhyou-system/internal/department"
	"github.com/matsuyama952/touhyou-system/internal/event"
	"github.com/matsuyama952/touhyou-system/internal/platform/database"
	"github.com/matsuyama952/touhyou-system/internal/vote"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB はテスト専用の新しいSQLiteデータベースを開き、全テーブルを
// マイグレーションしてグローバルハンドルへ差し込む。データは投入しない。
// Redisは初期化しないため、キャッシュ経路は不健全として自動的に素通りする。
func SetupTestDB(t *testing.T) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("テスト用データベースを開けません: %v", err)
	}
	database.DB = db

	for _, migrate := range []func() error{
		department.MigrateDB,
		criteria.MigrateDB,
		event.MigrateDB,
		vote.MigrateDB,
	} {
		if err := migrate(); err != nil {
			t.Fatalf("テスト用データベースのマイグレーションに失敗しました: %v", err)
		}
	}
}

// PerformRequest はハンドラに対してテストリクエストを1回実行する。
// body が nil でなければJSONとして送信する。
func PerformRequest(handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

// DecodeJSON はレスポンスボディを指定の構造体へデコードする。
func DecodeJSON(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), target); err != nil {
		t.Fatalf("レスポンスJSONのデコードに失敗しました: %v\nbody: %s", err, recorder.Body.String())
	}
}
