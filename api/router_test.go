package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/matsuyama952/touhyou-system/api"
	"github.com/matsuyama952/touhyou-system/internal/criteria"
	"github.com/matsuyama952/touhyou-system/internal/department"
	"github.com/matsuyama952/touhyou-system/internal/platform/config"
	"github.com/matsuyama952/touhyou-system/internal/platform/startup"
	"github.com/matsuyama952/touhyou-system/internal/result"
	"github.com/matsuyama952/touhyou-system/internal/testutil"
	"github.com/matsuyama952/touhyou-system/internal/vote"
)

const testYear = 2026

// setupRouter はテスト用データベースと既定のシードデータでルーターを組み立てる
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	testutil.SetupTestDB(t)

	cfg := &config.Config{
		Event: config.EventConfig{Year: testYear, TargetEvaluators: 100},
	}
	if err := startup.InitializeApplication(cfg); err != nil {
		t.Fatalf("アプリの初期化に失敗しました: %v", err)
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api.SetupRoutes(router)
	return router
}

func validVoteBody(fingerprint string) vote.BallotRequest {
	return vote.BallotRequest{
		Evaluations: []vote.BallotEntry{
			{DepartmentID: "consumer", CriteriaID: "criteria-1", Score: 8},
			{DepartmentID: "ssd", CriteriaID: "criteria-1", Score: 3},
		},
		Fingerprint: fingerprint,
		EventYear:   testYear,
	}
}

func TestListDepartments(t *testing.T) {
	router := setupRouter(t)

	recorder := testutil.PerformRequest(router, http.MethodGet, "/api/departments", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}

	var departments []department.Department
	testutil.DecodeJSON(t, recorder, &departments)
	if len(departments) != 5 {
		t.Fatalf("部署件数 = %d, want 5", len(departments))
	}
	for i := 1; i < len(departments); i++ {
		if departments[i-1].DisplayOrder > departments[i].DisplayOrder {
			t.Errorf("部署一覧が表示順になっていません: %+v", departments)
		}
	}
}

func TestListCriteria(t *testing.T) {
	router := setupRouter(t)

	recorder := testutil.PerformRequest(router, http.MethodGet, "/api/criteria", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}

	var items []criteria.Criterion
	testutil.DecodeJSON(t, recorder, &items)
	if len(items) != 4 {
		t.Fatalf("評価項目件数 = %d, want 4", len(items))
	}
	for _, item := range items {
		if !item.IsActive {
			t.Errorf("無効な評価項目が一覧に含まれています: %+v", item)
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := setupRouter(t)

	recorder := testutil.PerformRequest(router, http.MethodGet, "/api/health", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}

	var response struct {
		Status   string `json:"status"`
		Database string `json:"database"`
	}
	testutil.DecodeJSON(t, recorder, &response)
	if response.Status != "ok" || response.Database != "connected" {
		t.Errorf("health = %+v, want ok/connected", response)
	}
}

func TestSubmitVoteLifecycle(t *testing.T) {
	router := setupRouter(t)

	// 1回目は成功
	recorder := testutil.PerformRequest(router, http.MethodPost, "/api/vote", validVoteBody("fp-http"))
	if recorder.Code != http.StatusOK {
		t.Fatalf("1回目 status = %d, want 200 (body: %s)", recorder.Code, recorder.Body.String())
	}
	var response vote.SubmitVoteResponse
	testutil.DecodeJSON(t, recorder, &response)
	if !response.Success {
		t.Errorf("success = false, want true")
	}

	// 同じ端末の2回目は409
	recorder = testutil.PerformRequest(router, http.MethodPost, "/api/vote", validVoteBody("fp-http"))
	if recorder.Code != http.StatusConflict {
		t.Fatalf("2回目 status = %d, want 409", recorder.Code)
	}
	testutil.DecodeJSON(t, recorder, &response)
	if response.Success {
		t.Errorf("重複送信でsuccess = true")
	}
}

func TestSubmitVoteValidation(t *testing.T) {
	router := setupRouter(t)

	// スコア範囲外
	body := validVoteBody("fp-invalid")
	body.Evaluations[0].Score = 11
	recorder := testutil.PerformRequest(router, http.MethodPost, "/api/vote", body)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("範囲外スコア status = %d, want 400", recorder.Code)
	}

	// 端末識別子なし
	body = validVoteBody("")
	recorder = testutil.PerformRequest(router, http.MethodPost, "/api/vote", body)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("識別子なし status = %d, want 400", recorder.Code)
	}

	// 壊れたJSON
	req := httptest.NewRequest(http.MethodPost, "/api/vote", strings.NewReader("{broken"))
	req.Header.Set("Content-Type", "application/json")
	raw := httptest.NewRecorder()
	router.ServeHTTP(raw, req)
	if raw.Code != http.StatusBadRequest {
		t.Errorf("壊れたJSON status = %d, want 400", raw.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	router := setupRouter(t)

	recorder := testutil.PerformRequest(router, http.MethodGet, "/api/vote", nil)
	if recorder.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /api/vote status = %d, want 405", recorder.Code)
	}

	recorder = testutil.PerformRequest(router, http.MethodPost, "/api/departments", nil)
	if recorder.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /api/departments status = %d, want 405", recorder.Code)
	}
}

func TestResultsEndpoints(t *testing.T) {
	router := setupRouter(t)

	// 投票を2件入れてからランキングを確認する
	recorder := testutil.PerformRequest(router, http.MethodPost, "/api/vote", validVoteBody("fp-a"))
	if recorder.Code != http.StatusOK {
		t.Fatalf("投票に失敗しました: %s", recorder.Body.String())
	}
	second := validVoteBody("fp-b")
	second.Evaluations[0].Score = 2
	second.Evaluations[1].Score = 9
	recorder = testutil.PerformRequest(router, http.MethodPost, "/api/vote", second)
	if recorder.Code != http.StatusOK {
		t.Fatalf("投票に失敗しました: %s", recorder.Body.String())
	}

	recorder = testutil.PerformRequest(router, http.MethodGet, "/api/results?year=2026", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("results status = %d, want 200", recorder.Code)
	}
	var board result.LeaderboardResponse
	testutil.DecodeJSON(t, recorder, &board)
	if len(board.Results) != 5 {
		t.Fatalf("結果件数 = %d, want 5", len(board.Results))
	}
	if board.Results[0].DepartmentID != "ssd" || board.Results[0].TotalScore != 12 {
		t.Errorf("1位 = %+v, want ssd/12点", board.Results[0])
	}
	if board.TotalEvaluators != 2 {
		t.Errorf("TotalEvaluators = %d, want 2", board.TotalEvaluators)
	}
	if board.TargetEvaluators != 100 {
		t.Errorf("TargetEvaluators = %d, want 100", board.TargetEvaluators)
	}

	// 部署詳細
	recorder = testutil.PerformRequest(router, http.MethodGet, "/api/results/consumer?year=2026", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("detail status = %d, want 200", recorder.Code)
	}
	var detail result.DepartmentDetailResponse
	testutil.DecodeJSON(t, recorder, &detail)
	if detail.TotalScore != 10 {
		t.Errorf("consumer TotalScore = %d, want 10", detail.TotalScore)
	}
	if detail.TotalEvaluators != 2 {
		t.Errorf("consumer TotalEvaluators = %d, want 2", detail.TotalEvaluators)
	}

	// 存在しない部署は404
	recorder = testutil.PerformRequest(router, http.MethodGet, "/api/results/unknown?year=2026", nil)
	if recorder.Code != http.StatusNotFound {
		t.Errorf("unknown detail status = %d, want 404", recorder.Code)
	}
}
