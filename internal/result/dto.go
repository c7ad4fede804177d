package result

// CriteriaHeader は結果表のヘッダー用に短縮した評価項目名
type CriteriaHeader struct {
	CriteriaID string `json:"criteriaId"`
	ShortName  string `json:"shortName"`
}

// CriteriaPoints は部署内の評価項目ごとの得点合計（内訳表示用）
type CriteriaPoints struct {
	CriteriaID  string `json:"criteriaId"`
	TotalPoints int    `json:"totalPoints"`
}

// LeaderboardEntry はランキング1行分
type LeaderboardEntry struct {
	DepartmentID   string `json:"departmentId"`
	DepartmentName string `json:"departmentName"`
	ImageURL       string `json:"imageUrl"`
	TotalScore     int    `json:"totalScore"`
	Rank           int    `json:"rank"`

	// CriteriaBreakdown は内訳が要求された場合のみ含まれる
	CriteriaBreakdown []CriteriaPoints `json:"criteriaBreakdown,omitempty"`
}

// LeaderboardResponse はランキングAPIのレスポンス
type LeaderboardResponse struct {
	Results []LeaderboardEntry `json:"results"`

	// CriteriaHeaders は内訳が要求された場合のみ含まれる
	CriteriaHeaders []CriteriaHeader `json:"criteriaHeaders,omitempty"`

	// TotalEvaluators は年度内のユニークな端末識別子の数（全体）
	TotalEvaluators int `json:"totalEvaluators"`

	// TargetEvaluators はイベント設定由来の目標評価者数
	TargetEvaluators int `json:"targetEvaluators"`
}

// CriteriaResult は部署詳細の評価項目1件分の集計
type CriteriaResult struct {
	CriteriaID     string  `json:"criteriaId"`
	CriteriaName   string  `json:"criteriaName"`
	TotalPoints    int     `json:"totalPoints"`
	AverageScore   float64 `json:"averageScore"`
	EvaluatorCount int     `json:"evaluatorCount"`
}

// DepartmentDetailResponse は部署詳細APIのレスポンス
type DepartmentDetailResponse struct {
	DepartmentID    string           `json:"departmentId"`
	DepartmentName  string           `json:"departmentName"`
	TotalScore      int              `json:"totalScore"`
	CriteriaResults []CriteriaResult `json:"criteriaResults"`

	// TotalEvaluators はこの部署を評価したユニークな端末識別子の数（部署単位）
	TotalEvaluators int `json:"totalEvaluators"`
}
