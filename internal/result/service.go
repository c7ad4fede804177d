package result

import (
	"errors"
	"math"
	"sort"

	"github.com/matsuyama952/touhyou-system/internal/criteria"
	"github.com/matsuyama952/touhyou-system/internal/department"
	"github.com/matsuyama952/touhyou-system/internal/event"
	"gorm.io/gorm"
)

// ErrDepartmentNotFound は存在しない部署IDが指定されたことを表す
var ErrDepartmentNotFound = errors.New("指定された部署が見つかりません")

// roundTo1 は四捨五入（0.5は0から遠い方へ）で小数第1位に丸める
func roundTo1(value float64) float64 {
	return math.Round(value*10) / 10
}

// Leaderboard は年度内の部署ランキングを算出する。
//
// 部署は表示順で反復し、スコア合計の降順で安定ソートする。そのため同点の部署は
// 表示順の相対関係を保つ。rankはソート後の1始まりの位置。
func Leaderboard(eventYear int, withBreakdown bool) (*LeaderboardResponse, error) {
	// 1. 部署ごとのスコア合計（行が無い部署は0）
	totals, err := departmentTotals(eventYear)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, department.Count())
	for _, dept := range department.All() {
		entries = append(entries, LeaderboardEntry{
			DepartmentID:   dept.ID,
			DepartmentName: dept.Name,
			ImageURL:       dept.ImageURL,
			TotalScore:     totals[dept.ID],
		})
	}

	// 2. スコア降順の安定ソートと順位付け
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalScore > entries[j].TotalScore
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	// 3. 年度全体のユニーク評価者数
	totalEvaluators, err := countDistinctEvaluators(eventYear, nil)
	if err != nil {
		return nil, err
	}

	// 4. イベント設定から目標評価者数（無ければ既定値）
	targetEvaluators, err := event.TargetEvaluatorsForYear(eventYear)
	if err != nil {
		return nil, err
	}

	response := &LeaderboardResponse{
		Results:          entries,
		TotalEvaluators:  totalEvaluators,
		TargetEvaluators: targetEvaluators,
	}

	// 5. 要求された場合のみ、評価項目別の内訳と短縮ヘッダーを付ける
	if withBreakdown {
		breakdown, err := departmentCriteriaTotals(eventYear)
		if err != nil {
			return nil, err
		}
		activeCriteria := criteria.Active()

		for i := range response.Results {
			points := make([]CriteriaPoints, 0, len(activeCriteria))
			for _, cr := range activeCriteria {
				points = append(points, CriteriaPoints{
					CriteriaID:  cr.ID,
					TotalPoints: breakdown[response.Results[i].DepartmentID][cr.ID],
				})
			}
			response.Results[i].CriteriaBreakdown = points
		}

		headers := make([]CriteriaHeader, 0, len(activeCriteria))
		for _, cr := range activeCriteria {
			headers = append(headers, CriteriaHeader{
				CriteriaID: cr.ID,
				ShortName:  criteria.ShortName(cr.Name),
			})
		}
		response.CriteriaHeaders = headers
	}

	return response, nil
}

// DepartmentDetail は部署1件の評価項目別の集計を算出する。
//
// 各評価項目について合計・平均（小数第1位丸め）・件数を出し、部署の総合得点は
// 項目別合計の総和とする。行が無い項目は0で埋める（nullやNaNにはしない）。
func DepartmentDetail(departmentID string, eventYear int) (*DepartmentDetailResponse, error) {
	// 1. 部署の解決
	dept, ok := department.GetByID(departmentID)
	if !ok {
		return nil, ErrDepartmentNotFound
	}

	// 2. 有効な評価項目（表示順）ごとの集計
	aggregates, err := aggregateByCriteria(departmentID, eventYear)
	if err != nil {
		return nil, err
	}

	totalScore := 0
	criteriaResults := make([]CriteriaResult, 0, criteria.Count())
	for _, cr := range criteria.Active() {
		agg := aggregates[cr.ID] // 行が無ければゼロ値
		criteriaResults = append(criteriaResults, CriteriaResult{
			CriteriaID:     cr.ID,
			CriteriaName:   cr.Name,
			TotalPoints:    agg.Total,
			AverageScore:   roundTo1(agg.Average),
			EvaluatorCount: agg.Count,
		})
		totalScore += agg.Total
	}

	// 3. この部署を評価したユニーク評価者数（部署単位）
	totalEvaluators, err := countDistinctEvaluators(eventYear, func(query *gorm.DB) *gorm.DB {
		return query.Where("department_id = ?", departmentID)
	})
	if err != nil {
		return nil, err
	}

	return &DepartmentDetailResponse{
		DepartmentID:    dept.ID,
		DepartmentName:  dept.Name,
		TotalScore:      totalScore,
		CriteriaResults: criteriaResults,
		TotalEvaluators: totalEvaluators,
	}, nil
}
