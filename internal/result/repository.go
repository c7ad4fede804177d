package result

import (
	"github.com/matsuyama952/touhyou-system/internal/platform/database"
	"gorm.io/gorm"
)

// evaluationsTable は投票事実テーブル名。voteモジュールが追記し、自分は読むだけ。
const evaluationsTable = "evaluations"

// departmentTotals は年度内の部署ごとのスコア合計を1クエリで集計する。
// 1行も無い部署はマップに現れない（呼び出し側で0扱い）。
func departmentTotals(eventYear int) (map[string]int, error) {
	type totalRow struct {
		DepartmentID string
		Total        int
	}
	var rows []totalRow
	err := database.DB.Table(evaluationsTable).
		Select("department_id, COALESCE(SUM(score), 0) AS total").
		Where("event_year = ?", eventYear).
		Group("department_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int, len(rows))
	for _, row := range rows {
		totals[row.DepartmentID] = row.Total
	}
	return totals, nil
}

// departmentCriteriaTotals は (部署, 評価項目) ごとのスコア合計を集計する。
func departmentCriteriaTotals(eventYear int) (map[string]map[string]int, error) {
	type breakdownRow struct {
		DepartmentID string
		CriteriaID   string
		Total        int
	}
	var rows []breakdownRow
	err := database.DB.Table(evaluationsTable).
		Select("department_id, criteria_id, COALESCE(SUM(score), 0) AS total").
		Where("event_year = ?", eventYear).
		Group("department_id, criteria_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	breakdown := make(map[string]map[string]int)
	for _, row := range rows {
		if breakdown[row.DepartmentID] == nil {
			breakdown[row.DepartmentID] = make(map[string]int)
		}
		breakdown[row.DepartmentID][row.CriteriaID] = row.Total
	}
	return breakdown, nil
}

// countDistinctEvaluators は年度内のユニークな端末識別子の数を返す。
// scope でクエリを部署などに絞り込める。
func countDistinctEvaluators(eventYear int, scope func(*gorm.DB) *gorm.DB) (int, error) {
	var count int64
	query := database.DB.Table(evaluationsTable).
		Distinct("fingerprint").
		Where("event_year = ?", eventYear)
	if scope != nil {
		query = scope(query)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// criteriaAggregate は部署内の評価項目ごとの合計・平均・件数を集計する。
type criteriaAggregate struct {
	CriteriaID string
	Total      int
	Average    float64
	Count      int
}

func aggregateByCriteria(departmentID string, eventYear int) (map[string]criteriaAggregate, error) {
	var rows []criteriaAggregate
	err := database.DB.Table(evaluationsTable).
		Select("criteria_id, COALESCE(SUM(score), 0) AS total, COALESCE(AVG(score), 0) AS average, COUNT(score) AS count").
		Where("department_id = ? AND event_year = ?", departmentID, eventYear).
		Group("criteria_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	aggregates := make(map[string]criteriaAggregate, len(rows))
	for _, row := range rows {
		aggregates[row.CriteriaID] = row
	}
	return aggregates, nil
}
