// Package wizard は投票ウィザードの画面遷移を、描画層から独立した
// 純粋な状態機械として定義する。UI側は現在のStepを保持し、操作のたびに
// Next を呼んで次のStepを得るだけでよい。
package wizard

// Step は投票ウィザードの画面状態
type Step int

const (
	// StepIntro は導入画面
	StepIntro Step = iota
	// StepEvaluation は部署ごとの採点画面
	StepEvaluation
	// StepConfirmation は送信前の確認画面
	StepConfirmation
	// StepCompleted は送信完了画面
	StepCompleted
)

// String はStepの表示名を返す
func (s Step) String() string {
	switch s {
	case StepIntro:
		return "intro"
	case StepEvaluation:
		return "evaluation"
	case StepConfirmation:
		return "confirmation"
	case StepCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Action はウィザードに対する操作
type Action int

const (
	// ActionStart は導入画面から採点を開始する
	ActionStart Action = iota
	// ActionComplete は全部署の採点を終えて確認画面へ進む
	ActionComplete
	// ActionBack は確認画面から採点画面へ戻る
	ActionBack
	// ActionSubmitted は送信の成功を受けて完了画面へ進む
	ActionSubmitted
	// ActionReset はウィザードを導入画面へ戻す
	ActionReset
)

// Next は (現在のStep, Action) から次のStepを返す純粋関数。
// 定義されていない遷移では現在のStepを維持する。
func Next(current Step, action Action) Step {
	if action == ActionReset {
		return StepIntro
	}

	switch current {
	case StepIntro:
		if action == ActionStart {
			return StepEvaluation
		}
	case StepEvaluation:
		if action == ActionComplete {
			return StepConfirmation
		}
	case StepConfirmation:
		switch action {
		case ActionBack:
			return StepEvaluation
		case ActionSubmitted:
			return StepCompleted
		}
	case StepCompleted:
		// 完了後はActionReset以外で動かない
	}

	return current
}
