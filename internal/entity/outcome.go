package entity

type Result string

const (
	ResultInProgress Result = "in_progress"
	ResultWin        Result = "win"
	ResultDraw       Result = "draw"
)

// Outcome is InProgress, Draw, or Win together with the winning mark.
type Outcome struct {
	Result Result `json:"result"`
	Winner Mark   `json:"winner,omitempty"`
}

func WinOutcome(winner Mark) Outcome {
	return Outcome{Result: ResultWin, Winner: winner}
}

func (that Outcome) IsInProgress() bool {
	return that.Result == ResultInProgress
}

func (that Outcome) IsTerminal() bool {
	return that.Result == ResultWin || that.Result == ResultDraw
}

func (that Outcome) IsWinFor(mark Mark) bool {
	return that.Result == ResultWin && that.Winner == mark
}
