package types

// Snapshot is the read-only view of a training session handed to the
// presentation layer (HTTP API and TUI). Article and Result are nil when the
// current step has none; Error is empty when there is no pending error.
type Snapshot struct {
	SessionID        string            `json:"session_id,omitempty"`
	Step             Step              `json:"step"`
	Article          *Article          `json:"article,omitempty"`
	OneSentence      string            `json:"one_sentence"`
	ThreeLines       string            `json:"three_lines"`
	Result           *EvaluationResult `json:"result,omitempty"`
	Loading          bool              `json:"loading"`
	Error            string            `json:"error,omitempty"`
	Countdown        int               `json:"countdown"`
	OneSentenceValid bool              `json:"one_sentence_valid"`
	ThreeLinesValid  bool              `json:"three_lines_valid"`
}
