package types

// SummaryFeedback is the evaluator's verdict on a single draft summary.
// Score is provider-supplied; the evaluator clamps it to [0,100] at parse
// time and nothing downstream re-validates it.
type SummaryFeedback struct {
	Score            int    `json:"score"`
	Comments         string `json:"comments"`
	SuggestedSummary string `json:"suggested_summary"`
}

// EvaluationResult aggregates feedback for both drafts plus a shared
// "literacy age" estimate (expected 10-80, clamped at parse).
type EvaluationResult struct {
	OneSentence  SummaryFeedback `json:"one_sentence"`
	ThreeLines   SummaryFeedback `json:"three_lines"`
	EstimatedAge int             `json:"estimated_age"`
	AgeComment   string          `json:"age_comment"`
}
