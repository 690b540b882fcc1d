// Package evaluator scores the user's two draft summaries against the
// article with a text-generation model.
package evaluator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"sumcoach/llm"
	"sumcoach/types"
)

// ErrIncompleteEvaluation indicates the model response was missing one or
// more required fields
var ErrIncompleteEvaluation = errors.New("evaluation response is incomplete")

// maxArticleRunes clamps the article body embedded in the prompt
const maxArticleRunes = 10000

// Evaluator scores both drafts and estimates a "literacy age" for the writer
type Evaluator interface {
	Evaluate(ctx context.Context, article *types.Article, oneSentence, threeLines string) (*types.EvaluationResult, error)
}

// LLMEvaluator implements Evaluator on top of an llm.TextGenerator
type LLMEvaluator struct {
	gen llm.TextGenerator
}

// NewLLMEvaluator creates an evaluator backed by the given generator
func NewLLMEvaluator(gen llm.TextGenerator) *LLMEvaluator {
	return &LLMEvaluator{gen: gen}
}

const evalPromptTemplate = `당신은 글쓰기 코치입니다. 학생이 아래 뉴스 기사를 읽고 두 가지 요약을 작성했습니다.

[기사 제목]
%s

[기사 본문]
%s

[한 문장 요약]
%s

[세 줄 요약]
%s

각 요약을 0~100점으로 채점하고, 구체적인 코칭 조언과 모범 답안을 제시하세요.
또한 두 요약의 어휘와 문장 구성 수준을 근거로 글쓰기 수준을 나이(10~80세)로 추정하고 한 줄 평을 덧붙이세요.

다음 JSON 형식으로만 응답하세요:
{
  "one_sentence": {"score": 0, "comments": "코칭 조언", "suggested_summary": "모범 답안"},
  "three_lines": {"score": 0, "comments": "코칭 조언", "suggested_summary": "모범 답안"},
  "estimated_age": 0,
  "age_comment": "한 줄 평"
}`

// Evaluate builds the coaching prompt, calls the model, and parses the
// strict JSON response. Any missing required field is a failure.
func (e *LLMEvaluator) Evaluate(ctx context.Context, article *types.Article, oneSentence, threeLines string) (*types.EvaluationResult, error) {
	content := clampRunes(article.Content, maxArticleRunes)
	prompt := fmt.Sprintf(evalPromptTemplate, article.Title, content, oneSentence, threeLines)

	text, err := e.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("evaluation request: %w", err)
	}

	return parseEvaluation(text)
}

// rawFeedback mirrors types.SummaryFeedback with pointer fields so absent
// keys are distinguishable from zero values.
type rawFeedback struct {
	Score            *float64 `json:"score"`
	Comments         *string  `json:"comments"`
	SuggestedSummary *string  `json:"suggested_summary"`
}

type rawEvaluation struct {
	OneSentence  *rawFeedback `json:"one_sentence"`
	ThreeLines   *rawFeedback `json:"three_lines"`
	EstimatedAge *float64     `json:"estimated_age"`
	AgeComment   *string      `json:"age_comment"`
}

func parseEvaluation(text string) (*types.EvaluationResult, error) {
	jsonText, ok := llm.ExtractJSONObject(text)
	if !ok {
		return nil, fmt.Errorf("%w: no JSON object in response", ErrIncompleteEvaluation)
	}

	var raw rawEvaluation
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		return nil, fmt.Errorf("parsing evaluation JSON: %w", err)
	}

	one, err := feedbackFromRaw(raw.OneSentence, "one_sentence")
	if err != nil {
		return nil, err
	}
	three, err := feedbackFromRaw(raw.ThreeLines, "three_lines")
	if err != nil {
		return nil, err
	}
	if raw.EstimatedAge == nil {
		return nil, fmt.Errorf("%w: missing estimated_age", ErrIncompleteEvaluation)
	}
	if raw.AgeComment == nil {
		return nil, fmt.Errorf("%w: missing age_comment", ErrIncompleteEvaluation)
	}

	return &types.EvaluationResult{
		OneSentence:  *one,
		ThreeLines:   *three,
		EstimatedAge: clampInt(int(*raw.EstimatedAge), 10, 80),
		AgeComment:   *raw.AgeComment,
	}, nil
}

func feedbackFromRaw(raw *rawFeedback, field string) (*types.SummaryFeedback, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: missing %s", ErrIncompleteEvaluation, field)
	}
	if raw.Score == nil {
		return nil, fmt.Errorf("%w: missing %s.score", ErrIncompleteEvaluation, field)
	}
	if raw.Comments == nil {
		return nil, fmt.Errorf("%w: missing %s.comments", ErrIncompleteEvaluation, field)
	}
	if raw.SuggestedSummary == nil {
		return nil, fmt.Errorf("%w: missing %s.suggested_summary", ErrIncompleteEvaluation, field)
	}
	return &types.SummaryFeedback{
		Score:            clampInt(int(*raw.Score), 0, 100),
		Comments:         *raw.Comments,
		SuggestedSummary: *raw.SuggestedSummary,
	}, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
