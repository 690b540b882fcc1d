package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"

	"sumcoach/llm"
	"sumcoach/types"
)

// WriterSource is the provenance label attached to generated articles
const WriterSource = "AI 생성 기사"

var writerTopics = []string{
	"경제", "과학", "환경", "문화", "스포츠", "기술", "사회", "교육", "보건",
}

const writerPromptTemplate = `당신은 한국어 신문 기자입니다. "%s" 분야의 가상 뉴스 기사를 한 편 작성해 주세요.

조건:
- 실제 인물이나 기업의 실명은 사용하지 마세요.
- 본문은 3~5개 문단, 전체 400~700자 분량으로 작성하세요.
- 중학생이 읽고 요약 연습을 할 수 있는 평이한 문체로 작성하세요.

다음 JSON 형식으로만 응답하세요:
{
  "title": "기사 제목",
  "content": "기사 본문",
  "url": ""
}`

// Writer generates a practice article with a text-generation model.
// This is the default content source when no RSS feed is configured.
type Writer struct {
	gen llm.TextGenerator
}

// NewWriter creates an AI article writer backed by the given generator
func NewWriter(gen llm.TextGenerator) *Writer {
	return &Writer{gen: gen}
}

// FetchArticle asks the model for a fresh article on a random topic.
func (w *Writer) FetchArticle(ctx context.Context) (*types.Article, error) {
	topic := writerTopics[rand.Intn(len(writerTopics))]
	prompt := fmt.Sprintf(writerPromptTemplate, topic)

	text, err := w.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generating article: %w", err)
	}

	jsonText, ok := llm.ExtractJSONObject(text)
	if !ok {
		return nil, fmt.Errorf("no JSON object in model response")
	}

	var parsed struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		URL     string `json:"url"`
	}
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		return nil, fmt.Errorf("parsing article JSON: %w", err)
	}

	article := &types.Article{
		Title:   parsed.Title,
		Content: parsed.Content,
		URL:     parsed.URL,
		Source:  WriterSource,
	}
	if err := Normalize(article); err != nil {
		return nil, err
	}

	log.Printf("Generated article on topic %q: %s", topic, article.Title)
	return article, nil
}
