package llm

import (
	"context"
	"errors"
	"os"
	"strings"
)

// TextGenerator abstracts a prompt->text completion backend.
// Implementations should return the raw model output without post-processing.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	ModelName() string
}

// ErrNotConfigured is returned when no generation backend is configured via env
var ErrNotConfigured = errors.New("no text generation provider configured (set COHERE_API_KEY or GEMINI_API_KEY)")

// NewFromEnv returns a text generator based on environment configuration.
// Prefers Cohere if configured, then Gemini.
func NewFromEnv() (TextGenerator, error) {
	if cohereKey := os.Getenv("COHERE_API_KEY"); cohereKey != "" {
		model := os.Getenv("COHERE_MODEL")
		if model == "" {
			model = "command-r-08-2024"
		}
		return NewCohere(cohereKey, model), nil
	}

	if geminiKey := os.Getenv("GEMINI_API_KEY"); geminiKey != "" {
		model := os.Getenv("GEMINI_MODEL")
		if model == "" {
			model = "gemini-1.5-flash"
		}
		return NewGemini(geminiKey, model), nil
	}

	return nil, ErrNotConfigured
}

// ExtractJSONObject returns the first top-level {...} block in model output.
// Models wrap JSON in prose or markdown fences often enough that decoding the
// raw response directly is not reliable.
func ExtractJSONObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}
