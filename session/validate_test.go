package session

import "testing"

func TestOneSentenceValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"korean sentence with period", "정부가 정책을 발표했다.", true},
		{"too short without terminator", "짧다", false},
		{"too short with terminator", "짧다.", false},
		{"long enough without terminator", "마침표가 없는 충분히 긴 문장입니다", false},
		{"question mark counts", "이 정책이 정말 효과가 있을까?", true},
		{"whitespace padding is trimmed", "   정부가 정책을 발표했다.   ", true},
		{"empty", "", false},
		{"whitespace only", "    ", false},
		{"terminator mid-text suffices", "첫 문장이다. 그리고 이어지는 말", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OneSentenceValid(tt.input); got != tt.want {
				t.Errorf("OneSentenceValid(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestThreeLinesValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"three short lines", "첫 줄 요약이다.\n둘째 줄 요약이다.\n셋째 줄 요약이다.", true},
		{"ten runes is not enough", "열 글자짜리 문장임.", false},
		{"twenty runes with terminator", "스무 글자를 채운 요약 문장을 씁니다.", true},
		{"long but no terminator", "마침표 없이 스무 글자를 넘겨 적어 본 요약 문장", false},
		{"question mark counts", "기사의 핵심은 무엇이고 왜 중요한 것일까?", true},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ThreeLinesValid(tt.input); got != tt.want {
				t.Errorf("ThreeLinesValid(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
