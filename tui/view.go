package tui

import (
	"fmt"
	"strings"

	"sumcoach/session"
	"sumcoach/types"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("📰 요약 트레이닝"))
	b.WriteString("\n\n")

	if m.Snap.Error != "" {
		b.WriteString(ErrorStyle.Render("❌ " + m.Snap.Error))
		b.WriteString("\n\n")
	}

	switch m.Snap.Step {
	case types.StepIntro:
		b.WriteString(m.viewIntro())
	case types.StepFetching:
		b.WriteString(m.viewFetching())
	case types.StepReading:
		b.WriteString(m.viewReading())
	case types.StepSummaryOne:
		b.WriteString(m.viewEditor("1단계: 한 문장 요약", session.OneSentenceMinRunes, m.Snap.OneSentenceValid))
	case types.StepSummaryThree:
		b.WriteString(m.viewEditor("2단계: 세 줄 요약", session.ThreeLinesMinRunes, m.Snap.ThreeLinesValid))
	case types.StepFeedback:
		b.WriteString(m.viewFeedback())
	}

	return b.String()
}

func (m Model) viewIntro() string {
	var b strings.Builder
	b.WriteString(HighlightStyle.Render("👋 기사를 읽고 요약하는 연습을 시작해 볼까요?"))
	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render("s: 시작"))
	if m.Snap.Error != "" {
		b.WriteString(InfoStyle.Render(" | r: 다시 시도"))
	}
	b.WriteString(InfoStyle.Render(" | q: 종료"))
	return b.String()
}

func (m Model) viewFetching() string {
	var b strings.Builder
	b.WriteString(StatusStyle.Render(fmt.Sprintf("⏳ 기사를 불러오는 중... %d", m.Snap.Countdown)))
	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render("q: 종료"))
	return b.String()
}

func (m Model) viewReading() string {
	var b strings.Builder
	article := m.Snap.Article
	if article == nil {
		return ErrorStyle.Render("기사가 없습니다")
	}

	var box strings.Builder
	box.WriteString(HighlightStyle.Render(article.Title))
	box.WriteString("\n\n")
	box.WriteString(article.Content)
	box.WriteString("\n\n")
	box.WriteString(InfoStyle.Render(fmt.Sprintf("출처: %s (%s)", article.Source, article.URL)))

	b.WriteString(BoxStyle.Render(box.String()))
	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render("기사를 충분히 읽은 뒤 계속하세요. enter: 요약 시작 | q: 종료"))
	return b.String()
}

func (m Model) viewEditor(heading string, minRunes int, valid bool) string {
	var b strings.Builder
	b.WriteString(HighlightStyle.Render(heading))
	b.WriteString("\n\n")
	b.WriteString(m.Editor.View())
	b.WriteString("\n\n")

	if m.Snap.Loading {
		b.WriteString(StatusStyle.Render("⏳ 평가를 기다리는 중..."))
		b.WriteString("\n")
	} else if valid {
		b.WriteString(StatusStyle.Render("✓ 제출할 수 있어요"))
		b.WriteString("\n")
	} else {
		hint := fmt.Sprintf("✎ %d자 이상, 마침표나 물음표로 끝나는 문장을 써 주세요", minRunes)
		b.WriteString(InfoStyle.Render(hint))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.Snap.Step == types.StepSummaryOne {
		b.WriteString(InfoStyle.Render("ctrl+d: 다음 단계 | esc: 기사로 돌아가기"))
	} else {
		b.WriteString(InfoStyle.Render("ctrl+d: 평가 요청 | esc: 이전 단계 | ctrl+r: 다시 제출"))
	}
	return b.String()
}

func (m Model) viewFeedback() string {
	result := m.Snap.Result
	if result == nil {
		return ErrorStyle.Render("평가 결과가 없습니다")
	}

	var b strings.Builder
	b.WriteString(m.formatFeedback("한 문장 요약", m.Snap.OneSentence, result.OneSentence))
	b.WriteString("\n")
	b.WriteString(m.formatFeedback("세 줄 요약", m.Snap.ThreeLines, result.ThreeLines))
	b.WriteString("\n")

	var age strings.Builder
	age.WriteString(HighlightStyle.Render(fmt.Sprintf("📊 추정 문해력 나이: %d세", result.EstimatedAge)))
	age.WriteString("\n")
	age.WriteString(result.AgeComment)
	b.WriteString(BoxStyle.Render(age.String()))

	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render("s: 새 기사로 다시 연습 | q: 종료"))
	return b.String()
}

func (m Model) formatFeedback(label, draft string, fb types.SummaryFeedback) string {
	var box strings.Builder
	box.WriteString(HighlightStyle.Render(fmt.Sprintf("%s — %d점", label, fb.Score)))
	box.WriteString("\n\n")
	box.WriteString(InfoStyle.Render("내 요약: " + draft))
	box.WriteString("\n")
	box.WriteString("코칭: " + fb.Comments)
	box.WriteString("\n")
	box.WriteString(StatusStyle.Render("모범 답안: " + fb.SuggestedSummary))
	return BoxStyle.Render(box.String())
}
