package session

import (
	"strings"
	"unicode/utf8"
)

// Minimum draft lengths in runes, exported for presentation hint text.
// Lengths are rune counts so Korean text is measured in characters, not bytes.
const (
	OneSentenceMinRunes = 10
	ThreeLinesMinRunes  = 20
)

// OneSentenceValid reports whether the one-sentence draft is complete enough
// to advance: at least 10 characters after trimming and at least one
// sentence terminator. Question marks count as terminators.
func OneSentenceValid(s string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= OneSentenceMinRunes && hasTerminator(s)
}

// ThreeLinesValid reports whether the three-line draft is complete enough to
// submit: at least 20 characters after trimming and at least one sentence
// terminator.
func ThreeLinesValid(s string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= ThreeLinesMinRunes && hasTerminator(s)
}

func hasTerminator(s string) bool {
	return strings.ContainsAny(s, ".?")
}
