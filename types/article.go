package types

import (
	"crypto/sha256"
	"encoding/hex"
)

// Article is the text the user trains on. Source is a provenance label
// attached by our code (feed title or "AI 생성 기사"), never taken from the
// provider payload itself.
type Article struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
	Source  string `json:"source"`
}

// GenerateID creates a short, stable ID by hashing the provided string input
func GenerateID(input string) string {
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:])[:16]
}
