package provider

import (
	"context"
	"errors"
	"strings"

	"sumcoach/types"
)

// Fixed placeholder text for fields the upstream response left blank.
// Content has no placeholder: an article without content is unusable.
const (
	PlaceholderTitle = "(제목 없음)"
	PlaceholderURL   = "(원문 링크 없음)"
)

// ErrEmptyArticle indicates the upstream response had no usable article body
var ErrEmptyArticle = errors.New("article has no usable content")

// ContentProvider returns one article per call. Calls are idempotent-safe to
// retry and each call may return a different article.
type ContentProvider interface {
	FetchArticle(ctx context.Context) (*types.Article, error)
}

// Normalize trims the article's fields and fills blank title/url with the
// fixed placeholders. A blank content field cannot be papered over and
// returns ErrEmptyArticle.
func Normalize(a *types.Article) error {
	a.Title = strings.TrimSpace(a.Title)
	a.Content = strings.TrimSpace(a.Content)
	a.URL = strings.TrimSpace(a.URL)

	if a.Content == "" {
		return ErrEmptyArticle
	}
	if a.Title == "" {
		a.Title = PlaceholderTitle
	}
	if a.URL == "" {
		a.URL = PlaceholderURL
	}
	return nil
}
