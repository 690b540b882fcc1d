package provider

import (
	"errors"
	"testing"

	"sumcoach/types"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		article   types.Article
		wantErr   bool
		wantTitle string
		wantURL   string
	}{
		{
			name:      "complete article untouched",
			article:   types.Article{Title: "제목", Content: "본문", URL: "https://example.com/1"},
			wantTitle: "제목",
			wantURL:   "https://example.com/1",
		},
		{
			name:      "blank title gets placeholder",
			article:   types.Article{Title: "  ", Content: "본문", URL: "https://example.com/1"},
			wantTitle: PlaceholderTitle,
			wantURL:   "https://example.com/1",
		},
		{
			name:      "blank url gets placeholder",
			article:   types.Article{Title: "제목", Content: "본문"},
			wantTitle: "제목",
			wantURL:   PlaceholderURL,
		},
		{
			name:    "blank content is an error",
			article: types.Article{Title: "제목", Content: "   ", URL: "https://example.com/1"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Normalize(&tt.article)
			if tt.wantErr {
				if !errors.Is(err, ErrEmptyArticle) {
					t.Errorf("Expected ErrEmptyArticle, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize() error: %v", err)
			}
			if tt.article.Title != tt.wantTitle {
				t.Errorf("Expected title %q, got %q", tt.wantTitle, tt.article.Title)
			}
			if tt.article.URL != tt.wantURL {
				t.Errorf("Expected url %q, got %q", tt.wantURL, tt.article.URL)
			}
		})
	}
}

func TestResolveFeedURL(t *testing.T) {
	if got := ResolveFeedURL("yonhap"); got != FeedPresets["yonhap"] {
		t.Errorf("Expected preset expansion, got %q", got)
	}
	direct := "https://example.com/custom.xml"
	if got := ResolveFeedURL(direct); got != direct {
		t.Errorf("Expected direct URL passthrough, got %q", got)
	}
}
