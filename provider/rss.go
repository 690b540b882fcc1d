package provider

import (
	"context"
	"fmt"
	"log"
	"time"

	"sumcoach/seen"
	"sumcoach/types"

	readability "github.com/go-shiori/go-readability"
	"github.com/mmcdole/gofeed"
)

const extractorTimeout = 30 * time.Second

// RSSReader serves real news from an RSS/Atom feed. Already-served items are
// skipped via the seen store; full text comes from readability extraction
// with the feed description as fallback.
type RSSReader struct {
	feedURL  string
	maxItems int
	store    seen.Store
	parser   *gofeed.Parser
}

// NewRSSReader creates a reader for the given feed preset name or URL
func NewRSSReader(feed string, maxItems int, store seen.Store) *RSSReader {
	if maxItems <= 0 {
		maxItems = 10
	}
	return &RSSReader{
		feedURL:  ResolveFeedURL(feed),
		maxItems: maxItems,
		store:    store,
		parser:   gofeed.NewParser(),
	}
}

// FetchArticle returns the first unseen item of the feed. When every item has
// been served already, the newest item is served again rather than failing.
func (r *RSSReader) FetchArticle(ctx context.Context) (*types.Article, error) {
	feed, err := r.parser.ParseURLWithContext(r.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	if len(feed.Items) == 0 {
		return nil, fmt.Errorf("feed %s has no items", r.feedURL)
	}

	item, err := r.pickItem(ctx, feed.Items)
	if err != nil {
		return nil, err
	}

	article := &types.Article{
		Title:   item.Title,
		Content: r.extractContent(item),
		URL:     item.Link,
		Source:  feed.Title,
	}
	if err := Normalize(article); err != nil {
		return nil, err
	}

	if err := r.store.MarkSeen(ctx, itemID(item)); err != nil {
		log.Printf("Failed to mark article as seen: %v", err)
	}
	return article, nil
}

// pickItem returns the first unseen item, falling back to the newest item
// when all candidates have been served.
func (r *RSSReader) pickItem(ctx context.Context, items []*gofeed.Item) (*gofeed.Item, error) {
	count := min(len(items), r.maxItems)
	for i := 0; i < count; i++ {
		served, err := r.store.Seen(ctx, itemID(items[i]))
		if err != nil {
			return nil, fmt.Errorf("seen lookup: %w", err)
		}
		if !served {
			return items[i], nil
		}
	}
	log.Printf("All %d feed items already served, repeating newest", count)
	return items[0], nil
}

// extractContent fetches the full article text, falling back to the feed's
// own description when extraction fails.
func (r *RSSReader) extractContent(item *gofeed.Item) string {
	if item.Link != "" {
		extracted, err := readability.FromURL(item.Link, extractorTimeout)
		if err == nil && extracted.TextContent != "" {
			return extracted.TextContent
		}
		if err != nil {
			log.Printf("Readability extraction failed for %s: %v", item.Link, err)
		}
	}
	if item.Description != "" {
		return item.Description
	}
	return item.Content
}

// itemID uses the feed GUID if available, otherwise hashes the link
func itemID(item *gofeed.Item) string {
	if item.GUID != "" {
		return item.GUID
	}
	return types.GenerateID(item.Link)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
