package provider

import (
	"context"
	"fmt"
	"log"
	"sync"

	"sumcoach/types"
)

// Pool is a bounded prefetch queue in front of a slower provider. Warm is
// called from a cron schedule so the fetching step stays short even when the
// underlying model call is slow.
type Pool struct {
	src  ContentProvider
	size int

	mu    sync.Mutex
	queue []*types.Article
}

// NewPool wraps src with a prefetch queue holding up to size articles
func NewPool(src ContentProvider, size int) *Pool {
	if size <= 0 {
		size = 3
	}
	return &Pool{src: src, size: size}
}

// FetchArticle pops a prefetched article if one is available, otherwise
// falls through to the wrapped provider.
func (p *Pool) FetchArticle(ctx context.Context) (*types.Article, error) {
	p.mu.Lock()
	if len(p.queue) > 0 {
		article := p.queue[0]
		p.queue = p.queue[1:]
		p.mu.Unlock()
		return article, nil
	}
	p.mu.Unlock()

	return p.src.FetchArticle(ctx)
}

// Warm tops the queue up to its configured size. The first fetch error stops
// warming; already-queued articles are kept.
func (p *Pool) Warm(ctx context.Context) error {
	for {
		p.mu.Lock()
		full := len(p.queue) >= p.size
		p.mu.Unlock()
		if full {
			return nil
		}

		article, err := p.src.FetchArticle(ctx)
		if err != nil {
			return fmt.Errorf("warming article pool: %w", err)
		}

		p.mu.Lock()
		p.queue = append(p.queue, article)
		queued := len(p.queue)
		p.mu.Unlock()
		log.Printf("Article pool warmed: %d/%d", queued, p.size)
	}
}

// Len returns the number of prefetched articles
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}
