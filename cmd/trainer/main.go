package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"sumcoach/config"
	"sumcoach/evaluator"
	"sumcoach/llm"
	"sumcoach/provider"
	"sumcoach/seen"
	"sumcoach/session"
	"sumcoach/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	gen, err := llm.NewFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Text generation setup failed: %v\n", err)
		os.Exit(1)
	}

	// The alternate screen and log output don't mix
	log.SetOutput(io.Discard)

	engine := session.NewEngine(buildProvider(cfg, gen), evaluator.NewLLMEvaluator(gen), session.Config{
		FetchTimeout: cfg.FetchTimeout,
		EvalTimeout:  cfg.EvalTimeout,
	})
	defer engine.Close()

	p := tea.NewProgram(tui.NewModel(engine), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running trainer: %v\n", err)
		os.Exit(1)
	}
}

// buildProvider selects the article source, mirroring the server entrypoint
func buildProvider(cfg *config.Config, gen llm.TextGenerator) provider.ContentProvider {
	if cfg.ArticleSource != "rss" {
		return provider.NewWriter(gen)
	}

	var store seen.Store
	if cfg.RedisAddr != "" {
		redisStore, err := seen.NewRedisStore(cfg.RedisAddr, cfg.RedisPass, cfg.SeenTTL)
		if err == nil {
			store = redisStore
		}
	}
	if store == nil {
		store = seen.NewMemoryStore(cfg.SeenTTL)
	}

	return provider.NewRSSReader(cfg.Feed, cfg.FeedCount, store)
}
