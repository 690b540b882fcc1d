package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sumcoach/api"
	"sumcoach/config"
	"sumcoach/evaluator"
	"sumcoach/llm"
	"sumcoach/provider"
	"sumcoach/seen"
	"sumcoach/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	gen, err := llm.NewFromEnv()
	if err != nil {
		log.Fatalf("Text generation setup failed: %v", err)
	}
	log.Printf("Using text generation model: %s", gen.ModelName())

	source := buildProvider(cfg, gen)
	pool := provider.NewPool(source, cfg.PoolSize)

	engine := session.NewEngine(pool, evaluator.NewLLMEvaluator(gen), session.Config{
		FetchTimeout: cfg.FetchTimeout,
		EvalTimeout:  cfg.EvalTimeout,
	})
	defer engine.Close()

	server := api.NewServer(engine, pool, cfg.Port)
	server.Start()
	if err := server.StartCron(cfg.PoolWarmCron); err != nil {
		log.Printf("Failed to start pool warming cron: %v", err)
	}

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

// buildProvider selects the article source: real news via RSS when
// configured, otherwise the AI article writer.
func buildProvider(cfg *config.Config, gen llm.TextGenerator) provider.ContentProvider {
	if cfg.ArticleSource != "rss" {
		return provider.NewWriter(gen)
	}

	var store seen.Store
	if cfg.RedisAddr != "" {
		redisStore, err := seen.NewRedisStore(cfg.RedisAddr, cfg.RedisPass, cfg.SeenTTL)
		if err != nil {
			log.Printf("Redis unavailable, using in-memory seen store: %v", err)
			store = seen.NewMemoryStore(cfg.SeenTTL)
		} else {
			store = redisStore
		}
	} else {
		store = seen.NewMemoryStore(cfg.SeenTTL)
	}

	return provider.NewRSSReader(cfg.Feed, cfg.FeedCount, store)
}
