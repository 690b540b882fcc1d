package api

import (
	"context"
	"log"
	"net/http"

	"sumcoach/provider"
	"sumcoach/session"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

// Server owns the HTTP presentation boundary plus the cron job that keeps
// the article pool warm.
type Server struct {
	engine     *session.Engine
	pool       *provider.Pool
	httpServer *http.Server
	cron       *cron.Cron
}

// NewServer creates the HTTP server for the given engine. pool may be nil
// when no prefetching is wanted.
func NewServer(engine *session.Engine, pool *provider.Pool, port string) *Server {
	s := &Server{
		engine: engine,
		pool:   pool,
		cron:   cron.New(),
	}
	s.httpServer = &http.Server{
		Addr:    ":" + port,
		Handler: NewRouter(engine),
	}
	return s
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(engine *session.Engine) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	// Register resource routers
	RegisterSessionRoutes(r, engine)
	RegisterHealthRoutes(r)
	return r
}

// Start starts the HTTP server in the background
func (s *Server) Start() {
	log.Printf("Starting trainer server on %s", s.httpServer.Addr)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()
}

// StartCron schedules pool warming. Warming is skipped while an article
// fetch is in flight so the session's own fetch gets the provider first.
func (s *Server) StartCron(schedule string) error {
	if s.pool == nil {
		return nil
	}
	_, err := s.cron.AddFunc(schedule, func() {
		if s.engine.Snapshot().Loading {
			log.Println("Cron skipped: session is busy")
			return
		}
		if err := s.pool.Warm(context.Background()); err != nil {
			log.Printf("Cron pool warming error: %v", err)
		}
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("Pool warming cron started with schedule: %s", schedule)
	return nil
}

// Shutdown gracefully shuts down the server and stops the cron
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down trainer server...")
	if s.cron != nil {
		s.cron.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
