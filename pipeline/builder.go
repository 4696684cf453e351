package pipeline

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/kbukum/wirekit/logger"
)

// Builder is the application pipeline handle passed to app-setup functions.
// It wraps a Gin engine plus an http.Server with optional extra http.Handler
// mounts on the same port, and accumulates middleware and routes during the
// app-setup phase before serving begins.
type Builder struct {
	httpServer *http.Server
	engine     *gin.Engine
	mux        *http.ServeMux
	config     Config
	log        *logger.Logger
}

// New creates a Builder. The Gin engine is created bare; app-setup functions
// attach middleware and routes.
func New(cfg Config, log *logger.Logger) *Builder {
	cfg.ApplyDefaults()

	// Gin mode follows the global zerolog level.
	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	mux := http.NewServeMux()

	// Gin is the fallback handler on the root mux.
	mux.Handle("/", engine)

	h2s := &http2.Server{
		MaxConcurrentStreams: 250,
		IdleTimeout:          120 * time.Second,
	}
	handler := h2c.NewHandler(mux, h2s)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeout) * time.Second,
	}

	return &Builder{
		httpServer: httpServer,
		engine:     engine,
		mux:        mux,
		config:     cfg,
		log:        log.WithComponent("pipeline"),
	}
}

// NewDefault creates a Builder with default configuration, useful in tests.
func NewDefault() *Builder {
	return New(Config{}, logger.GetGlobalLogger())
}

// Engine returns the underlying Gin engine for route registration.
func (b *Builder) Engine() *gin.Engine {
	return b.engine
}

// Use appends middleware to the pipeline.
func (b *Builder) Use(middleware ...gin.HandlerFunc) {
	b.engine.Use(middleware...)
}

// Handle mounts an http.Handler at the given pattern on the root ServeMux,
// alongside Gin. The pattern must include a trailing slash for subtree
// matches.
func (b *Builder) Handle(pattern string, handler http.Handler) {
	b.mux.Handle(pattern, handler)
	b.log.Debug("Handler mounted", map[string]interface{}{
		"pattern": pattern,
	})
}

// Handler returns the complete pipeline handler, useful for tests.
func (b *Builder) Handler() http.Handler {
	return b.httpServer.Handler
}

// Addr returns the configured listen address.
func (b *Builder) Addr() string {
	return b.httpServer.Addr
}

// Start binds the port and begins serving. It returns once the listener is
// bound so the caller knows the port is ready; serving continues in a
// goroutine.
func (b *Builder) Start(ctx context.Context) error {
	b.log.Info("Starting HTTP pipeline", map[string]interface{}{
		"addr": b.httpServer.Addr,
	})

	listener, err := net.Listen("tcp", b.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("pipeline failed to bind %s: %w", b.httpServer.Addr, err)
	}

	go func() {
		if err := b.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			b.log.Error("Pipeline error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	return nil
}

// Stop gracefully shuts down the pipeline with a 5-second deadline.
func (b *Builder) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := b.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("pipeline shutdown error: %w", err)
	}
	return nil
}
