// Package api - thin, deterministic API layer over the valuation engine
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ratecard/core/calc"
	"ratecard/core/types"
	"ratecard/internal/config"
	"ratecard/internal/logging"
)

// Server is the API server
type Server struct {
	engine   *gin.Engine
	version  string
	defaults calc.Defaults
	currency string
}

// NewServer creates a new API server from the active configuration
func NewServer(version string, cfg *config.Config) *Server {
	defaults := calc.DefaultDefaults()
	defaults.SeasonalPricing = cfg.Engine.SeasonalPricing
	if cfg.Engine.DefaultWhitelisting != "" {
		defaults.Whitelisting = types.WhitelistingType(cfg.Engine.DefaultWhitelisting)
	}

	s := &Server{
		engine:   gin.New(),
		version:  version,
		defaults: defaults,
		currency: cfg.Engine.DefaultCurrency,
	}

	s.engine.Use(gin.Recovery(), requestLogger())
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.engine.GET("/health", s.handleHealth)
	s.engine.GET("/version", s.handleVersion)

	v1 := s.engine.Group("/api/v1")
	v1.POST("/quote", s.handleQuote)
	v1.POST("/quote/ugc", s.handleUGCQuote)
	v1.POST("/quote/affiliate", s.handleAffiliateQuote)
	v1.POST("/rate-card", s.handleRateCard)
}

// Handler exposes the router for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the context is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info("api server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// requestLogger logs one line per request
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logging.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)))
	}
}
