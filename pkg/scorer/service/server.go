// Copyright 2025 ClusterML
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/clusterml/node-scorer/pkg/scorer/engine"
)

const shutdownTimeout = 10 * time.Second

type Config struct {
	ListenAddress string
	EnablePprof   bool
}

// Server exposes the scoring engine over HTTP.
type Server struct {
	config Config
	engine *engine.Engine
	logger *zap.Logger
	http   *http.Server
}

func New(config Config, scoringEngine *engine.Engine, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	server := &Server{
		config: config,
		engine: scoringEngine,
		logger: logger,
	}

	router.POST("/score", server.handleScore)
	router.GET("/healthz", server.handleHealthz)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if config.EnablePprof {
		pprof.Register(router)
	}

	server.http = &http.Server{
		Addr:    config.ListenAddress,
		Handler: router,
	}
	return server
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("scoring service listening",
			zap.String("address", s.config.ListenAddress))
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}
