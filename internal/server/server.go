// Package server exposes the validator over HTTP: a browser page for pasting
// or uploading documents and a small JSON API.
package server

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eykd/mdvet-go/internal/logger"
	"github.com/eykd/mdvet-go/internal/reqid"
	"github.com/eykd/mdvet-go/internal/validator"
)

const requestIDHeader = "X-Request-ID"

// Config holds the HTTP service settings.
type Config struct {
	Addr           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxUploadBytes int64
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		Addr:           ":8080",
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxUploadBytes: 10 << 20,
	}
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 || c.IdleTimeout <= 0 {
		return errors.New("timeouts must be positive")
	}
	if c.MaxUploadBytes <= 0 {
		return errors.New("max upload size must be positive")
	}
	return nil
}

// Server wraps the HTTP server with lifecycle management.
type Server struct {
	config   Config
	logger   *zap.SugaredLogger
	validate *validator.Validator
	server   *http.Server
}

// New creates a Server with the given configuration. A nil logger discards
// all output.
func New(config Config, log *zap.Logger) (*Server, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server configuration: %w", err)
	}
	if log == nil {
		log = logger.Nop()
	}
	gin.SetMode(gin.ReleaseMode)

	return &Server{
		config:   config,
		logger:   logger.For(log, "server"),
		validate: validator.New(),
	}, nil
}

// Handler builds the routed gin engine. Exposed so tests can drive the
// server through httptest without binding a port.
func (s *Server) Handler() http.Handler {
	router := gin.New()
	router.Use(s.requestIDMiddleware())
	router.Use(s.loggingMiddleware())
	router.Use(s.recoveryMiddleware())

	router.GET("/", s.handleIndex)
	router.POST("/api/validate", s.handleValidate)
	router.POST("/api/validate-file", s.handleValidateFile)
	router.GET("/healthz", s.handleHealthz)
	router.GET("/metrics", metricsHandler())

	return router
}

// Start runs the server until it is stopped or fails to listen.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         s.config.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	s.logger.Infow("starting server", "addr", s.config.Addr)

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving on %s: %w", s.config.Addr, err)
	}
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	s.logger.Info("stopping server")
	return s.server.Shutdown(ctx)
}

// requestIDMiddleware assigns each request an ID, honoring one supplied by
// the client.
func (s *Server) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			if generated, err := reqid.Generate(rand.Reader); err == nil {
				id = generated
			}
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// loggingMiddleware logs each request and feeds the duration histogram.
func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		elapsed := time.Since(start)
		status := c.Writer.Status()
		observeRequest(path, c.Request.Method, strconv.Itoa(status), elapsed)

		s.logger.Infow("request",
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"duration", elapsed,
			"request_id", c.GetString("request_id"),
		)
	}
}

// recoveryMiddleware converts panics into logged 500 responses.
func (s *Server) recoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, err any) {
		s.logger.Errorw("panic recovered",
			"error", err,
			"request_id", c.GetString("request_id"),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	})
}
