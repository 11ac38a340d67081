package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/rpgo/coastfi-calculator/internal/calculation"
	"github.com/rpgo/coastfi-calculator/internal/config"
	"github.com/rpgo/coastfi-calculator/internal/output"
)

// Server exposes the calculation engine over HTTP.
type Server struct {
	engine   *calculation.CalculationEngine
	parser   *config.InputParser
	branding output.Branding
}

// New creates a Server around engine.
func New(engine *calculation.CalculationEngine, branding output.Branding) *Server {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	return &Server{
		engine:   engine,
		parser:   config.NewInputParser(),
		branding: branding,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST("/evaluate", s.Evaluate)
	router.POST("/project", s.Project)
	router.POST("/chart.png", s.Chart)
	return router
}

// ListenAndServe runs the HTTP server until ctx is cancelled, then gives
// outstanding requests five seconds to complete.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// requestLogger logs one line per request at debug level, and at warn level for failures.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		entry := log.WithFields(log.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"elapsed": time.Since(start).String(),
		})
		if c.Writer.Status() >= http.StatusBadRequest {
			entry.Warn("request failed")
			return
		}
		entry.Debug("request served")
	}
}
