package connection

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nxtdo-backend/config"
	"nxtdo-backend/controller/task"
	"nxtdo-backend/services"
)

const shutdownTimeout = 10 * time.Second

// NewRouter assembles the HTTP surface: service endpoints plus the task
// controller routes.
func NewRouter(cfg *config.Config, db services.Database, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":     "Hello from nxtdo-backend!",
			"environment": cfg.Environment,
			"project":     cfg.ProjectName,
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":           "healthy",
			"environment":      cfg.Environment,
			"firebase_project": cfg.Firebase.ProjectID,
		})
	})

	router.GET("/testing", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":     "This is a Testing endpoint from feature branch!",
			"environment": "preview",
		})
	})

	router.GET("/checking", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":     "This is a Checking endpoint from checking!",
			"environment": "preview",
		})
	})

	task.TaskController(router, db, cfg, logger)

	return router
}

// StartServer runs the service until SIGINT/SIGTERM. Credential bootstrap
// is best-effort: without credentials the server still binds and answers
// liveness probes, and task endpoints fail on database access.
func StartServer(logger *zap.Logger) {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	fb := NewFirebase(cfg, logger)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := fb.Client(ctx); err != nil {
		logger.Warn("firebase initialization failed, task endpoints will be unavailable", zap.Error(err))
	}
	defer func() { _ = fb.Close() }()

	db := services.NewDatabaseService(fb, cfg.Environment, logger)
	router := NewRouter(cfg, db, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("port", cfg.Port),
			zap.String("environment", cfg.Environment))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}

	logger.Info("shutting down")
}
