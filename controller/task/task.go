// Package task exposes the CRUD endpoints for the task collection.
package task

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nxtdo-backend/config"
	"nxtdo-backend/services"
)

// tasksCollection is the logical name; the gateway applies the
// environment prefix.
const tasksCollection = "tasks"

type Handler struct {
	db     services.Database
	cfg    *config.Config
	logger *zap.Logger
}

// TaskController registers the task routes on the router.
func TaskController(router *gin.Engine, db services.Database, cfg *config.Config, logger *zap.Logger) {
	h := &Handler{db: db, cfg: cfg, logger: logger}

	router.POST("/task", h.Createtask)

	routes := router.Group("/tasks")
	{
		routes.GET("", h.ListTasks)
		routes.GET("/:id", h.GetTask)
		routes.PUT("/:id", h.Updatetask)
		routes.DELETE("/:id", h.Deletetask)
	}
}

// storageError renders a gateway failure; anything that is not a logical
// absence is a 500.
func (h *Handler) storageError(c *gin.Context, err error) {
	h.logger.Error("task operation failed",
		zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"detail": "Task not found"})
}

func isNotFound(err error) bool {
	return errors.Is(err, services.ErrNotFound)
}
