package task

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Deletetask(c *gin.Context) {
	id := c.Param("id")
	ctx := context.Background()

	if _, err := h.db.GetDocument(ctx, tasksCollection, id); err != nil {
		if isNotFound(err) {
			notFound(c)
			return
		}
		h.storageError(c, err)
		return
	}

	if err := h.db.DeleteDocument(ctx, tasksCollection, id); err != nil {
		h.storageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
		"id":      id,
	})
}
