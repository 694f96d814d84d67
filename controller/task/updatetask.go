package task

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"nxtdo-backend/dto"
)

// Updatetask applies a partial update: only fields present in the body
// reach the document. The post-image is re-read and returned so the caller
// sees the stamped updated_at.
func (h *Handler) Updatetask(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

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

	if err := h.db.UpdateDocument(ctx, tasksCollection, id, req.Patch()); err != nil {
		h.storageError(c, err)
		return
	}

	doc, err := h.db.GetDocument(ctx, tasksCollection, id)
	if err != nil {
		h.storageError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}
