package task

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultListLimit = 100

func (h *Handler) ListTasks(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultListLimit)))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "limit must be an integer"})
		return
	}

	ctx := context.Background()
	docs, err := h.db.ListDocuments(ctx, tasksCollection, limit)
	if err != nil {
		h.storageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks":       docs,
		"count":       len(docs),
		"environment": h.cfg.Environment,
	})
}

func (h *Handler) GetTask(c *gin.Context) {
	ctx := context.Background()
	doc, err := h.db.GetDocument(ctx, tasksCollection, c.Param("id"))
	if err != nil {
		if isNotFound(err) {
			notFound(c)
			return
		}
		h.storageError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}
