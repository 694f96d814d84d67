package task

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"nxtdo-backend/dto"
	"nxtdo-backend/model"
)

func (h *Handler) Createtask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	data := map[string]interface{}{
		"title":     req.Title,
		"completed": req.Completed,
	}
	if req.Description != nil {
		data["description"] = *req.Description
	} else {
		data["description"] = nil
	}

	ctx := context.Background()
	id, err := h.db.CreateDocument(ctx, tasksCollection, data, "")
	if err != nil {
		h.storageError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.Task{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
}
