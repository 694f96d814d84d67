package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateTaskRequestPatch(t *testing.T) {
	title := "renamed"
	completed := true

	req := UpdateTaskRequest{Title: &title, Completed: &completed}
	assert.Equal(t, map[string]interface{}{
		"title":     "renamed",
		"completed": true,
	}, req.Patch())
}

func TestUpdateTaskRequestPatchSkipsAbsentAndNull(t *testing.T) {
	var req UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title": null}`), &req))

	assert.Empty(t, req.Patch())
}
