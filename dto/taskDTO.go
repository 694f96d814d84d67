package dto

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}

// UpdateTaskRequest carries a partial update. Pointer fields distinguish
// "leave untouched" (absent or null) from an explicit new value.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// Patch returns only the fields that carry a value, keyed by their stored
// field names.
func (r UpdateTaskRequest) Patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.Title != nil {
		patch["title"] = *r.Title
	}
	if r.Description != nil {
		patch["description"] = *r.Description
	}
	if r.Completed != nil {
		patch["completed"] = *r.Completed
	}
	return patch
}
