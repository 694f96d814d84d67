package model

// Task is the stored document shape for a single to-do item. Timestamps
// are ISO-8601 UTC strings stamped by the database gateway.
type Task struct {
	ID          string  `firestore:"id,omitempty" json:"id"`
	Title       string  `firestore:"title" json:"title"`
	Description *string `firestore:"description" json:"description"`
	Completed   bool    `firestore:"completed" json:"completed"`
	CreatedAt   string  `firestore:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt   string  `firestore:"updated_at,omitempty" json:"updated_at,omitempty"`
}
