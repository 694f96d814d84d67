package services

import "errors"

// Sentinels used for stable error mapping at the HTTP edge.
var (
	// ErrNotFound indicates the requested document does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrUnavailable indicates the Firestore client could not be
	// initialized, usually because no credentials were available at
	// startup.
	ErrUnavailable = errors.New("database unavailable")
)
