package repositories

import "errors"

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("document not found")

// UpdateResult reports what an update operation did. Matched and Modified
// mirror the driver counts; UpsertedID is the hex id of a document created
// by an upsert, empty otherwise.
type UpdateResult struct {
	Matched    int64
	Modified   int64
	UpsertedID string
}
