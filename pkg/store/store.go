// Package store provides the collection store: named collections of
// JSON-encoded records that are always read and replaced as a whole.
// This mirrors the access pattern of the administration UI the API
// serves: single writer, read-modify-write, last write wins.
package store

import "context"

// Collection names persisted by the application.
const (
	Users             = "users"
	Teachers          = "teachers"
	Courses           = "courses"
	Timeframes        = "timeframes"
	Rooms             = "rooms"
	Batches           = "batches"
	TestSlots         = "testSlots"
	TestRegistrations = "testRegistrations"
	Students          = "students"
	Attendance        = "attendance"
	Performance       = "performance"

	// InitFlag is the sentinel gating one-time demo seeding.
	InitFlag = "isInitialized"
)

// Store is the persistence collaborator for entity collections.
// Get returns the raw JSON document for a collection, or nil when the
// collection has never been written. Put replaces the whole document.
type Store interface {
	Get(ctx context.Context, collection string) ([]byte, error)
	Put(ctx context.Context, collection string, doc []byte) error
}
