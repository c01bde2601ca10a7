// Package store provides the document database access layer shared by all
// services. Documents are schemaless beyond the fields the application
// writes; each entity kind lives in its own named collection.
package store

import "context"

// Store is the single document store adapter for the process. Both
// operations are safe for concurrent use.
type Store interface {
	// Create inserts doc into the named collection and returns the
	// store-assigned id as a hex string. doc is any bson-marshalable
	// value; a zero _id field is assigned by the store.
	Create(ctx context.Context, collection string, doc any) (string, error)

	// Find decodes every document in the collection matching filter into
	// results, which must be a pointer to a slice. Iteration order is the
	// store's natural order. A filter matching nothing yields an empty
	// slice, not an error.
	Find(ctx context.Context, collection string, filter Filter, results any) error

	// Status reports connection state for the diagnostic endpoint.
	Status(ctx context.Context) Status
}

// Status describes the store connection for human debugging.
type Status struct {
	Connected   bool
	Database    string
	Collections []string
	Err         string
}
