package lifecycle

import (
	"context"
)

// SchemaManager defines the interface for relational schema management.
// Schema management is idempotent: safe to run multiple times.
// Configuration is provided when the manager is constructed.
type SchemaManager interface {
	// Create creates tables and indexes for employees, skills and
	// training resources.
	Create(ctx context.Context) error

	// Migrate brings an existing schema to the latest model definitions.
	Migrate(ctx context.Context) error
}
