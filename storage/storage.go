// Package storage provides database storage interfaces and implementations.
package storage

import (
	"context"
	"time"

	"github.com/safedep/coeur/core/audit"
	"github.com/safedep/coeur/orders"
)

// Store combines the order store and the invocation audit trail.
type Store interface {
	orders.Store
	audit.Recorder

	// Init initializes the database schema.
	Init(ctx context.Context) error

	// GetDatabaseInfo returns information about the database.
	GetDatabaseInfo(ctx context.Context) (*DatabaseInfo, error)

	// Close closes the database connection.
	Close() error
}

// DatabaseInfo contains information about the database.
type DatabaseInfo struct {
	Path            string
	SizeBytes       int64
	OrderCount      int
	InvocationCount int
	OldestRecord    time.Time
	NewestRecord    time.Time
}
