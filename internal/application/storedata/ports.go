// Package storedata reconciles the in-memory store aggregate with the
// relational backend, the legacy document store, and the local backup
// cache.
package storedata

import (
	"context"

	"github.com/google/uuid"

	"github.com/storeadmin/backend/internal/domain/store"
)

// Row is one relational record in transit, keyed by snake_case column
// name. Nested payloads (items, details) travel as JSON strings.
type Row map[string]any

// TableStore is the tabular backend. Implementations treat tables as
// opaque names; the reconciler owns the schema mapping.
type TableStore interface {
	// Select returns all rows in the table belonging to the store.
	Select(ctx context.Context, table string, storeID uuid.UUID) ([]Row, error)
	// Upsert inserts or updates rows, matching on the conflict columns.
	Upsert(ctx context.Context, table string, conflictColumns []string, rows []Row) error
	// DeleteByStore removes every row in the table belonging to the store.
	DeleteByStore(ctx context.Context, table string, storeID uuid.UUID) error
}

// BackupCache is the best-effort local snapshot store. Failures are
// logged and swallowed; the cache is never load-bearing for a save.
type BackupCache interface {
	Store(ctx context.Context, key string, payload []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
}

// LegacyUser is an account in the legacy document world together with
// the stores it owns.
type LegacyUser struct {
	ID       string
	Email    string
	StoreIDs []uuid.UUID
}

// LegacyStore reads the pre-migration document world: one JSON document
// per store, plus the user directory used by the bulk migration.
type LegacyStore interface {
	FetchStoreDocument(ctx context.Context, storeID uuid.UUID) (*store.StoreSettings, error)
	ListUsers(ctx context.Context) ([]LegacyUser, error)
}
