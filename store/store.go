// Package store persists the last used projection inputs.
//
// The persistence is a small key-value capability (KV) with three
// implementations: a directory of JSON files (the default, in the user config
// dir), an in-memory map (tests, ephemeral runs) and a Postgres table.
// Params layers the record semantics on top of any KV.
//
// There is no locking: concurrent writers sharing the same KV race and the
// last write wins.
package store

import (
	"context"
	"errors"
	"strings"
)

// Key is the well-known slot holding the last used parameters.
const Key = "stock_valuation_data"

// ErrNotFound is returned by KV.Get for a key that was never set or has been deleted.
var ErrNotFound = errors.New("key not found")

// KV is a durable key-value slot store.
//
// Open a KV with one of the Open* functions and Close it when done.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
	Close() error
}

// Open opens the KV designated by location: a "postgres://" (or
// "postgresql://") URL opens a Postgres KV, anything else is a directory.
func Open(ctx context.Context, location string) (KV, error) {
	if strings.HasPrefix(location, "postgres://") || strings.HasPrefix(location, "postgresql://") {
		kv, err := OpenPostgres(ctx, location)
		if err != nil {
			return nil, err
		}
		return kv, nil
	}
	kv, err := OpenDir(location)
	if err != nil {
		return nil, err
	}
	return kv, nil
}
