// Package store provides the conversation state store and the key-value
// persistence surface it runs on. Backends are swappable: in-memory for tests
// and ephemeral sessions, bbolt for a local file, Postgres for shared
// deployments.
package store

import (
	"context"
	"fmt"
)

// KV is the durable key-value persistence surface. Implementations must treat
// Put as an atomic replace of the value under key.
type KV interface {
	// Get returns the value for key and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// ErrNotFound indicates an operation referenced a conversation that is not in
// the persisted list.
type ErrNotFound struct {
	ID string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("conversation not found: %s", e.ID)
}

// namespaced prefixes every key, isolating multiple stores sharing a backend.
type namespaced struct {
	kv     KV
	prefix string
}

// Namespaced wraps a KV so all keys live under the given prefix. Each browser
// session gets its own namespace over the shared backend; conversation state
// is never shared across sessions.
func Namespaced(kv KV, prefix string) KV {
	return &namespaced{kv: kv, prefix: prefix + "/"}
}

func (n *namespaced) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return n.kv.Get(ctx, n.prefix+key)
}

func (n *namespaced) Put(ctx context.Context, key string, value []byte) error {
	return n.kv.Put(ctx, n.prefix+key, value)
}

func (n *namespaced) Delete(ctx context.Context, key string) error {
	return n.kv.Delete(ctx, n.prefix+key)
}
