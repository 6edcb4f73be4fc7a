package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kvContract exercises the behavior every backend must share.
func kvContract(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Put(ctx, "k", []byte("v1")))
	value, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v1"), value)

	require.NoError(t, kv.Put(ctx, "k", []byte("v2")))
	value, _, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), value)

	require.NoError(t, kv.Delete(ctx, "k"))
	_, ok, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting a missing key is not an error.
	assert.NoError(t, kv.Delete(ctx, "k"))
}

func TestMemory_Contract(t *testing.T) {
	kvContract(t, NewMemory())
}

func TestMemory_CopiesValues(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()

	original := []byte("data")
	require.NoError(t, kv.Put(ctx, "k", original))
	original[0] = 'X'

	value, _, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), value)

	value[0] = 'Y'
	again, _, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), again)
}

func TestBolt_Contract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conv", "store.bolt")
	kv, err := OpenBolt(path)
	require.NoError(t, err)
	defer func() { _ = kv.Close() }()

	kvContract(t, kv)
}

func TestBolt_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.bolt")

	kv, err := OpenBolt(path)
	require.NoError(t, err)
	require.NoError(t, kv.Put(ctx, "k", []byte("survives")))
	require.NoError(t, kv.Close())

	reopened, err := OpenBolt(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	value, ok, err := reopened.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("survives"), value)
}

func TestNamespaced_Isolation(t *testing.T) {
	ctx := context.Background()
	backend := NewMemory()

	alpha := Namespaced(backend, "sess-a")
	beta := Namespaced(backend, "sess-b")

	require.NoError(t, alpha.Put(ctx, "conversations", []byte("alpha data")))

	_, ok, err := beta.Get(ctx, "conversations")
	require.NoError(t, err)
	assert.False(t, ok, "sessions must not observe each other's keys")

	value, ok, err := alpha.Get(ctx, "conversations")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("alpha data"), value)

	require.NoError(t, beta.Put(ctx, "conversations", []byte("beta data")))
	require.NoError(t, alpha.Delete(ctx, "conversations"))

	value, ok, err = beta.Get(ctx, "conversations")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("beta data"), value)
}
