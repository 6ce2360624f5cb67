package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmehra/clinicdesk/internal/storage"
)

func TestFileStoreRoundTrip(t *testing.T) {
	st, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, ok, err := st.Load(ctx, "doctors")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, st.Save(ctx, "doctors", `{"doctors":[],"next_id":1}`))

	v, ok, err := st.Load(ctx, "doctors")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"doctors":[],"next_id":1}`, v)

	// Overwrite replaces the whole document.
	require.NoError(t, st.Save(ctx, "doctors", `{"doctors":[],"next_id":5}`))
	v, _, err = st.Load(ctx, "doctors")
	require.NoError(t, err)
	assert.Equal(t, `{"doctors":[],"next_id":5}`, v)
}

func TestFileStoreDelete(t *testing.T) {
	st, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, "services", "{}"))
	require.NoError(t, st.Delete(ctx, "services"))
	_, ok, err := st.Load(ctx, "services")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting a missing key is fine.
	require.NoError(t, st.Delete(ctx, "services"))
}

func TestFileStorePing(t *testing.T) {
	st, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, st.Ping(context.Background()))
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	st := storage.NewMemoryStore()
	ctx := context.Background()

	_, ok, err := st.Load(ctx, "appointments")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, st.Save(ctx, "appointments", "{}"))
	v, ok, err := st.Load(ctx, "appointments")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "{}", v)

	require.NoError(t, st.Delete(ctx, "appointments"))
	_, ok, err = st.Load(ctx, "appointments")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpenRejectsUnknownBackend(t *testing.T) {
	_, err := storage.Open(context.Background(), storage.Options{Backend: "cassandra"})
	assert.Error(t, err)
}

func TestOpenDefaultsToFile(t *testing.T) {
	st, err := storage.Open(context.Background(), storage.Options{Dir: t.TempDir()})
	require.NoError(t, err)
	defer st.Close()
	assert.IsType(t, &storage.FileStore{}, st)
}
