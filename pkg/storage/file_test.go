package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamvault_backend/pkg/storage"
)

func TestFileStoreRoundTrip(t *testing.T) {
	snaps, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, snaps.Save("billing-storage", []byte(`{"customers":[]}`)))

	data, err := snaps.Load("billing-storage")
	require.NoError(t, err)
	assert.Equal(t, `{"customers":[]}`, string(data))
}

func TestFileStoreLoadMissing(t *testing.T) {
	snaps, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = snaps.Load("never-written")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestFileStoreOverwrite(t *testing.T) {
	snaps, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, snaps.Save("app-storage", []byte("v1")))
	require.NoError(t, snaps.Save("app-storage", []byte("v2")))

	data, err := snaps.Load("app-storage")
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))
}

func TestFileStoreCreatesDirectory(t *testing.T) {
	dir := t.TempDir() + "/nested/snapshots"

	snaps, err := storage.NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, snaps.Save("app-storage", []byte("{}")))
}
