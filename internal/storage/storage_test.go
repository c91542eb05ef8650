package storage

import (
	"bytes"
	"context"
	"github.com/coopgretz/HomeStorage/internal/config"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a 1x1 transparent png
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func storeContract(t *testing.T, store ObjectStore) {
	ctx := context.Background()

	err := store.Put(ctx, "boxes/box-1-a.png", bytes.NewReader(pngPixel), int64(len(pngPixel)), "image/png")
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "items/item-1-b.png", bytes.NewReader(pngPixel), int64(len(pngPixel)), "image/png"))

	reader, info, err := store.Get(ctx, "boxes/box-1-a.png")
	require.NoError(t, err)
	data, err := io.ReadAll(reader)
	require.NoError(t, reader.Close())
	require.NoError(t, err)
	assert.Equal(t, pngPixel, data)
	assert.Equal(t, "image/png", info.ContentType)
	assert.Equal(t, int64(len(pngPixel)), info.Size)

	objects, err := store.List(ctx, "boxes/")
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, "boxes/box-1-a.png", objects[0].Key)

	require.NoError(t, store.Remove(ctx, "boxes/box-1-a.png"))
	_, _, err = store.Get(ctx, "boxes/box-1-a.png")
	assert.ErrorIs(t, err, ErrObjectNotFound)

	// removing twice is fine
	assert.NoError(t, store.Remove(ctx, "boxes/box-1-a.png"))
}

func TestDiskStore(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)
	storeContract(t, store)
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestDiskStore_RejectsTraversal(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	err = store.Put(context.Background(), "../outside.png", bytes.NewReader(pngPixel), int64(len(pngPixel)), "image/png")
	assert.Error(t, err)

	_, _, err = store.Get(context.Background(), "boxes/../../etc/passwd")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestCleanKey(t *testing.T) {
	tests := []struct {
		key     string
		want    string
		wantErr bool
	}{
		{"boxes/box-1.png", "boxes/box-1.png", false},
		{"/qr-codes/box-2-qr.png", "qr-codes/box-2-qr.png", false},
		{"", "", true},
		{"..", "", true},
		{"../x", "", true},
		{"boxes/../../x", "", true},
		{"boxes\\x", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := CleanKey(tt.key)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMemoryStore_Backdate(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Put(context.Background(), "items/a.png", bytes.NewReader(pngPixel), 0, "image/png"))

	store.Backdate("items/a.png", 2*time.Hour)

	objects, err := store.List(context.Background(), "items/")
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.True(t, time.Since(objects[0].LastModified) > time.Hour)
}

func TestNewObjectStore(t *testing.T) {
	store, err := NewObjectStore(&config.Configuration{Storage: config.StorageConfig{Backend: "memory"}})
	assert.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	store, err = NewObjectStore(&config.Configuration{Storage: config.StorageConfig{Backend: "disk", Path: t.TempDir()}})
	assert.NoError(t, err)
	assert.IsType(t, &DiskStore{}, store)

	_, err = NewObjectStore(&config.Configuration{Storage: config.StorageConfig{Backend: "ftp"}})
	assert.Error(t, err)
}
