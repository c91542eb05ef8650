package storage

import (
	"context"
	"errors"
	"fmt"
	"github.com/coopgretz/HomeStorage/internal/config"
	"io"
	"path"
	"strings"
	"time"
)

var ErrObjectNotFound = errors.New("object not found")

// ObjectInfo describes a stored object. Key is always slash separated.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
}

// ObjectStore holds photos and QR codes under opaque keys such as
// "boxes/box-1-<uuid>.jpg". Remove of a missing key is not an error.
type ObjectStore interface {
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, *ObjectInfo, error)
	Remove(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
}

func NewObjectStore(configuration *config.Configuration) (ObjectStore, error) {
	switch configuration.Storage.Backend {
	case "s3":
		return NewS3Store(configuration.Storage.S3)
	case "disk":
		return NewDiskStore(configuration.Storage.Path)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", configuration.Storage.Backend)
	}
}

// CleanKey normalizes a key and rejects anything that could escape the store root.
func CleanKey(key string) (string, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" || strings.Contains(key, "\\") {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	cleaned := path.Clean(key)
	if cleaned != key || cleaned == "." || strings.HasPrefix(cleaned, "../") || cleaned == ".." {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return cleaned, nil
}
