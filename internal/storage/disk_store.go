package storage

import (
	"context"
	"errors"
	"github.com/gabriel-vasile/mimetype"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

type DiskStore struct {
	root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, err
	}
	return &DiskStore{root: root}, nil
}

func (s *DiskStore) filePath(key string) (string, error) {
	cleaned, err := CleanKey(key)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.root, filepath.FromSlash(cleaned)), nil
}

// Put writes to a temporary file first so readers never see a partial object.
func (s *DiskStore) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	target, err := s.filePath(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, reader); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), target)
}

func (s *DiskStore) Get(ctx context.Context, key string) (io.ReadCloser, *ObjectInfo, error) {
	target, err := s.filePath(key)
	if err != nil {
		return nil, nil, ErrObjectNotFound
	}
	file, err := os.Open(target)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil, ErrObjectNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, nil, err
	}
	if stat.IsDir() {
		file.Close()
		return nil, nil, ErrObjectNotFound
	}
	mime, err := mimetype.DetectReader(file)
	if err != nil {
		file.Close()
		return nil, nil, err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		file.Close()
		return nil, nil, err
	}
	cleaned, _ := CleanKey(key)
	return file, &ObjectInfo{
		Key:          cleaned,
		Size:         stat.Size(),
		ContentType:  mime.String(),
		LastModified: stat.ModTime(),
	}, nil
}

func (s *DiskStore) Remove(ctx context.Context, key string) error {
	target, err := s.filePath(key)
	if err != nil {
		return err
	}
	err = os.Remove(target)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *DiskStore) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	var objects []ObjectInfo
	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".upload-") {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if !strings.HasPrefix(key, prefix) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		objects = append(objects, ObjectInfo{Key: key, Size: info.Size(), LastModified: info.ModTime()})
		return ctx.Err()
	})
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return objects, err
}
