package storage

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
)

type memoryObject struct {
	data         []byte
	contentType  string
	lastModified time.Time
}

// MemoryStore keeps objects in process memory. Used by tests and the "memory" backend.
type MemoryStore struct {
	mutex   sync.RWMutex
	objects map[string]memoryObject
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]memoryObject), now: time.Now}
}

func (s *MemoryStore) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	cleaned, err := CleanKey(key)
	if err != nil {
		return err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.objects[cleaned] = memoryObject{data: data, contentType: contentType, lastModified: s.now()}
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, key string) (io.ReadCloser, *ObjectInfo, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	object, ok := s.objects[strings.TrimPrefix(key, "/")]
	if !ok {
		return nil, nil, ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(object.data)), &ObjectInfo{
		Key:          strings.TrimPrefix(key, "/"),
		Size:         int64(len(object.data)),
		ContentType:  object.contentType,
		LastModified: object.lastModified,
	}, nil
}

func (s *MemoryStore) Remove(ctx context.Context, key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.objects, strings.TrimPrefix(key, "/"))
	return nil
}

func (s *MemoryStore) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	var objects []ObjectInfo
	for key, object := range s.objects {
		if strings.HasPrefix(key, prefix) {
			objects = append(objects, ObjectInfo{
				Key:          key,
				Size:         int64(len(object.data)),
				ContentType:  object.contentType,
				LastModified: object.lastModified,
			})
		}
	}
	sort.Slice(objects, func(i, j int) bool { return objects[i].Key < objects[j].Key })
	return objects, nil
}

// Has reports whether key is stored.
func (s *MemoryStore) Has(key string) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	_, ok := s.objects[key]
	return ok
}

// Backdate shifts the modification time of key, for grace period tests.
func (s *MemoryStore) Backdate(key string, age time.Duration) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if object, ok := s.objects[key]; ok {
		object.lastModified = object.lastModified.Add(-age)
		s.objects[key] = object
	}
}
