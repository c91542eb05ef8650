package services

import (
	"context"
	"errors"
	"fmt"
	"github.com/coopgretz/HomeStorage/internal/metrics"
	"github.com/coopgretz/HomeStorage/internal/repository"
	"github.com/coopgretz/HomeStorage/internal/storage"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"sync/atomic"
)

const (
	MaxImageSize       = 10 << 20
	deleteConcurrency  = 8
	UploadTargetBox    = "box"
	UploadTargetItem   = "item"
	imageColumn        = "image_path"
	defaultContentType = "application/octet-stream"
)

// imageKeySpaces maps an upload target to the prefix its photos live under.
var imageKeySpaces = map[string]string{
	UploadTargetBox:  "boxes/",
	UploadTargetItem: "items/",
}

// ImageKeyPrefix is the start of every photo key of a target type, e.g. "boxes/box-".
func ImageKeyPrefix(targetType string) string {
	return imageKeySpaces[targetType] + targetType + "-"
}

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type FileService interface {
	UploadImage(ctx context.Context, ownerID, targetType string, targetID uint, fileHeader *multipart.FileHeader) (string, error)
	Open(ctx context.Context, key string) (io.ReadCloser, *storage.ObjectInfo, error)
	ClaimImage(ctx context.Context, targetType string, targetID uint, imagePath string) (*string, error)
	DeleteImage(ctx context.Context, key *string, operation string)
	DeleteImages(ctx context.Context, keys []string, operation string) int
}

type FileServiceImpl struct {
	itemRepository repository.ItemRepository
	boxRepository  repository.BoxRepository
	store          storage.ObjectStore
	logService     LogService
}

func NewFileService(
	itemRepository repository.ItemRepository,
	boxRepository repository.BoxRepository,
	store storage.ObjectStore,
	logService LogService,
) FileService {
	return &FileServiceImpl{
		itemRepository: itemRepository,
		boxRepository:  boxRepository,
		store:          store,
		logService:     logService,
	}
}

// UploadImage stores a photo for a box or item the caller owns and points the
// record at it. The previous photo is removed afterwards, best-effort.
func (s *FileServiceImpl) UploadImage(ctx context.Context, ownerID, targetType string, targetID uint, fileHeader *multipart.FileHeader) (string, error) {
	if targetType != UploadTargetBox && targetType != UploadTargetItem {
		return "", fieldError("type", "must be box or item")
	}
	if targetID == 0 {
		return "", fieldError("id", "is required")
	}
	if fileHeader == nil {
		return "", fieldError("image", "is required")
	}
	if fileHeader.Size > MaxImageSize {
		return "", fieldError("image", "must be at most 10MB")
	}
	declared := strings.ToLower(strings.TrimSpace(strings.SplitN(fileHeader.Header.Get("Content-Type"), ";", 2)[0]))
	if _, ok := allowedImageTypes[declared]; !ok {
		return "", fieldError("image", "must be a jpeg, png, gif or webp image")
	}

	previous, err := s.currentImage(ownerID, targetType, targetID)
	if err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	detected, err := mimetype.DetectReader(file)
	if err != nil {
		return "", err
	}
	contentType := detected.String()
	extension, ok := allowedImageTypes[contentType]
	if !ok {
		return "", fieldError("image", "content is not a supported image")
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	if ext := strings.ToLower(filepath.Ext(fileHeader.Filename)); ext == ".jpeg" && extension == ".jpg" {
		extension = ext
	}

	key := fmt.Sprintf("%s%d-%s%s", ImageKeyPrefix(targetType), targetID, uuid.NewString(), extension)
	if err := s.store.Put(ctx, key, file, fileHeader.Size, contentType); err != nil {
		return "", err
	}

	values := map[string]interface{}{imageColumn: key}
	if targetType == UploadTargetBox {
		err = s.boxRepository.UpdateColumns(ownerID, targetID, values)
	} else {
		err = s.itemRepository.UpdateColumns(ownerID, targetID, values)
	}
	if err != nil {
		s.DeleteImage(ctx, &key, "upload_rollback")
		return "", err
	}
	metrics.ImagesUploaded.WithLabelValues(targetType).Inc()

	if previous != nil && *previous != key {
		s.DeleteImage(ctx, previous, "upload_replace")
	}
	return key, nil
}

func (s *FileServiceImpl) currentImage(ownerID, targetType string, targetID uint) (*string, error) {
	if targetType == UploadTargetBox {
		box, err := s.boxRepository.FindByID(ownerID, targetID)
		if err != nil {
			return nil, translateError(err, "Box")
		}
		return box.ImagePath, nil
	}
	item, err := s.itemRepository.FindByID(ownerID, targetID)
	if err != nil {
		return nil, translateError(err, "Item")
	}
	return item.ImagePath, nil
}

func (s *FileServiceImpl) Open(ctx context.Context, key string) (io.ReadCloser, *storage.ObjectInfo, error) {
	reader, info, err := s.store.Get(ctx, key)
	if errors.Is(err, storage.ErrObjectNotFound) {
		return nil, nil, newError(ErrNotFound, "File not found")
	}
	if err != nil {
		return nil, nil, err
	}
	if info.ContentType == "" {
		info.ContentType = defaultContentType
	}
	return reader, info, nil
}

// ClaimImage validates a client supplied image path for a box or item.
// The object must exist under the target's key space and no other box or
// item may point at it, so a known key cannot be attached across owners.
// targetID is zero for records that do not exist yet.
func (s *FileServiceImpl) ClaimImage(ctx context.Context, targetType string, targetID uint, imagePath string) (*string, error) {
	imagePath = strings.TrimSpace(imagePath)
	if imagePath == "" {
		return nil, nil
	}
	invalid := fieldError("image_path", "is not a valid "+targetType+" image")
	if !strings.HasPrefix(imagePath, ImageKeyPrefix(targetType)) || strings.Contains(imagePath, "..") {
		return nil, invalid
	}

	var boxID, itemID uint
	if targetType == UploadTargetBox {
		boxID = targetID
	} else {
		itemID = targetID
	}
	boxRefs, err := s.boxRepository.CountPathReferences(imagePath, boxID)
	if err != nil {
		return nil, err
	}
	itemRefs, err := s.itemRepository.CountPathReferences(imagePath, itemID)
	if err != nil {
		return nil, err
	}
	if boxRefs+itemRefs > 0 {
		return nil, invalid
	}

	reader, _, err := s.store.Get(ctx, imagePath)
	if errors.Is(err, storage.ErrObjectNotFound) {
		return nil, invalid
	}
	if err != nil {
		return nil, err
	}
	reader.Close()
	return &imagePath, nil
}

// DeleteImage removes an object without failing the caller; failures are
// logged and counted.
func (s *FileServiceImpl) DeleteImage(ctx context.Context, key *string, operation string) {
	if key == nil || *key == "" {
		return
	}
	if err := s.store.Remove(ctx, *key); err != nil {
		s.logDeleteFailure(*key, operation, err)
	}
}

// DeleteImages removes keys concurrently and returns how many could not be removed.
func (s *FileServiceImpl) DeleteImages(ctx context.Context, keys []string, operation string) int {
	var failed atomic.Int64
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(deleteConcurrency)
	for _, key := range keys {
		if key == "" {
			continue
		}
		key := key
		group.Go(func() error {
			if err := s.store.Remove(groupCtx, key); err != nil {
				failed.Add(1)
				s.logDeleteFailure(key, operation, err)
			}
			// never abort the other deletions
			return nil
		})
	}
	_ = group.Wait()
	return int(failed.Load())
}

func (s *FileServiceImpl) logDeleteFailure(key, operation string, err error) {
	metrics.StorageCleanupFailures.WithLabelValues(operation).Inc()
	s.logService.Log.WithFields(logrus.Fields{
		"operation": operation,
		"key":       key,
		"error":     err.Error(),
	}).Warn("Failed to delete stored image")
}
