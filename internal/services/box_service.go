package services

import (
	"context"
	"errors"
	"github.com/coopgretz/HomeStorage/internal/dto"
	"github.com/coopgretz/HomeStorage/internal/mapper"
	"github.com/coopgretz/HomeStorage/internal/models"
	"github.com/coopgretz/HomeStorage/internal/repository"
	"gorm.io/gorm"
	"strings"
)

type BoxService interface {
	CreateBox(ctx context.Context, ownerID string, request dto.BoxRequest) (*models.Box, error)
	GetBoxByID(ownerID string, id uint) (*models.Box, error)
	UpdateBox(ctx context.Context, ownerID string, id uint, request dto.BoxRequest) (*models.Box, error)
	DeleteBox(ctx context.Context, ownerID string, id uint) error
	GetBoxes(ownerID string) ([]models.Box, error)
	NextBoxNumber(ownerID string) (int, error)
}

func NewBoxService(boxRepo repository.BoxRepository, itemRepo repository.ItemRepository, fileService FileService) BoxService {
	return &boxServiceImpl{boxRepo: boxRepo, itemRepo: itemRepo, fileService: fileService}
}

type boxServiceImpl struct {
	boxRepo     repository.BoxRepository
	itemRepo    repository.ItemRepository
	fileService FileService
}

func (s *boxServiceImpl) CreateBox(ctx context.Context, ownerID string, request dto.BoxRequest) (*models.Box, error) {
	if err := validateRequest(request); err != nil {
		return nil, err
	}
	imagePath, err := s.fileService.ClaimImage(ctx, UploadTargetBox, 0, request.ImagePath)
	if err != nil {
		return nil, err
	}
	box := &models.Box{
		OwnerID:     ownerID,
		BoxNumber:   request.BoxNumber,
		Label:       mapper.ToNullableString(strings.TrimSpace(request.Label)),
		Description: mapper.ToNullableString(strings.TrimSpace(request.Description)),
		Location:    locationOrDefault(request.Location),
		ImagePath:   imagePath,
	}
	if err := s.boxRepo.Create(box); err != nil {
		return nil, boxError(err, request.BoxNumber)
	}
	return box, nil
}

func (s *boxServiceImpl) GetBoxByID(ownerID string, id uint) (*models.Box, error) {
	box, err := s.boxRepo.FindByID(ownerID, id)
	if err != nil {
		return nil, translateError(err, "Box")
	}
	return box, nil
}

func (s *boxServiceImpl) UpdateBox(ctx context.Context, ownerID string, id uint, request dto.BoxRequest) (*models.Box, error) {
	if err := validateRequest(request); err != nil {
		return nil, err
	}
	box, err := s.GetBoxByID(ownerID, id)
	if err != nil {
		return nil, err
	}
	imagePath, err := s.fileService.ClaimImage(ctx, UploadTargetBox, box.ID, request.ImagePath)
	if err != nil {
		return nil, err
	}
	var removed *string
	if request.RemoveImage && box.ImagePath != nil {
		removed, box.ImagePath = box.ImagePath, nil
	}
	if imagePath != nil {
		if box.ImagePath != nil && *box.ImagePath != *imagePath {
			removed = box.ImagePath
		}
		box.ImagePath = imagePath
	}
	box.BoxNumber = request.BoxNumber
	box.Label = mapper.ToNullableString(strings.TrimSpace(request.Label))
	box.Description = mapper.ToNullableString(strings.TrimSpace(request.Description))
	box.Location = locationOrDefault(request.Location)
	if err := s.boxRepo.Update(box); err != nil {
		return nil, boxError(err, request.BoxNumber)
	}
	s.fileService.DeleteImage(ctx, removed, "box_remove_image")
	return box, nil
}

// DeleteBox removes the box; its items go with it through the foreign key.
// Photos of the box and of those items are removed first, best-effort.
func (s *boxServiceImpl) DeleteBox(ctx context.Context, ownerID string, id uint) error {
	box, err := s.GetBoxByID(ownerID, id)
	if err != nil {
		return err
	}
	itemImages, err := s.itemRepo.FindImagePaths(ownerID, &box.ID)
	if err != nil {
		return err
	}
	s.fileService.DeleteImages(ctx, append(box.AssetPaths(), itemImages...), "box_delete")
	return translateError(s.boxRepo.Delete(ownerID, id), "Box")
}

func (s *boxServiceImpl) GetBoxes(ownerID string) ([]models.Box, error) {
	boxes, err := s.boxRepo.FindAllOrdered(ownerID)
	if err != nil {
		return nil, err
	}
	return boxes, nil
}

// NextBoxNumber suggests the lowest unused number, filling gaps first.
func (s *boxServiceImpl) NextBoxNumber(ownerID string) (int, error) {
	numbers, err := s.boxRepo.FindNumbers(ownerID)
	if err != nil {
		return 0, err
	}
	next := 1
	for _, number := range numbers {
		if number > next {
			break
		}
		if number == next {
			next++
		}
	}
	return next, nil
}

func boxError(err error, boxNumber int) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return newError(ErrConflict, "Box number %d already exists", boxNumber)
	}
	return translateError(err, "Box")
}

func locationOrDefault(location string) string {
	if location = strings.TrimSpace(location); location != "" {
		return location
	}
	return models.DefaultLocation
}
