package services

import (
	"context"
	"github.com/coopgretz/HomeStorage/internal/dto"
	"github.com/coopgretz/HomeStorage/internal/mapper"
	"github.com/coopgretz/HomeStorage/internal/models"
	"github.com/coopgretz/HomeStorage/internal/repository"
	"strings"
	"time"
)

type ItemService interface {
	GetItems(ownerID string, query dto.ItemQuery) (*dto.ItemListDTO, error)
	GetItemByID(ownerID string, id uint) (*dto.ItemGetDTO, error)
	CreateItem(ctx context.Context, ownerID string, request dto.ItemRequest) (*dto.ItemGetDTO, error)
	UpdateItem(ctx context.Context, ownerID string, id uint, request dto.ItemRequest) (*dto.ItemGetDTO, error)
	UpdateItemStatus(ownerID string, id uint, request dto.StatusRequest) (*dto.ItemGetDTO, error)
	DeleteItem(ctx context.Context, ownerID string, id uint) error
}

type itemServiceImpl struct {
	itemRepo     repository.ItemRepository
	boxRepo      repository.BoxRepository
	categoryRepo repository.CategoryRepository
	fileService  FileService
}

func NewItemService(
	itemRepo repository.ItemRepository,
	boxRepo repository.BoxRepository,
	categoryRepo repository.CategoryRepository,
	fileService FileService,
) ItemService {
	return &itemServiceImpl{
		itemRepo:     itemRepo,
		boxRepo:      boxRepo,
		categoryRepo: categoryRepo,
		fileService:  fileService,
	}
}

// GetItems returns one page of the caller's items; the total counts the same
// filtered set.
func (s *itemServiceImpl) GetItems(ownerID string, query dto.ItemQuery) (*dto.ItemListDTO, error) {
	if query.Status != "" && !models.IsValidStatus(query.Status) {
		return nil, fieldError("status", "must be one of in_box, out_of_box")
	}
	page, limit := NormalizePage(query.Page, query.Limit)
	whereClause, params := ParseItemFilter(ownerID, query)

	items, err := s.itemRepo.ItemsSearch(whereClause, params, itemsOrder, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	total, err := s.itemRepo.CountSearch(whereClause, params)
	if err != nil {
		return nil, err
	}
	return &dto.ItemListDTO{
		Items:      mapper.ToItemsGetDTOs(items),
		Pagination: mapper.ToPagination(page, limit, total),
	}, nil
}

func (s *itemServiceImpl) GetItemByID(ownerID string, id uint) (*dto.ItemGetDTO, error) {
	item, err := s.itemRepo.FindWithRelations(ownerID, id)
	if err != nil {
		return nil, translateError(err, "Item")
	}
	return mapper.ToItemGetDTO(item), nil
}

func (s *itemServiceImpl) CreateItem(ctx context.Context, ownerID string, request dto.ItemRequest) (*dto.ItemGetDTO, error) {
	request.Name = strings.TrimSpace(request.Name)
	if err := validateRequest(request); err != nil {
		return nil, err
	}
	if request.BoxID == nil || *request.BoxID == 0 {
		return nil, fieldError("box_id", "is required")
	}
	if err := s.checkReferences(ownerID, request); err != nil {
		return nil, err
	}
	imagePath, err := s.fileService.ClaimImage(ctx, UploadTargetItem, 0, request.ImagePath)
	if err != nil {
		return nil, err
	}
	status := request.Status
	if status == "" {
		status = models.StatusInBox
	}
	item := &models.Item{
		OwnerID:     ownerID,
		Name:        request.Name,
		Description: mapper.ToNullableString(strings.TrimSpace(request.Description)),
		BoxID:       request.BoxID,
		CategoryID:  nonZero(request.CategoryID),
		Status:      status,
		Quantity:    quantityOrDefault(request.Quantity),
		ImagePath:   imagePath,
		Notes:       mapper.ToNullableString(strings.TrimSpace(request.Notes)),
	}
	if err := s.itemRepo.Create(item); err != nil {
		return nil, translateError(err, "Item")
	}
	return s.GetItemByID(ownerID, item.ID)
}

func (s *itemServiceImpl) UpdateItem(ctx context.Context, ownerID string, id uint, request dto.ItemRequest) (*dto.ItemGetDTO, error) {
	request.Name = strings.TrimSpace(request.Name)
	if err := validateRequest(request); err != nil {
		return nil, err
	}
	item, err := s.itemRepo.FindByID(ownerID, id)
	if err != nil {
		return nil, translateError(err, "Item")
	}
	if err := s.checkReferences(ownerID, request); err != nil {
		return nil, err
	}
	imagePath, err := s.fileService.ClaimImage(ctx, UploadTargetItem, item.ID, request.ImagePath)
	if err != nil {
		return nil, err
	}

	var removed *string
	if request.RemoveImage && item.ImagePath != nil {
		removed, item.ImagePath = item.ImagePath, nil
	}
	if imagePath != nil {
		if item.ImagePath != nil && *item.ImagePath != *imagePath {
			removed = item.ImagePath
		}
		item.ImagePath = imagePath
	}
	item.Name = request.Name
	item.Description = mapper.ToNullableString(strings.TrimSpace(request.Description))
	item.BoxID = nonZero(request.BoxID)
	item.CategoryID = nonZero(request.CategoryID)
	item.Quantity = quantityOrDefault(request.Quantity)
	item.Notes = mapper.ToNullableString(strings.TrimSpace(request.Notes))
	if request.Status != "" {
		item.Status = request.Status
	}
	item.LastUpdated = time.Now()
	if err := s.itemRepo.Update(item); err != nil {
		return nil, translateError(err, "Item")
	}
	s.fileService.DeleteImage(ctx, removed, "item_remove_image")
	return s.GetItemByID(ownerID, id)
}

func (s *itemServiceImpl) UpdateItemStatus(ownerID string, id uint, request dto.StatusRequest) (*dto.ItemGetDTO, error) {
	if err := validateRequest(request); err != nil {
		return nil, err
	}
	err := s.itemRepo.UpdateColumns(ownerID, id, map[string]interface{}{
		"status":       request.Status,
		"last_updated": time.Now(),
	})
	if err != nil {
		return nil, translateError(err, "Item")
	}
	return s.GetItemByID(ownerID, id)
}

func (s *itemServiceImpl) DeleteItem(ctx context.Context, ownerID string, id uint) error {
	item, err := s.itemRepo.FindByID(ownerID, id)
	if err != nil {
		return translateError(err, "Item")
	}
	s.fileService.DeleteImage(ctx, item.ImagePath, "item_delete")
	return translateError(s.itemRepo.Delete(ownerID, id), "Item")
}

// checkReferences makes sure the box and category, when given, belong to the caller.
func (s *itemServiceImpl) checkReferences(ownerID string, request dto.ItemRequest) error {
	if boxID := nonZero(request.BoxID); boxID != nil {
		if _, err := s.boxRepo.FindByID(ownerID, *boxID); err != nil {
			if isNotFound(err) {
				return newError(ErrValidation, "Invalid box ID")
			}
			return err
		}
	}
	if categoryID := nonZero(request.CategoryID); categoryID != nil {
		if _, err := s.categoryRepo.FindByID(ownerID, *categoryID); err != nil {
			if isNotFound(err) {
				return newError(ErrValidation, "Invalid category ID")
			}
			return err
		}
	}
	return nil
}

func quantityOrDefault(quantity *int) int {
	if quantity == nil || *quantity < 1 {
		return 1
	}
	return *quantity
}

func nonZero(id *uint) *uint {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}
