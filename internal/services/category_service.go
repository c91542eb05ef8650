package services

import (
	"errors"
	"github.com/coopgretz/HomeStorage/internal/dto"
	"github.com/coopgretz/HomeStorage/internal/models"
	"github.com/coopgretz/HomeStorage/internal/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"strings"
)

type CategoryService interface {
	GetCategories(ownerID string) ([]models.Category, error)
	GetCategoryByID(ownerID string, id uint) (*models.Category, error)
	CreateCategory(ownerID string, request dto.CategoryRequest) (*models.Category, error)
	UpdateCategory(ownerID string, id uint, request dto.CategoryRequest) (*models.Category, error)
	DeleteCategory(ownerID string, id uint) error
}

type categoryServiceImpl struct {
	categoryRepo repository.CategoryRepository
	itemRepo     repository.ItemRepository
	logService   LogService
}

func NewCategoryService(categoryRepo repository.CategoryRepository, itemRepo repository.ItemRepository, logService LogService) CategoryService {
	return &categoryServiceImpl{categoryRepo: categoryRepo, itemRepo: itemRepo, logService: logService}
}

// GetCategories seeds the default set the first time a user has none.
func (s *categoryServiceImpl) GetCategories(ownerID string) ([]models.Category, error) {
	count, err := s.categoryRepo.Count(ownerID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		// a concurrent first listing may have seeded already
		if err := s.categoryRepo.CreateBatch(models.DefaultCategories(ownerID)); err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		s.logService.Log.WithFields(logrus.Fields{
			"user": ownerID,
		}).Debug("seeded default categories")
	}
	return s.categoryRepo.FindAllOrdered(ownerID)
}

func (s *categoryServiceImpl) GetCategoryByID(ownerID string, id uint) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(ownerID, id)
	if err != nil {
		return nil, translateError(err, "Category")
	}
	return category, nil
}

func (s *categoryServiceImpl) CreateCategory(ownerID string, request dto.CategoryRequest) (*models.Category, error) {
	request.Name = strings.TrimSpace(request.Name)
	request.Color = strings.TrimSpace(request.Color)
	if err := validateRequest(request); err != nil {
		return nil, err
	}
	color := request.Color
	if color == "" {
		color = models.DefaultCategoryColor
	}
	category := &models.Category{OwnerID: ownerID, Name: request.Name, Color: color}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, categoryError(err, request.Name)
	}
	return category, nil
}

func (s *categoryServiceImpl) UpdateCategory(ownerID string, id uint, request dto.CategoryRequest) (*models.Category, error) {
	request.Name = strings.TrimSpace(request.Name)
	request.Color = strings.TrimSpace(request.Color)
	if err := validateRequest(request); err != nil {
		return nil, err
	}
	category, err := s.GetCategoryByID(ownerID, id)
	if err != nil {
		return nil, err
	}
	category.Name = request.Name
	if request.Color != "" {
		category.Color = request.Color
	}
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, categoryError(err, request.Name)
	}
	return category, nil
}

// DeleteCategory refuses while any of the caller's items still use the category.
func (s *categoryServiceImpl) DeleteCategory(ownerID string, id uint) error {
	if _, err := s.GetCategoryByID(ownerID, id); err != nil {
		return err
	}
	inUse, err := s.itemRepo.CountByCategory(ownerID, id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return newError(ErrDependencyInUse, "Cannot delete category that is being used by items")
	}
	return translateError(s.categoryRepo.Delete(ownerID, id), "Category")
}

func categoryError(err error, name string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return newError(ErrConflict, "Category %q already exists", name)
	}
	return translateError(err, "Category")
}
