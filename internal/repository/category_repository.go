package repository

import (
	"github.com/coopgretz/HomeStorage/internal/models"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	GenericRepository[models.Category]
	FindAllOrdered(ownerID string) ([]models.Category, error)
	CreateBatch(categories []models.Category) error
}

type CategoryRepositoryImpl[T models.Category] struct {
	GenericRepository[models.Category]
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &CategoryRepositoryImpl[models.Category]{
		GenericRepository: NewGenericRepository[models.Category](db),
		db:                db,
	}
}

func (r *CategoryRepositoryImpl[T]) FindAllOrdered(ownerID string) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("owner_id = ?", ownerID).Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepositoryImpl[T]) CreateBatch(categories []models.Category) error {
	if len(categories) == 0 {
		return nil
	}
	return r.db.Create(&categories).Error
}
