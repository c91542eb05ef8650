package repository

import (
	"github.com/coopgretz/HomeStorage/internal/models"
	"gorm.io/gorm"
)

type ItemRepository interface {
	GenericRepository[models.Item]
	FindWithRelations(ownerID string, id uint) (*models.Item, error)
	ItemsSearch(
		whereClause string,
		args []interface{},
		order string,
		limit int,
		offset int,
	) ([]models.Item, error)
	CountSearch(whereClause string, args []interface{}) (int64, error)
	CountByCategory(ownerID string, categoryID uint) (int64, error)
	CountByStatus(ownerID string) (map[string]int64, error)
	UpdateColumns(ownerID string, id uint, values map[string]interface{}) error
	FindImagePaths(ownerID string, boxID *uint) ([]string, error)
	AllImagePaths() ([]string, error)
	CountPathReferences(path string, excludeID uint) (int64, error)
}

type ItemRepositoryImpl[T models.Item] struct {
	GenericRepository[models.Item]
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &ItemRepositoryImpl[models.Item]{
		GenericRepository: NewGenericRepository[models.Item](db),
		db:                db,
	}
}

func (r *ItemRepositoryImpl[T]) FindWithRelations(ownerID string, id uint) (*models.Item, error) {
	var item models.Item
	err := r.db.Preload("Box").Preload("Category").
		Where("owner_id = ?", ownerID).
		First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepositoryImpl[T]) ItemsSearch(
	whereClause string,
	args []interface{},
	order string,
	limit int,
	offset int,
) ([]models.Item, error) {
	var items []models.Item
	query := r.db.Preload("Box").Preload("Category").
		Where(whereClause, args...).
		Order(order).
		Limit(limit).
		Offset(offset)
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepositoryImpl[T]) CountSearch(whereClause string, args []interface{}) (int64, error) {
	var count int64
	err := r.db.Model(&models.Item{}).Where(whereClause, args...).Count(&count).Error
	return count, err
}

func (r *ItemRepositoryImpl[T]) CountByCategory(ownerID string, categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Item{}).
		Where("owner_id = ? AND category_id = ?", ownerID, categoryID).
		Count(&count).Error
	return count, err
}

func (r *ItemRepositoryImpl[T]) CountByStatus(ownerID string) (map[string]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	err := r.db.Model(&models.Item{}).
		Select("status, COUNT(*) AS total").
		Where("owner_id = ?", ownerID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

func (r *ItemRepositoryImpl[T]) UpdateColumns(ownerID string, id uint, values map[string]interface{}) error {
	return updateColumns[models.Item](r.db, ownerID, id, values)
}

// FindImagePaths lists the photos of an owner's items, optionally only those in one box.
func (r *ItemRepositoryImpl[T]) FindImagePaths(ownerID string, boxID *uint) ([]string, error) {
	query := r.db.Model(&models.Item{}).Where("owner_id = ? AND image_path IS NOT NULL", ownerID)
	if boxID != nil {
		query = query.Where("box_id = ?", *boxID)
	}
	var paths []string
	err := query.Pluck("image_path", &paths).Error
	return paths, err
}

func (r *ItemRepositoryImpl[T]) AllImagePaths() ([]string, error) {
	var paths []string
	err := r.db.Model(&models.Item{}).Where("image_path IS NOT NULL").Pluck("image_path", &paths).Error
	return paths, err
}

func (r *ItemRepositoryImpl[T]) CountPathReferences(path string, excludeID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Item{}).
		Where("image_path = ? AND id <> ?", path, excludeID).
		Count(&count).Error
	return count, err
}
