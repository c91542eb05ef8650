package repository

import (
	"github.com/coopgretz/HomeStorage/internal/models"
	"gorm.io/gorm"
)

type BoxRepository interface {
	GenericRepository[models.Box]
	FindAllOrdered(ownerID string) ([]models.Box, error)
	FindNumbers(ownerID string) ([]int, error)
	UpdateColumns(ownerID string, id uint, values map[string]interface{}) error
	FindAssetPaths(ownerID string) ([]string, error)
	AllAssetPaths() ([]string, error)
	CountPathReferences(path string, excludeID uint) (int64, error)
}

type BoxRepositoryImpl[T models.Box] struct {
	GenericRepository[models.Box]
	db *gorm.DB
}

func NewBoxRepository(db *gorm.DB) BoxRepository {
	return &BoxRepositoryImpl[models.Box]{
		GenericRepository: NewGenericRepository[models.Box](db),
		db:                db,
	}
}

func (r *BoxRepositoryImpl[T]) FindAllOrdered(ownerID string) ([]models.Box, error) {
	var boxes []models.Box
	err := r.db.Where("owner_id = ?", ownerID).Order("box_number ASC").Find(&boxes).Error
	if err != nil {
		return nil, err
	}
	return boxes, nil
}

func (r *BoxRepositoryImpl[T]) FindNumbers(ownerID string) ([]int, error) {
	var numbers []int
	err := r.db.Model(&models.Box{}).
		Where("owner_id = ?", ownerID).
		Order("box_number ASC").
		Pluck("box_number", &numbers).Error
	return numbers, err
}

func (r *BoxRepositoryImpl[T]) UpdateColumns(ownerID string, id uint, values map[string]interface{}) error {
	return updateColumns[models.Box](r.db, ownerID, id, values)
}

func (r *BoxRepositoryImpl[T]) FindAssetPaths(ownerID string) ([]string, error) {
	return r.assetPaths(r.db.Where("owner_id = ?", ownerID))
}

// AllAssetPaths spans every owner; only the janitor uses it.
func (r *BoxRepositoryImpl[T]) AllAssetPaths() ([]string, error) {
	return r.assetPaths(r.db)
}

func (r *BoxRepositoryImpl[T]) assetPaths(scope *gorm.DB) ([]string, error) {
	var boxes []models.Box
	err := scope.Session(&gorm.Session{}).
		Select("id", "image_path", "qr_code_path").
		Where("image_path IS NOT NULL OR qr_code_path IS NOT NULL").
		Find(&boxes).Error
	if err != nil {
		return nil, err
	}
	var paths []string
	for i := range boxes {
		paths = append(paths, boxes[i].AssetPaths()...)
	}
	return paths, nil
}

// CountPathReferences counts boxes of any owner pointing at path, other than excludeID.
func (r *BoxRepositoryImpl[T]) CountPathReferences(path string, excludeID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Box{}).
		Where("(image_path = ? OR qr_code_path = ?) AND id <> ?", path, path, excludeID).
		Count(&count).Error
	return count, err
}
