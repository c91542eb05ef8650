package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GenericRepositoryImpl[T any] struct {
	db *gorm.DB
}

func NewGenericRepository[T any](db *gorm.DB) GenericRepository[T] {
	return &GenericRepositoryImpl[T]{db: db}
}

func (r *GenericRepositoryImpl[T]) Create(entity *T) error {
	return r.db.Omit(clause.Associations).Create(entity).Error
}

func (r *GenericRepositoryImpl[T]) FindByID(ownerID string, id uint) (*T, error) {
	var entity T
	err := r.db.Where("owner_id = ?", ownerID).First(&entity, id).Error
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *GenericRepositoryImpl[T]) FindAll(ownerID string) ([]T, error) {
	var entities []T
	err := r.db.Where("owner_id = ?", ownerID).Find(&entities).Error
	return entities, err
}

// Update writes every column; loaded associations are never written back.
func (r *GenericRepositoryImpl[T]) Update(entity *T) error {
	return r.db.Omit(clause.Associations).Save(entity).Error
}

func (r *GenericRepositoryImpl[T]) Delete(ownerID string, id uint) error {
	var entity T
	result := r.db.Where("owner_id = ?", ownerID).Delete(&entity, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GenericRepositoryImpl[T]) Count(ownerID string) (int64, error) {
	var count int64
	err := r.db.Model(new(T)).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

func (r *GenericRepositoryImpl[T]) DeleteAllByOwner(ownerID string) (int64, error) {
	result := r.db.Where("owner_id = ?", ownerID).Delete(new(T))
	return result.RowsAffected, result.Error
}

// updateColumns applies a partial update to one owned row.
func updateColumns[T any](db *gorm.DB, ownerID string, id uint, values map[string]interface{}) error {
	result := db.Model(new(T)).Where("owner_id = ? AND id = ?", ownerID, id).Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
