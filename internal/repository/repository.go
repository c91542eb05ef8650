package repository

// GenericRepository is the owner-scoped CRUD every entity repository embeds.
// Reads and deletes never cross owners.
type GenericRepository[T any] interface {
	Create(entity *T) error
	FindByID(ownerID string, id uint) (*T, error)
	FindAll(ownerID string) ([]T, error)
	Update(entity *T) error
	Delete(ownerID string, id uint) error
	Count(ownerID string) (int64, error)
	DeleteAllByOwner(ownerID string) (int64, error)
}
