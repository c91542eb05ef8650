package mapper

import (
	"github.com/coopgretz/HomeStorage/internal/dto"
	"github.com/coopgretz/HomeStorage/internal/models"
	"math"
)

func ToItemGetDTO(item *models.Item) *dto.ItemGetDTO {
	itemDTO := &dto.ItemGetDTO{
		ID:          item.ID,
		OwnerID:     item.OwnerID,
		Name:        item.Name,
		Description: item.Description,
		BoxID:       item.BoxID,
		CategoryID:  item.CategoryID,
		Status:      item.Status,
		Quantity:    item.Quantity,
		ImagePath:   item.ImagePath,
		Notes:       item.Notes,
		DateAdded:   item.DateAdded,
		LastUpdated: item.LastUpdated,
	}
	if box := item.Box; box != nil {
		number, location := box.BoxNumber, box.Location
		itemDTO.BoxNumber = &number
		itemDTO.BoxLabel = box.Label
		itemDTO.BoxLocation = &location
	}
	if category := item.Category; category != nil {
		name, color := category.Name, category.Color
		itemDTO.CategoryName = &name
		itemDTO.CategoryColor = &color
	}
	return itemDTO
}

func ToItemsGetDTOs(items []models.Item) []dto.ItemGetDTO {
	itemsGetDTOs := make([]dto.ItemGetDTO, 0, len(items))
	for i := range items {
		itemsGetDTOs = append(itemsGetDTOs, *ToItemGetDTO(&items[i]))
	}
	return itemsGetDTOs
}

func ToPagination(page, limit int, total int64) dto.Pagination {
	offset := (page - 1) * limit
	return dto.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		HasMore:    int64(offset+limit) < total,
	}
}

// ToNullableString maps blank input to NULL.
func ToNullableString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
