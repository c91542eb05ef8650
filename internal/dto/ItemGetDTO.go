package dto

import (
	"time"
)

// ItemGetDTO is an item flattened with the display fields of its box and category.
type ItemGetDTO struct {
	ID            uint      `json:"id"`
	OwnerID       string    `json:"user_id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	BoxID         *uint     `json:"box_id"`
	CategoryID    *uint     `json:"category_id"`
	Status        string    `json:"status"`
	Quantity      int       `json:"quantity"`
	ImagePath     *string   `json:"image_path"`
	Notes         *string   `json:"notes"`
	DateAdded     time.Time `json:"date_added"`
	LastUpdated   time.Time `json:"last_updated"`
	BoxNumber     *int      `json:"box_number,omitempty"`
	BoxLabel      *string   `json:"box_label,omitempty"`
	BoxLocation   *string   `json:"box_location,omitempty"`
	CategoryName  *string   `json:"category_name,omitempty"`
	CategoryColor *string   `json:"category_color,omitempty"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasMore    bool  `json:"hasMore"`
}

type ItemListDTO struct {
	Items      []ItemGetDTO `json:"items"`
	Pagination Pagination   `json:"pagination"`
}

// ItemQuery holds the list filters for GET /items.
type ItemQuery struct {
	Search     string
	BoxID      *uint
	CategoryID *uint
	Status     string
	Page       int
	Limit      int
}
