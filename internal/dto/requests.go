package dto

type BoxRequest struct {
	BoxNumber   int    `json:"box_number" validate:"required,gt=0"`
	Label       string `json:"label" validate:"max=255"`
	Description string `json:"description"`
	Location    string `json:"location" validate:"max=255"`
	ImagePath   string `json:"image_path"`
	RemoveImage bool   `json:"remove_image"`
}

type ItemRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
	BoxID       *uint  `json:"box_id"`
	CategoryID  *uint  `json:"category_id"`
	Status      string `json:"status" validate:"omitempty,itemstatus"`
	Quantity    *int   `json:"quantity" validate:"omitempty,gte=1"`
	Notes       string `json:"notes"`
	ImagePath   string `json:"image_path"`
	RemoveImage bool   `json:"remove_image"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required,itemstatus"`
}

type CategoryRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Color string `json:"color" validate:"omitempty,rgbhex"`
}
