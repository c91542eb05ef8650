package models

const DefaultCategoryColor = "#3b82f6"

type Category struct {
	BaseModel
	OwnerID string `gorm:"type:varchar(64);not null;uniqueIndex:idx_categories_owner_name" json:"user_id"`
	Name    string `gorm:"type:varchar(255);not null;uniqueIndex:idx_categories_owner_name" json:"name"`
	Color   string `gorm:"type:varchar(9);not null" json:"color"`
}

// DefaultCategories is the set a user starts with.
func DefaultCategories(ownerID string) []Category {
	seed := []struct{ name, color string }{
		{"Books", "#8b5cf6"},
		{"Clothing", "#f59e0b"},
		{"Decorations", "#ec4899"},
		{"Electronics", "#3b82f6"},
		{"Kitchen", "#10b981"},
		{"Miscellaneous", "#6b7280"},
		{"Sports", "#14b8a6"},
		{"Tools", "#ef4444"},
	}
	categories := make([]Category, 0, len(seed))
	for _, s := range seed {
		categories = append(categories, Category{OwnerID: ownerID, Name: s.name, Color: s.color})
	}
	return categories
}
