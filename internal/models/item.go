package models

import (
	"time"
)

const (
	StatusInBox    = "in_box"
	StatusOutOfBox = "out_of_box"
)

type Item struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OwnerID     string    `gorm:"type:varchar(64);not null;index" json:"user_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	BoxID       *uint     `gorm:"index" json:"box_id"`
	Box         *Box      `gorm:"foreignKey:BoxID;constraint:OnDelete:CASCADE" json:"box,omitempty"`
	CategoryID  *uint     `gorm:"index" json:"category_id"`
	Category    *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Status      string    `gorm:"type:varchar(20);not null;index" json:"status"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	ImagePath   *string   `gorm:"type:text" json:"image_path"`
	Notes       *string   `gorm:"type:text" json:"notes"`
	DateAdded   time.Time `gorm:"autoCreateTime;index" json:"date_added"`
	LastUpdated time.Time `gorm:"autoUpdateTime" json:"last_updated"`
}

func IsValidStatus(status string) bool {
	return status == StatusInBox || status == StatusOutOfBox
}
