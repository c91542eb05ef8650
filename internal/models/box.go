package models

const DefaultLocation = "Garage"

type Box struct {
	BaseModel
	OwnerID     string  `gorm:"type:varchar(64);not null;uniqueIndex:idx_boxes_owner_number" json:"user_id"`
	BoxNumber   int     `gorm:"not null;uniqueIndex:idx_boxes_owner_number" json:"box_number"`
	Label       *string `gorm:"type:varchar(255)" json:"label"`
	Description *string `gorm:"type:text" json:"description"`
	Location    string  `gorm:"type:varchar(255);not null" json:"location"`
	ImagePath   *string `gorm:"type:text" json:"image_path"`
	QRCodePath  *string `gorm:"type:text" json:"qr_code_path"`
}

// AssetPaths returns every stored object the box points at.
func (b *Box) AssetPaths() []string {
	var paths []string
	if b.ImagePath != nil && *b.ImagePath != "" {
		paths = append(paths, *b.ImagePath)
	}
	if b.QRCodePath != nil && *b.QRCodePath != "" {
		paths = append(paths, *b.QRCodePath)
	}
	return paths
}
