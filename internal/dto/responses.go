package dto

import (
	"github.com/coopgretz/HomeStorage/internal/models"
)

type StatsDTO struct {
	TotalBoxes    int64 `json:"totalBoxes"`
	TotalItems    int64 `json:"totalItems"`
	ItemsInBox    int64 `json:"itemsInBox"`
	ItemsOutOfBox int64 `json:"itemsOutOfBox"`
}

type QRCodeDTO struct {
	Success    bool        `json:"success"`
	QRCodePath string      `json:"qrCodePath"`
	Box        *models.Box `json:"box"`
	Message    string      `json:"message"`
}

type UploadDTO struct {
	Success   bool   `json:"success"`
	ImagePath string `json:"imagePath"`
	Message   string `json:"message"`
}

type AccountDeletionDTO struct {
	Message      string `json:"message"`
	Warning      bool   `json:"warning,omitempty"`
	FailedImages int    `json:"failedImages,omitempty"`
}

type NextBoxNumberDTO struct {
	BoxNumber int `json:"box_number"`
}

type MessageDTO struct {
	Message string `json:"message"`
}
