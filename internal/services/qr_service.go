package services

import (
	"bytes"
	"context"
	"fmt"
	"github.com/coopgretz/HomeStorage/internal/config"
	"github.com/coopgretz/HomeStorage/internal/models"
	"github.com/coopgretz/HomeStorage/internal/repository"
	"github.com/coopgretz/HomeStorage/internal/storage"
	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"strings"
)

const (
	qrCodeSize   = 256
	qrCodeColumn = "qr_code_path"
	qrKeySpace   = "qr-codes/"
)

type QRService interface {
	GenerateBoxQRCode(ctx context.Context, ownerID string, boxID uint) (*models.Box, error)
}

type qrServiceImpl struct {
	boxRepo     repository.BoxRepository
	store       storage.ObjectStore
	fileService FileService
	publicURL   string
}

func NewQRService(
	boxRepo repository.BoxRepository,
	store storage.ObjectStore,
	fileService FileService,
	configuration *config.Configuration,
) QRService {
	return &qrServiceImpl{
		boxRepo:     boxRepo,
		store:       store,
		fileService: fileService,
		publicURL:   strings.TrimRight(configuration.Server.PublicURL, "/"),
	}
}

// QRCodeKey names a fresh QR image for a box. The random part keeps keys
// unguessable since /files is served without a session.
func QRCodeKey(boxID uint) string {
	return fmt.Sprintf("%sbox-%d-%s.png", qrKeySpace, boxID, uuid.NewString())
}

// BoxURL is the contents page a box's QR code points at.
func BoxURL(publicURL string, boxID uint) string {
	return fmt.Sprintf("%s/box/%d", publicURL, boxID)
}

func (s *qrServiceImpl) GenerateBoxQRCode(ctx context.Context, ownerID string, boxID uint) (*models.Box, error) {
	box, err := s.boxRepo.FindByID(ownerID, boxID)
	if err != nil {
		return nil, translateError(err, "Box")
	}
	png, err := qrcode.Encode(BoxURL(s.publicURL, box.ID), qrcode.Medium, qrCodeSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	key := QRCodeKey(box.ID)
	if err := s.store.Put(ctx, key, bytes.NewReader(png), int64(len(png)), "image/png"); err != nil {
		return nil, err
	}
	if err := s.boxRepo.UpdateColumns(ownerID, box.ID, map[string]interface{}{qrCodeColumn: key}); err != nil {
		s.fileService.DeleteImage(ctx, &key, "qr_rollback")
		return nil, translateError(err, "Box")
	}
	previous := box.QRCodePath
	box.QRCodePath = &key
	s.fileService.DeleteImage(ctx, previous, "qr_replace")
	return box, nil
}
