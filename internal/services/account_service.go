package services

import (
	"context"
	"fmt"
	"github.com/coopgretz/HomeStorage/internal/dto"
	"github.com/coopgretz/HomeStorage/internal/identity"
	"github.com/coopgretz/HomeStorage/internal/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AccountService interface {
	DeleteAccount(ctx context.Context, ownerID string) (*dto.AccountDeletionDTO, error)
}

type accountServiceImpl struct {
	db          *gorm.DB
	boxRepo     repository.BoxRepository
	itemRepo    repository.ItemRepository
	fileService FileService
	gateway     identity.Gateway
	logService  LogService
}

func NewAccountService(
	db *gorm.DB,
	boxRepo repository.BoxRepository,
	itemRepo repository.ItemRepository,
	fileService FileService,
	gateway identity.Gateway,
	logService LogService,
) AccountService {
	return &accountServiceImpl{
		db:          db,
		boxRepo:     boxRepo,
		itemRepo:    itemRepo,
		fileService: fileService,
		gateway:     gateway,
		logService:  logService,
	}
}

// DeleteAccount removes every stored image, then all rows owned by the
// user, then the identity itself. Image and identity failures do not stop
// the deletion; they are reported back as warnings.
func (s *accountServiceImpl) DeleteAccount(ctx context.Context, ownerID string) (*dto.AccountDeletionDTO, error) {
	boxAssets, err := s.boxRepo.FindAssetPaths(ownerID)
	if err != nil {
		return nil, err
	}
	itemImages, err := s.itemRepo.FindImagePaths(ownerID, nil)
	if err != nil {
		return nil, err
	}
	failedImages := s.fileService.DeleteImages(ctx, append(boxAssets, itemImages...), "account_delete")

	if err := s.deleteRows(ownerID); err != nil {
		return nil, fmt.Errorf("delete account data: %w", err)
	}

	result := &dto.AccountDeletionDTO{
		Message:      "Account deleted successfully",
		FailedImages: failedImages,
	}
	if err := s.gateway.DeleteUser(ctx, ownerID); err != nil {
		s.logService.Log.WithFields(logrus.Fields{
			"user":  ownerID,
			"error": err.Error(),
		}).Error("Failed to delete identity record")
		result.Message = "Account data deleted, but the login could not be removed. Please contact support."
		result.Warning = true
	}
	s.logService.Log.WithFields(logrus.Fields{
		"user":         ownerID,
		"failedImages": failedImages,
		"warning":      result.Warning,
	}).Info("account deleted")
	return result, nil
}

// deleteRows runs in one transaction: categories, then boxes (cascading
// their items), then any item left without a box.
func (s *accountServiceImpl) deleteRows(ownerID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := repository.NewCategoryRepository(tx).DeleteAllByOwner(ownerID); err != nil {
			return err
		}
		if _, err := repository.NewBoxRepository(tx).DeleteAllByOwner(ownerID); err != nil {
			return err
		}
		_, err := repository.NewItemRepository(tx).DeleteAllByOwner(ownerID)
		return err
	})
}
