package handlers

import (
	"context"
	"github.com/coopgretz/HomeStorage/internal/dto"
	"github.com/coopgretz/HomeStorage/internal/models"
	"github.com/coopgretz/HomeStorage/internal/storage"
	"io"
	"mime/multipart"

	"github.com/stretchr/testify/mock"
)

type MockBoxService struct {
	mock.Mock
}

func (m *MockBoxService) CreateBox(ctx context.Context, ownerID string, request dto.BoxRequest) (*models.Box, error) {
	args := m.Called(ownerID, request)
	box, _ := args.Get(0).(*models.Box)
	return box, args.Error(1)
}

func (m *MockBoxService) GetBoxByID(ownerID string, id uint) (*models.Box, error) {
	args := m.Called(ownerID, id)
	box, _ := args.Get(0).(*models.Box)
	return box, args.Error(1)
}

func (m *MockBoxService) UpdateBox(ctx context.Context, ownerID string, id uint, request dto.BoxRequest) (*models.Box, error) {
	args := m.Called(ownerID, id, request)
	box, _ := args.Get(0).(*models.Box)
	return box, args.Error(1)
}

func (m *MockBoxService) DeleteBox(ctx context.Context, ownerID string, id uint) error {
	args := m.Called(ownerID, id)
	return args.Error(0)
}

func (m *MockBoxService) GetBoxes(ownerID string) ([]models.Box, error) {
	args := m.Called(ownerID)
	return args.Get(0).([]models.Box), args.Error(1)
}

func (m *MockBoxService) NextBoxNumber(ownerID string) (int, error) {
	args := m.Called(ownerID)
	return args.Int(0), args.Error(1)
}

type MockQRService struct {
	mock.Mock
}

func (m *MockQRService) GenerateBoxQRCode(ctx context.Context, ownerID string, boxID uint) (*models.Box, error) {
	args := m.Called(ownerID, boxID)
	box, _ := args.Get(0).(*models.Box)
	return box, args.Error(1)
}

type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) GetItems(ownerID string, query dto.ItemQuery) (*dto.ItemListDTO, error) {
	args := m.Called(ownerID, query)
	list, _ := args.Get(0).(*dto.ItemListDTO)
	return list, args.Error(1)
}

func (m *MockItemService) GetItemByID(ownerID string, id uint) (*dto.ItemGetDTO, error) {
	args := m.Called(ownerID, id)
	item, _ := args.Get(0).(*dto.ItemGetDTO)
	return item, args.Error(1)
}

func (m *MockItemService) CreateItem(ctx context.Context, ownerID string, request dto.ItemRequest) (*dto.ItemGetDTO, error) {
	args := m.Called(ownerID, request)
	item, _ := args.Get(0).(*dto.ItemGetDTO)
	return item, args.Error(1)
}

func (m *MockItemService) UpdateItem(ctx context.Context, ownerID string, id uint, request dto.ItemRequest) (*dto.ItemGetDTO, error) {
	args := m.Called(ownerID, id, request)
	item, _ := args.Get(0).(*dto.ItemGetDTO)
	return item, args.Error(1)
}

func (m *MockItemService) UpdateItemStatus(ownerID string, id uint, request dto.StatusRequest) (*dto.ItemGetDTO, error) {
	args := m.Called(ownerID, id, request)
	item, _ := args.Get(0).(*dto.ItemGetDTO)
	return item, args.Error(1)
}

func (m *MockItemService) DeleteItem(ctx context.Context, ownerID string, id uint) error {
	args := m.Called(ownerID, id)
	return args.Error(0)
}

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) GetCategories(ownerID string) ([]models.Category, error) {
	args := m.Called(ownerID)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryService) GetCategoryByID(ownerID string, id uint) (*models.Category, error) {
	args := m.Called(ownerID, id)
	category, _ := args.Get(0).(*models.Category)
	return category, args.Error(1)
}

func (m *MockCategoryService) CreateCategory(ownerID string, request dto.CategoryRequest) (*models.Category, error) {
	args := m.Called(ownerID, request)
	category, _ := args.Get(0).(*models.Category)
	return category, args.Error(1)
}

func (m *MockCategoryService) UpdateCategory(ownerID string, id uint, request dto.CategoryRequest) (*models.Category, error) {
	args := m.Called(ownerID, id, request)
	category, _ := args.Get(0).(*models.Category)
	return category, args.Error(1)
}

func (m *MockCategoryService) DeleteCategory(ownerID string, id uint) error {
	args := m.Called(ownerID, id)
	return args.Error(0)
}

type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) UploadImage(ctx context.Context, ownerID, targetType string, targetID uint, fileHeader *multipart.FileHeader) (string, error) {
	args := m.Called(ownerID, targetType, targetID, fileHeader.Filename)
	return args.String(0), args.Error(1)
}

func (m *MockFileService) Open(ctx context.Context, key string) (io.ReadCloser, *storage.ObjectInfo, error) {
	args := m.Called(key)
	reader, _ := args.Get(0).(io.ReadCloser)
	info, _ := args.Get(1).(*storage.ObjectInfo)
	return reader, info, args.Error(2)
}

func (m *MockFileService) ClaimImage(ctx context.Context, targetType string, targetID uint, imagePath string) (*string, error) {
	args := m.Called(targetType, targetID, imagePath)
	path, _ := args.Get(0).(*string)
	return path, args.Error(1)
}

func (m *MockFileService) DeleteImage(ctx context.Context, key *string, operation string) {
	m.Called(key, operation)
}

func (m *MockFileService) DeleteImages(ctx context.Context, keys []string, operation string) int {
	args := m.Called(keys, operation)
	return args.Int(0)
}

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, ownerID string) (*dto.AccountDeletionDTO, error) {
	args := m.Called(ownerID)
	result, _ := args.Get(0).(*dto.AccountDeletionDTO)
	return result, args.Error(1)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetStats(ownerID string) (*dto.StatsDTO, error) {
	args := m.Called(ownerID)
	stats, _ := args.Get(0).(*dto.StatsDTO)
	return stats, args.Error(1)
}
