package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"github.com/coopgretz/HomeStorage/internal/config"
	"github.com/coopgretz/HomeStorage/internal/repository"
	"github.com/coopgretz/HomeStorage/internal/storage"
	"github.com/coopgretz/HomeStorage/internal/testutil"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// a 1x1 transparent png
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Authenticate(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

// failingStore refuses every Remove and delegates the rest.
type failingStore struct {
	*storage.MemoryStore
}

func (s failingStore) Remove(ctx context.Context, key string) error {
	return errors.New("storage unavailable")
}

type testEnv struct {
	db            *gorm.DB
	configuration *config.Configuration
	store         *storage.MemoryStore
	logService    LogService
	boxRepo       repository.BoxRepository
	itemRepo      repository.ItemRepository
	categoryRepo  repository.CategoryRepository
	files         FileService
	boxes         BoxService
	items         ItemService
	categories    CategoryService
}

func setupTestEnv(t *testing.T) *testEnv {
	db := testutil.SetupTestDB(t)
	configuration := &config.Configuration{}
	configuration.Server.PublicURL = "https://boxes.example.com/"
	configuration.Server.CleanConfig.GracePeriod = time.Hour
	configuration.Server.CleanConfig.Schedule = "@every 6h"

	env := &testEnv{
		db:            db,
		configuration: configuration,
		store:         storage.NewMemoryStore(),
		logService:    LogService{Log: testutil.NewLogger()},
		boxRepo:       repository.NewBoxRepository(db),
		itemRepo:      repository.NewItemRepository(db),
		categoryRepo:  repository.NewCategoryRepository(db),
	}
	env.files = NewFileService(env.itemRepo, env.boxRepo, env.store, env.logService)
	env.boxes = NewBoxService(env.boxRepo, env.itemRepo, env.files)
	env.items = NewItemService(env.itemRepo, env.boxRepo, env.categoryRepo, env.files)
	env.categories = NewCategoryService(env.categoryRepo, env.itemRepo, env.logService)
	return env
}

func (e *testEnv) putObject(t *testing.T, key string) {
	require.NoError(t, e.store.Put(context.Background(), key, bytes.NewReader(pngPixel), int64(len(pngPixel)), "image/png"))
}

// imageUpload builds the multipart file header a fiber handler would hand over.
func imageUpload(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = io.Copy(part, bytes.NewReader(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["image"][0]
}

func intPtr(i int) *int { return &i }

func uintPtr(u uint) *uint { return &u }
