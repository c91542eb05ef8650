package handlers

import (
	"fmt"
	"github.com/coopgretz/HomeStorage/internal/dto"
	"github.com/coopgretz/HomeStorage/internal/models"
	"github.com/coopgretz/HomeStorage/internal/services"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBoxHandler() (*MockBoxService, *MockQRService, *BoxHandler) {
	mockService := new(MockBoxService)
	mockQR := new(MockQRService)
	return mockService, mockQR, NewBoxHandler(mockService, mockQR, testLogService())
}

func TestBoxHandler_CreateBox(t *testing.T) {
	app := newTestApp()
	mockService, _, handler := setupBoxHandler()
	app.Post("/boxes", handler.CreateBox)

	request := dto.BoxRequest{BoxNumber: 3, Label: "Camping", Location: "Attic"}
	box := &models.Box{BaseModel: models.BaseModel{ID: 1}, OwnerID: testUser, BoxNumber: 3, Location: "Attic"}
	mockService.On("CreateBox", testUser, request).Return(box, nil)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/boxes", request))

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var body models.Box
	decodeBody(t, resp, &body)
	assert.Equal(t, 3, body.BoxNumber)
	mockService.AssertExpectations(t)
}

func TestBoxHandler_CreateBoxErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"conflict", fmt.Errorf("%w: Box number 3 already exists", services.ErrConflict), http.StatusConflict},
		{"validation", fmt.Errorf("%w: box_number is required", services.ErrValidation), http.StatusBadRequest},
		{"internal", fmt.Errorf("database is gone"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp()
			mockService, _, handler := setupBoxHandler()
			app.Post("/boxes", handler.CreateBox)
			mockService.On("CreateBox", testUser, dto.BoxRequest{BoxNumber: 3}).Return(nil, tt.err)

			resp, err := app.Test(jsonRequest(t, http.MethodPost, "/boxes", dto.BoxRequest{BoxNumber: 3}))

			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			var body map[string]string
			decodeBody(t, resp, &body)
			assert.NotEmpty(t, body["error"])
			assert.NotContains(t, body["error"], "database")
		})
	}
}

func TestBoxHandler_CreateBoxInvalidJSON(t *testing.T) {
	app := newTestApp()
	_, _, handler := setupBoxHandler()
	app.Post("/boxes", handler.CreateBox)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/boxes", "not an object"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBoxHandler_GetBoxByID(t *testing.T) {
	app := newTestApp()
	mockService, _, handler := setupBoxHandler()
	app.Get("/boxes/:id", handler.GetBoxByID)

	box := &models.Box{BaseModel: models.BaseModel{ID: 1}, BoxNumber: 1}
	mockService.On("GetBoxByID", testUser, uint(1)).Return(box, nil)
	mockService.On("GetBoxByID", testUser, uint(2)).Return(nil, fmt.Errorf("%w: Box not found", services.ErrNotFound))

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/boxes/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/boxes/2", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Box not found", body["error"])

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/boxes/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestBoxHandler_ListBoxes(t *testing.T) {
	app := newTestApp()
	mockService, _, handler := setupBoxHandler()
	app.Get("/boxes", handler.ListBoxes)

	boxes := []models.Box{
		{BaseModel: models.BaseModel{ID: 1}, BoxNumber: 1},
		{BaseModel: models.BaseModel{ID: 2}, BoxNumber: 2},
	}
	mockService.On("GetBoxes", testUser).Return(boxes, nil)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/boxes", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body []models.Box
	decodeBody(t, resp, &body)
	assert.Len(t, body, 2)
	mockService.AssertExpectations(t)
}

func TestBoxHandler_UpdateAndDelete(t *testing.T) {
	app := newTestApp()
	mockService, _, handler := setupBoxHandler()
	app.Put("/boxes/:id", handler.UpdateBox)
	app.Delete("/boxes/:id", handler.DeleteBox)

	request := dto.BoxRequest{BoxNumber: 2, RemoveImage: true}
	mockService.On("UpdateBox", testUser, uint(5), request).Return(&models.Box{BaseModel: models.BaseModel{ID: 5}, BoxNumber: 2}, nil)
	mockService.On("DeleteBox", testUser, uint(5)).Return(nil)

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/boxes/5", request))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodDelete, "/boxes/5", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body dto.MessageDTO
	decodeBody(t, resp, &body)
	assert.Equal(t, "Box deleted successfully", body.Message)
	mockService.AssertExpectations(t)
}

func TestBoxHandler_NextBoxNumber(t *testing.T) {
	app := newTestApp()
	mockService, _, handler := setupBoxHandler()
	app.Get("/boxes/next-number", handler.NextBoxNumber)
	mockService.On("NextBoxNumber", testUser).Return(4, nil)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/boxes/next-number", nil))

	require.NoError(t, err)
	var body dto.NextBoxNumberDTO
	decodeBody(t, resp, &body)
	assert.Equal(t, 4, body.BoxNumber)
}

func TestBoxHandler_GenerateQRCode(t *testing.T) {
	app := newTestApp()
	_, mockQR, handler := setupBoxHandler()
	app.Post("/boxes/:id/qr", handler.GenerateQRCode)

	path := "qr-codes/box-7-qr.png"
	box := &models.Box{BaseModel: models.BaseModel{ID: 7}, BoxNumber: 42, QRCodePath: &path}
	mockQR.On("GenerateBoxQRCode", testUser, uint(7)).Return(box, nil)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/boxes/7/qr", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body dto.QRCodeDTO
	decodeBody(t, resp, &body)
	assert.True(t, body.Success)
	assert.Equal(t, path, body.QRCodePath)
	assert.Equal(t, 42, body.Box.BoxNumber)
	mockQR.AssertExpectations(t)
}
