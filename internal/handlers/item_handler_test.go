package handlers

import (
	"fmt"
	"github.com/coopgretz/HomeStorage/internal/dto"
	"github.com/coopgretz/HomeStorage/internal/services"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemHandler_ListItemsQuery(t *testing.T) {
	app := newTestApp()
	mockService := new(MockItemService)
	handler := NewItemHandler(mockService, testLogService())
	app.Get("/items", handler.ListItems)

	boxID := uint(5)
	expected := dto.ItemQuery{Search: "drill", BoxID: &boxID, Status: "in_box", Page: 2, Limit: 10}
	list := &dto.ItemListDTO{Items: []dto.ItemGetDTO{{ID: 1, Name: "Drill"}}, Pagination: dto.Pagination{Page: 2, Limit: 10, Total: 11, TotalPages: 2}}
	mockService.On("GetItems", testUser, expected).Return(list, nil)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/items?search=drill&box_id=5&status=in_box&page=2&limit=10", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body dto.ItemListDTO
	decodeBody(t, resp, &body)
	assert.Len(t, body.Items, 1)
	assert.Equal(t, int64(11), body.Pagination.Total)
	mockService.AssertExpectations(t)
}

func TestItemHandler_ListItemsDefaults(t *testing.T) {
	app := newTestApp()
	mockService := new(MockItemService)
	handler := NewItemHandler(mockService, testLogService())
	app.Get("/items", handler.ListItems)

	mockService.On("GetItems", testUser, dto.ItemQuery{Page: 1, Limit: 20}).Return(&dto.ItemListDTO{Items: []dto.ItemGetDTO{}}, nil)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/items", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/items?box_id=x", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestItemHandler_CreateItem(t *testing.T) {
	app := newTestApp()
	mockService := new(MockItemService)
	handler := NewItemHandler(mockService, testLogService())
	app.Post("/items", handler.CreateItem)

	boxID := uint(5)
	request := dto.ItemRequest{Name: "Drill", BoxID: &boxID}
	mockService.On("CreateItem", testUser, request).Return(&dto.ItemGetDTO{ID: 1, Name: "Drill", BoxID: &boxID, Quantity: 1, Status: "in_box"}, nil)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/items", request))

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestItemHandler_CreateItemInvalidBox(t *testing.T) {
	app := newTestApp()
	mockService := new(MockItemService)
	handler := NewItemHandler(mockService, testLogService())
	app.Post("/items", handler.CreateItem)

	boxID := uint(99)
	request := dto.ItemRequest{Name: "Drill", BoxID: &boxID}
	mockService.On("CreateItem", testUser, request).Return(nil, fmt.Errorf("%w: Invalid box ID", services.ErrValidation))

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/items", request))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Invalid box ID", body["error"])
}

func TestItemHandler_UpdateItemStatus(t *testing.T) {
	app := newTestApp()
	mockService := new(MockItemService)
	handler := NewItemHandler(mockService, testLogService())
	app.Patch("/items/:id/status", handler.UpdateItemStatus)

	mockService.On("UpdateItemStatus", testUser, uint(3), dto.StatusRequest{Status: "out_of_box"}).
		Return(&dto.ItemGetDTO{ID: 3, Status: "out_of_box"}, nil)
	mockService.On("UpdateItemStatus", testUser, uint(3), dto.StatusRequest{Status: "lost"}).
		Return(nil, fmt.Errorf("%w: status must be one of in_box, out_of_box", services.ErrValidation))

	resp, err := app.Test(jsonRequest(t, http.MethodPatch, "/items/3/status", dto.StatusRequest{Status: "out_of_box"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodPatch, "/items/3/status", dto.StatusRequest{Status: "lost"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestItemHandler_UpdateAndDelete(t *testing.T) {
	app := newTestApp()
	mockService := new(MockItemService)
	handler := NewItemHandler(mockService, testLogService())
	app.Put("/items/:id", handler.UpdateItem)
	app.Delete("/items/:id", handler.DeleteItem)
	app.Get("/items/:id", handler.GetItemByID)

	quantity := 3
	request := dto.ItemRequest{Name: "Drill", Quantity: &quantity}
	mockService.On("UpdateItem", testUser, uint(8), request).Return(&dto.ItemGetDTO{ID: 8, Quantity: 3}, nil)
	mockService.On("DeleteItem", testUser, uint(8)).Return(nil)
	mockService.On("GetItemByID", testUser, uint(8)).Return(nil, fmt.Errorf("%w: Item not found", services.ErrNotFound))

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/items/8", request))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodDelete, "/items/8", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/items/8", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	mockService.AssertExpectations(t)
}
