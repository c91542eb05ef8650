package handlers

import (
	"fmt"
	"github.com/coopgretz/HomeStorage/internal/dto"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountHandler_DeleteAccount(t *testing.T) {
	app := newTestApp()
	mockService := new(MockAccountService)
	handler := NewAccountHandler(mockService, testLogService())
	app.Delete("/account/delete", handler.DeleteAccount)

	mockService.On("DeleteAccount", testUser).Return(&dto.AccountDeletionDTO{
		Message:      "Account data deleted, but the login could not be removed. Please contact support.",
		Warning:      true,
		FailedImages: 1,
	}, nil).Once()
	mockService.On("DeleteAccount", testUser).Return(nil, fmt.Errorf("delete account data: tx aborted")).Once()

	resp, err := app.Test(jsonRequest(t, http.MethodDelete, "/account/delete", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body dto.AccountDeletionDTO
	decodeBody(t, resp, &body)
	assert.True(t, body.Warning)
	assert.Equal(t, 1, body.FailedImages)

	resp, err = app.Test(jsonRequest(t, http.MethodDelete, "/account/delete", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	var failure map[string]string
	decodeBody(t, resp, &failure)
	assert.Equal(t, "Internal server error", failure["error"])
	mockService.AssertExpectations(t)
}
