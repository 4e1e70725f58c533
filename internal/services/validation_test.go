package services

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationHelper(t *testing.T) {
	vh := NewValidationHelper()

	type payload struct {
		Name   string  `validate:"required"`
		Amount float64 `validate:"required,gt=0"`
		Type   string  `validate:"required,oneof=liquid non-liquid"`
	}

	t.Run("valid struct passes", func(t *testing.T) {
		err := vh.ValidateStruct(&payload{Name: "x", Amount: 10, Type: "liquid"})
		assert.NoError(t, err)
	})

	t.Run("missing fields fail", func(t *testing.T) {
		err := vh.ValidateStruct(&payload{})
		assert.Error(t, err)
	})

	t.Run("oneof constrains the enum", func(t *testing.T) {
		err := vh.ValidateStruct(&payload{Name: "x", Amount: 10, Type: "crypto"})
		assert.Error(t, err)
	})
}

func TestSendErrorResponse(t *testing.T) {
	t.Run("plain error envelope", func(t *testing.T) {
		w := httptest.NewRecorder()
		SendErrorResponse(w, "Item not found", 404, nil)

		assert.Equal(t, 404, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var resp Response
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "Item not found", resp.Error)
		assert.Nil(t, resp.Details)
	})

	t.Run("validation errors carry field details", func(t *testing.T) {
		vh := NewValidationHelper()
		type payload struct {
			Name string `validate:"required"`
		}
		err := vh.ValidateStruct(&payload{})
		assert.Error(t, err)

		w := httptest.NewRecorder()
		SendErrorResponse(w, "Validation failed", 400, err)

		var resp Response
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Details, "Name")
	})
}

func TestSendSuccessResponse(t *testing.T) {
	w := httptest.NewRecorder()
	SendSuccessResponse(w, map[string]string{"k": "v"}, 201)

	assert.Equal(t, 201, w.Code)

	var resp Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Error)
}
