package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"

	"github.com/Neha220803/neha-wishlist/internal/models"
)

func TestShareService_GenerateItemQR(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	service := NewShareService(db, nil)

	item := &models.WishlistItem{
		ID:              "item1",
		Name:            "Laptop",
		TargetPrice:     1000,
		AllocatedAmount: 600,
		CreatedAt:       time.Now(),
	}

	shareCode, qrImage, err := service.GenerateItemQR(context.Background(), item)
	assert.NoError(t, err)
	assert.NotEmpty(t, qrImage)

	// The share code decodes back to the item payload
	raw, err := base64.URLEncoding.DecodeString(shareCode)
	assert.NoError(t, err)

	var payload map[string]any
	assert.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, "item1", payload["itemId"])
	assert.Equal(t, "Laptop", payload["name"])
	assert.InDelta(t, 60.0, payload["progress"].(float64), 1e-9)

	// The image is valid base64 PNG data
	img, err := base64.StdEncoding.DecodeString(qrImage)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x89), img[0])
}

func TestShareService_ResolveShareCode(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	t.Run("known code resolves", func(t *testing.T) {
		redisClient, redisMock := redismock.NewClientMock()
		service := NewShareService(db, redisClient)

		payload := `{"itemId":"item1","name":"Laptop"}`
		redisMock.ExpectGet("share:abc").SetVal(payload)

		result, err := service.ResolveShareCode(context.Background(), "abc")
		assert.NoError(t, err)
		assert.Equal(t, "item1", result["itemId"])
	})

	t.Run("unknown code rejected", func(t *testing.T) {
		redisClient, redisMock := redismock.NewClientMock()
		service := NewShareService(db, redisClient)

		redisMock.ExpectGet("share:nope").RedisNil()

		_, err := service.ResolveShareCode(context.Background(), "nope")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid or expired")
	})

	t.Run("sharing unavailable without redis", func(t *testing.T) {
		service := NewShareService(db, nil)

		_, err := service.ResolveShareCode(context.Background(), "abc")
		assert.Error(t, err)
	})
}

func TestShareService_GetItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	service := NewShareService(db, nil)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM wishlist_items WHERE id = \\$1").
		WithArgs("item1").
		WillReturnRows(itemRows().
			AddRow("item1", "Laptop", "", 1000.0, "high", "Electronics", "", "", 600.0, now, now))

	item, err := service.GetItem(context.Background(), "item1")
	assert.NoError(t, err)
	assert.Equal(t, "Laptop", item.Name)
}
