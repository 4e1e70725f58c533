package services

import (
	"bytes"
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/png"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/skip2/go-qrcode"

	"github.com/Neha220803/neha-wishlist/internal/models"
)

const shareCodeTTL = 24 * time.Hour

// ShareService turns a wishlist item into a scannable QR code so the goal can
// be shared. Codes are short-lived and resolved through Redis.
type ShareService struct {
	db    *sql.DB
	redis *redis.Client
}

func NewShareService(db *sql.DB, redisClient *redis.Client) *ShareService {
	return &ShareService{
		db:    db,
		redis: redisClient,
	}
}

// GetItem loads the wishlist item to share.
func (s *ShareService) GetItem(ctx context.Context, id string) (*models.WishlistItem, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+wishlistColumns+` FROM wishlist_items WHERE id = $1`, id)
	return scanItem(row)
}

// GenerateItemQR builds a share payload for the item, registers it under a
// share code and renders the code as a base64 PNG.
func (s *ShareService) GenerateItemQR(ctx context.Context, item *models.WishlistItem) (string, string, error) {
	payload := map[string]any{
		"itemId":      item.ID,
		"name":        item.Name,
		"icon":        item.Icon,
		"targetPrice": item.TargetPrice,
		"link":        item.Link,
		"progress":    CalculateProgress(item.AllocatedAmount, item.TargetPrice),
		"nonce":       s.generateNonce(),
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", "", err
	}

	shareCode := base64.URLEncoding.EncodeToString(jsonData)

	if s.redis != nil {
		key := fmt.Sprintf("share:%s", shareCode)
		if err := s.redis.Set(ctx, key, jsonData, shareCodeTTL).Err(); err != nil {
			return "", "", err
		}
	}

	qr, err := qrcode.New(shareCode, qrcode.Medium)
	if err != nil {
		return "", "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, qr.Image(256)); err != nil {
		return "", "", err
	}

	qrImage := base64.StdEncoding.EncodeToString(buf.Bytes())

	return shareCode, qrImage, nil
}

// ResolveShareCode returns the payload behind a previously issued share code.
func (s *ShareService) ResolveShareCode(ctx context.Context, shareCode string) (map[string]any, error) {
	if s.redis == nil {
		return nil, fmt.Errorf("sharing unavailable")
	}

	key := fmt.Sprintf("share:%s", shareCode)

	data, err := s.redis.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("invalid or expired share code")
	}
	if err != nil {
		return nil, err
	}

	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *ShareService) generateNonce() string {
	b := make([]byte, 16)
	rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}
