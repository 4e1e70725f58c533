package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Neha220803/neha-wishlist/internal/models"
)

const (
	moneyCacheKey = "money:aggregate"
	moneyCacheTTL = 30 * time.Second
)

// MoneyService derives the money aggregate from the transaction ledger and the
// wishlist on every read. There is no stored running total; the only duplicated
// state is the Redis cache, which is explicitly invalidated on every write path.
type MoneyService struct {
	db    *sql.DB
	redis *redis.Client
}

func NewMoneyService(db *sql.DB, redisClient *redis.Client) *MoneyService {
	return &MoneyService{
		db:    db,
		redis: redisClient,
	}
}

// AggregateTotals computes the full money aggregate. Any store error
// propagates unchanged: the aggregate is all-or-nothing, never partial.
func (s *MoneyService) AggregateTotals(ctx context.Context) (*models.MoneyData, error) {
	if cached := s.readCache(ctx); cached != nil {
		return cached, nil
	}

	var data models.MoneyData

	// One pass over the ledger. Rows with an unrecognized money type fall
	// through both branches and are excluded from the sums.
	err := s.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN money_type = $1 THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN money_type = $2 THEN amount ELSE 0 END), 0)
		FROM transactions`,
		models.MoneyTypeLiquid, models.MoneyTypeNonLiquid,
	).Scan(&data.TotalLiquid, &data.TotalNonLiquid)
	if err != nil {
		return nil, err
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(allocated_amount), 0) FROM wishlist_items`,
	).Scan(&data.TotalAllocated)
	if err != nil {
		return nil, err
	}

	data.TotalMoney = data.TotalLiquid + data.TotalNonLiquid
	data.Unallocated = data.TotalMoney - data.TotalAllocated

	s.writeCache(ctx, &data)
	return &data, nil
}

// InvalidateCache drops the cached aggregate. Called by every handler that
// writes to the ledger or the wishlist.
func (s *MoneyService) InvalidateCache(ctx context.Context) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, moneyCacheKey).Err(); err != nil {
		log.Printf("[MONEY] Failed to invalidate aggregate cache: %v", err)
	}
}

func (s *MoneyService) readCache(ctx context.Context) *models.MoneyData {
	if s.redis == nil {
		return nil
	}
	raw, err := s.redis.Get(ctx, moneyCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var data models.MoneyData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil
	}
	return &data
}

func (s *MoneyService) writeCache(ctx context.Context, data *models.MoneyData) {
	if s.redis == nil {
		return
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, moneyCacheKey, raw, moneyCacheTTL).Err(); err != nil {
		log.Printf("[MONEY] Failed to cache aggregate: %v", err)
	}
}

// GetMoney returns the derived money aggregate
// @Summary Get money aggregate
// @Description Totals derived from the transaction ledger and wishlist allocations
// @Tags money
// @Produce json
// @Success 200 {object} services.Response
// @Failure 500 {object} services.Response
// @Router /money [get]
func (s *MoneyService) GetMoney(w http.ResponseWriter, r *http.Request) {
	data, err := s.AggregateTotals(r.Context())
	if err != nil {
		log.Printf("[MONEY] Aggregate failed: %v", err)
		SendErrorResponse(w, err.Error(), http.StatusInternalServerError, nil)
		return
	}

	SendSuccessResponse(w, data, http.StatusOK)
}
