package services

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"time"
)

// AllocationService distributes unallocated money across wishlist items.
//
// Each allocation is applied as a storage-layer atomic increment, so two
// concurrent batches against the same item compound instead of overwriting
// each other. Entries in a batch remain independent: a failing entry aborts
// the request but increments already applied stay committed.
type AllocationService struct {
	db    *sql.DB
	money *MoneyService
}

// AllocateRequest maps item ids to positive amounts to add
type AllocateRequest struct {
	Allocations map[string]float64 `json:"allocations"`
}

// AllocationResult reports the new cumulative amount for one item
type AllocationResult struct {
	ItemID          string  `json:"itemId"`
	AllocatedAmount float64 `json:"allocatedAmount"`
}

func NewAllocationService(db *sql.DB, money *MoneyService) *AllocationService {
	return &AllocationService{
		db:    db,
		money: money,
	}
}

// CalculateProgress returns the percentage of target covered by allocated,
// capped at 100. A zero or negative target yields 0 rather than dividing.
func CalculateProgress(allocated, target float64) float64 {
	if target <= 0 {
		return 0
	}
	progress := allocated / target * 100
	if progress > 100 {
		return 100
	}
	return progress
}

// Allocate applies an allocation batch
// @Summary Allocate money to wishlist items
// @Description Add the requested amounts to each item's cumulative allocation
// @Tags allocate
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AllocateRequest true "Allocations by item id"
// @Success 200 {object} services.Response
// @Failure 400 {object} services.Response
// @Failure 404 {object} services.Response
// @Failure 500 {object} services.Response
// @Router /allocate [post]
func (s *AllocationService) Allocate(w http.ResponseWriter, r *http.Request) {
	maxBytes := 1_048_576 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req AllocateRequest
	if err := dec.Decode(&req); err != nil {
		SendErrorResponse(w, "Invalid allocations format", http.StatusBadRequest, nil)
		return
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return
	}

	if req.Allocations == nil {
		SendErrorResponse(w, "Invalid allocations format", http.StatusBadRequest, nil)
		return
	}

	// Non-positive entries are skipped, not rejected. Sorted for a stable
	// apply order across requests.
	itemIDs := make([]string, 0, len(req.Allocations))
	var requested float64
	for itemID, amount := range req.Allocations {
		if amount > 0 {
			itemIDs = append(itemIDs, itemID)
			requested += amount
		}
	}
	sort.Strings(itemIDs)

	// Guard against over-allocation here at the handler; the increment below
	// is deliberately unclamped, so callers of the store alone can still
	// exceed targets.
	aggregate, err := s.money.AggregateTotals(r.Context())
	if err != nil {
		log.Printf("[ALLOCATE] Aggregate failed: %v", err)
		SendErrorResponse(w, err.Error(), http.StatusInternalServerError, nil)
		return
	}
	if requested > aggregate.Unallocated {
		SendErrorResponse(w,
			fmt.Sprintf("Requested %.2f exceeds unallocated money %.2f", requested, aggregate.Unallocated),
			http.StatusBadRequest, nil)
		return
	}

	results := []AllocationResult{}
	for _, itemID := range itemIDs {
		newAmount, err := s.applyAllocation(r, itemID, req.Allocations[itemID])
		if err != nil {
			// Earlier increments stay committed; there is no batch rollback.
			s.money.InvalidateCache(r.Context())
			if err == sql.ErrNoRows {
				SendErrorResponse(w, "Item not found: "+itemID, http.StatusNotFound, nil)
			} else {
				log.Printf("[ALLOCATE] Failed to allocate to %s: %v", itemID, err)
				SendErrorResponse(w, err.Error(), http.StatusInternalServerError, nil)
			}
			return
		}
		results = append(results, AllocationResult{ItemID: itemID, AllocatedAmount: newAmount})
	}

	s.money.InvalidateCache(r.Context())

	log.Printf("[ALLOCATE] Allocated %.2f across %d item(s)", requested, len(results))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Response{
		Success: true,
		Data:    results,
		Message: fmt.Sprintf("Allocated money to %d item(s)", len(results)),
	})
}

// applyAllocation adds amount to an item's cumulative allocation in a single
// atomic statement, avoiding the lost-update race of read-then-write.
func (s *AllocationService) applyAllocation(r *http.Request, itemID string, amount float64) (float64, error) {
	var newAmount float64
	err := s.db.QueryRowContext(r.Context(), `
		UPDATE wishlist_items
		SET allocated_amount = allocated_amount + $1, updated_at = $2
		WHERE id = $3
		RETURNING allocated_amount`,
		amount, time.Now().UTC(), itemID).Scan(&newAmount)
	return newAmount, err
}
