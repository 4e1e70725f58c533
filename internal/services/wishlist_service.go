package services

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Neha220803/neha-wishlist/internal/models"
)

const wishlistColumns = `id, name, icon, target_price, priority, category, notes, link, allocated_amount, created_at, updated_at`

// WishlistService owns the savings-goal CRUD endpoints. AllocatedAmount is not
// client-writable here; only the allocator touches it.
type WishlistService struct {
	db        *sql.DB
	money     *MoneyService
	validator *ValidationHelper
}

// CreateItemRequest is the add-item payload
type CreateItemRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Icon        string  `json:"icon" validate:"max=50"`
	TargetPrice float64 `json:"targetPrice" validate:"required,gt=0"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=low medium high"`
	Category    string  `json:"category" validate:"omitempty,oneof=Electronics Fashion Travel Home Books Gaming Other"`
	Notes       string  `json:"notes" validate:"max=1000"`
	Link        string  `json:"link" validate:"omitempty,url"`
}

// UpdateItemRequest is the partial-update payload; nil fields are left unchanged
type UpdateItemRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Icon        *string  `json:"icon" validate:"omitempty,max=50"`
	TargetPrice *float64 `json:"targetPrice" validate:"omitempty,gt=0"`
	Priority    *string  `json:"priority" validate:"omitempty,oneof=low medium high"`
	Category    *string  `json:"category" validate:"omitempty,oneof=Electronics Fashion Travel Home Books Gaming Other"`
	Notes       *string  `json:"notes" validate:"omitempty,max=1000"`
	Link        *string  `json:"link" validate:"omitempty,url"`
}

func NewWishlistService(db *sql.DB, money *MoneyService) *WishlistService {
	return &WishlistService{
		db:        db,
		money:     money,
		validator: NewValidationHelper(),
	}
}

func scanItem(row interface{ Scan(...any) error }) (*models.WishlistItem, error) {
	var item models.WishlistItem
	err := row.Scan(&item.ID, &item.Name, &item.Icon, &item.TargetPrice, &item.Priority,
		&item.Category, &item.Notes, &item.Link, &item.AllocatedAmount, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *WishlistService) fetchItem(r *http.Request, id string) (*models.WishlistItem, error) {
	row := s.db.QueryRowContext(r.Context(),
		`SELECT `+wishlistColumns+` FROM wishlist_items WHERE id = $1`, id)
	return scanItem(row)
}

// ListItems returns all wishlist items, most recent first
// @Summary List wishlist items
// @Description Get all savings goals ordered by creation time, descending
// @Tags wishlist
// @Produce json
// @Success 200 {object} services.Response
// @Failure 500 {object} services.Response
// @Router /wishlist [get]
func (s *WishlistService) ListItems(w http.ResponseWriter, r *http.Request) {
	rows, err := s.db.QueryContext(r.Context(),
		`SELECT `+wishlistColumns+` FROM wishlist_items ORDER BY created_at DESC`)
	if err != nil {
		log.Printf("[WISHLIST] Failed to list items: %v", err)
		SendErrorResponse(w, err.Error(), http.StatusInternalServerError, nil)
		return
	}
	defer rows.Close()

	items := []models.WishlistItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			log.Printf("[WISHLIST] Failed to scan item: %v", err)
			SendErrorResponse(w, err.Error(), http.StatusInternalServerError, nil)
			return
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		SendErrorResponse(w, err.Error(), http.StatusInternalServerError, nil)
		return
	}

	SendSuccessResponse(w, items, http.StatusOK)
}

// CreateItem adds a new wishlist item
// @Summary Add wishlist item
// @Description Create a savings goal with a target price; allocation starts at zero
// @Tags wishlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateItemRequest true "Item data"
// @Success 201 {object} services.Response
// @Failure 400 {object} services.Response
// @Failure 500 {object} services.Response
// @Router /wishlist [post]
func (s *WishlistService) CreateItem(w http.ResponseWriter, r *http.Request) {
	maxBytes := 1_048_576 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req CreateItemRequest
	if err := dec.Decode(&req); err != nil {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return
	}

	if err := s.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Name and target price are required", http.StatusBadRequest, err)
		return
	}

	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}
	if req.Category == "" {
		req.Category = "Other"
	}

	now := time.Now().UTC()
	item := models.WishlistItem{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Icon:        req.Icon,
		TargetPrice: req.TargetPrice,
		Priority:    req.Priority,
		Category:    req.Category,
		Notes:       req.Notes,
		Link:        req.Link,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := s.db.ExecContext(r.Context(), `
		INSERT INTO wishlist_items (id, name, icon, target_price, priority, category, notes, link, allocated_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, $9, $10)`,
		item.ID, item.Name, item.Icon, item.TargetPrice, item.Priority,
		item.Category, item.Notes, item.Link, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		log.Printf("[WISHLIST] Failed to store item: %v", err)
		SendErrorResponse(w, err.Error(), http.StatusInternalServerError, nil)
		return
	}

	log.Printf("[WISHLIST] Created item %s: %s (target %.2f)", item.ID, item.Name, item.TargetPrice)
	SendSuccessResponse(w, item, http.StatusCreated)
}

// GetItem returns a single wishlist item
// @Summary Get wishlist item
// @Tags wishlist
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} services.Response
// @Failure 404 {object} services.Response
// @Failure 500 {object} services.Response
// @Router /wishlist/{id} [get]
func (s *WishlistService) GetItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := s.fetchItem(r, id)
	if err != nil {
		if err == sql.ErrNoRows {
			SendErrorResponse(w, "Item not found", http.StatusNotFound, nil)
		} else {
			log.Printf("[WISHLIST] Failed to fetch item %s: %v", id, err)
			SendErrorResponse(w, err.Error(), http.StatusInternalServerError, nil)
		}
		return
	}

	SendSuccessResponse(w, item, http.StatusOK)
}

// UpdateItem partially updates a wishlist item
// @Summary Update wishlist item
// @Description Update item fields; the allocated amount is owned by the allocator and cannot be set here
// @Tags wishlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body UpdateItemRequest true "Fields to update"
// @Success 200 {object} services.Response
// @Failure 400 {object} services.Response
// @Failure 404 {object} services.Response
// @Failure 500 {object} services.Response
// @Router /wishlist/{id} [put]
func (s *WishlistService) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	maxBytes := 1_048_576 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req UpdateItemRequest
	if err := dec.Decode(&req); err != nil {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return
	}

	if err := s.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	sets := []string{}
	args := []any{}
	appendSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if req.Name != nil {
		appendSet("name", *req.Name)
	}
	if req.Icon != nil {
		appendSet("icon", *req.Icon)
	}
	if req.TargetPrice != nil {
		appendSet("target_price", *req.TargetPrice)
	}
	if req.Priority != nil {
		appendSet("priority", *req.Priority)
	}
	if req.Category != nil {
		appendSet("category", *req.Category)
	}
	if req.Notes != nil {
		appendSet("notes", *req.Notes)
	}
	if req.Link != nil {
		appendSet("link", *req.Link)
	}

	if len(sets) == 0 {
		SendErrorResponse(w, "No fields to update", http.StatusBadRequest, nil)
		return
	}

	appendSet("updated_at", time.Now().UTC())
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE wishlist_items SET %s WHERE id = $%d`,
		strings.Join(sets, ", "), len(args))

	result, err := s.db.ExecContext(r.Context(), query, args...)
	if err != nil {
		log.Printf("[WISHLIST] Failed to update item %s: %v", id, err)
		SendErrorResponse(w, err.Error(), http.StatusInternalServerError, nil)
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		SendErrorResponse(w, err.Error(), http.StatusInternalServerError, nil)
		return
	}
	if affected == 0 {
		SendErrorResponse(w, "Item not found", http.StatusNotFound, nil)
		return
	}

	item, err := s.fetchItem(r, id)
	if err != nil {
		log.Printf("[WISHLIST] Failed to fetch updated item %s: %v", id, err)
		SendErrorResponse(w, err.Error(), http.StatusInternalServerError, nil)
		return
	}

	SendSuccessResponse(w, item, http.StatusOK)
}

// DeleteItem removes a wishlist item. Deleting a missing item is a silent
// no-op; allocations already released sink back into unallocated money on the
// next aggregate read.
// @Summary Delete wishlist item
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} services.Response
// @Failure 500 {object} services.Response
// @Router /wishlist/{id} [delete]
func (s *WishlistService) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := s.db.ExecContext(r.Context(), `DELETE FROM wishlist_items WHERE id = $1`, id); err != nil {
		log.Printf("[WISHLIST] Failed to delete item %s: %v", id, err)
		SendErrorResponse(w, err.Error(), http.StatusInternalServerError, nil)
		return
	}

	s.money.InvalidateCache(r.Context())

	log.Printf("[WISHLIST] Deleted item %s", id)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Response{Success: true, Message: "Item deleted"})
}
