package services

import (
	"database/sql"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Neha220803/neha-wishlist/internal/models"
)

// TransactionService owns the ledger endpoints. Entries are immutable: the
// only operations are list, create and delete. Because totals are derived at
// read time, delete needs no compensating write against any stored total.
type TransactionService struct {
	db        *sql.DB
	money     *MoneyService
	validator *ValidationHelper
}

// CreateTransactionRequest is the add-transaction payload
type CreateTransactionRequest struct {
	Amount      float64 `json:"amount" validate:"required"`
	MoneyType   string  `json:"moneyType" validate:"required,oneof=liquid non-liquid"`
	Description string  `json:"description" validate:"max=500"`
}

func NewTransactionService(db *sql.DB, money *MoneyService) *TransactionService {
	return &TransactionService{
		db:        db,
		money:     money,
		validator: NewValidationHelper(),
	}
}

// ListTransactions returns all transactions, most recent first
// @Summary List transactions
// @Description Get all ledger entries ordered by creation time, descending
// @Tags transactions
// @Produce json
// @Success 200 {object} services.Response
// @Failure 500 {object} services.Response
// @Router /transactions [get]
func (ts *TransactionService) ListTransactions(w http.ResponseWriter, r *http.Request) {
	rows, err := ts.db.QueryContext(r.Context(), `
		SELECT id, amount, money_type, description, created_at
		FROM transactions
		ORDER BY created_at DESC`)
	if err != nil {
		log.Printf("[TRANSACTION] Failed to list transactions: %v", err)
		SendErrorResponse(w, err.Error(), http.StatusInternalServerError, nil)
		return
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(&tx.ID, &tx.Amount, &tx.MoneyType, &tx.Description, &tx.CreatedAt); err != nil {
			log.Printf("[TRANSACTION] Failed to scan transaction: %v", err)
			SendErrorResponse(w, err.Error(), http.StatusInternalServerError, nil)
			return
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		SendErrorResponse(w, err.Error(), http.StatusInternalServerError, nil)
		return
	}

	SendSuccessResponse(w, transactions, http.StatusOK)
}

// CreateTransaction appends a new ledger entry
// @Summary Add transaction
// @Description Record a signed money movement tagged liquid or non-liquid
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTransactionRequest true "Transaction data"
// @Success 201 {object} services.Response
// @Failure 400 {object} services.Response
// @Failure 500 {object} services.Response
// @Router /transactions [post]
func (ts *TransactionService) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	maxBytes := 1_048_576 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req CreateTransactionRequest
	if err := dec.Decode(&req); err != nil {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return
	}

	// required on Amount also rejects zero: a zero-amount entry carries no
	// information and would pollute the ledger
	if err := ts.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Amount and money type are required", http.StatusBadRequest, err)
		return
	}

	tx := models.Transaction{
		ID:          uuid.NewString(),
		Amount:      req.Amount,
		MoneyType:   req.MoneyType,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := ts.db.ExecContext(r.Context(), `
		INSERT INTO transactions (id, amount, money_type, description, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		tx.ID, tx.Amount, tx.MoneyType, tx.Description, tx.CreatedAt)
	if err != nil {
		log.Printf("[TRANSACTION] Failed to store transaction: %v", err)
		SendErrorResponse(w, err.Error(), http.StatusInternalServerError, nil)
		return
	}

	ts.money.InvalidateCache(r.Context())

	log.Printf("[TRANSACTION] Created %s: %s %.2f", tx.ID, tx.MoneyType, tx.Amount)
	SendSuccessResponse(w, tx, http.StatusCreated)
}

// DeleteTransaction removes a ledger entry by id
// @Summary Delete transaction
// @Description Remove a ledger entry; totals self-correct on the next read
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} services.Response
// @Failure 404 {object} services.Response
// @Failure 500 {object} services.Response
// @Router /transactions/{id} [delete]
func (ts *TransactionService) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := ts.db.ExecContext(r.Context(), `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		log.Printf("[TRANSACTION] Failed to delete %s: %v", id, err)
		SendErrorResponse(w, err.Error(), http.StatusInternalServerError, nil)
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		SendErrorResponse(w, err.Error(), http.StatusInternalServerError, nil)
		return
	}
	if affected == 0 {
		SendErrorResponse(w, "Transaction not found", http.StatusNotFound, nil)
		return
	}

	ts.money.InvalidateCache(r.Context())

	log.Printf("[TRANSACTION] Deleted %s", id)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Response{Success: true, Message: "Transaction deleted"})
}
