package services

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/Neha220803/neha-wishlist/internal/models"
)

func newTransactionService(t *testing.T) (*TransactionService, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	money := NewMoneyService(db, nil)
	return NewTransactionService(db, money), mock, func() { db.Close() }
}

func TestTransactionService_CreateTransaction(t *testing.T) {
	service, mock, closeDB := newTransactionService(t)
	defer closeDB()

	t.Run("valid transaction is stored", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO transactions").
			WithArgs(sqlmock.AnyArg(), 500.0, models.MoneyTypeLiquid, "salary", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		body := `{"amount": 500, "moneyType": "liquid", "description": "salary"}`
		w := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/v1/transactions", strings.NewReader(body))
		service.CreateTransaction(w, r)

		assert.Equal(t, 201, w.Code)

		var resp struct {
			Success bool               `json:"success"`
			Data    models.Transaction `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Data.ID)
		assert.Equal(t, 500.0, resp.Data.Amount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative amounts are deductions", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO transactions").
			WithArgs(sqlmock.AnyArg(), -120.5, models.MoneyTypeNonLiquid, "", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		body := `{"amount": -120.5, "moneyType": "non-liquid"}`
		w := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/v1/transactions", strings.NewReader(body))
		service.CreateTransaction(w, r)

		assert.Equal(t, 201, w.Code)
	})

	t.Run("zero amount rejected", func(t *testing.T) {
		body := `{"amount": 0, "moneyType": "liquid"}`
		w := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/v1/transactions", strings.NewReader(body))
		service.CreateTransaction(w, r)

		assert.Equal(t, 400, w.Code)
	})

	t.Run("missing money type rejected", func(t *testing.T) {
		body := `{"amount": 100}`
		w := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/v1/transactions", strings.NewReader(body))
		service.CreateTransaction(w, r)

		assert.Equal(t, 400, w.Code)
	})

	t.Run("unknown money type rejected at entry", func(t *testing.T) {
		body := `{"amount": 100, "moneyType": "crypto"}`
		w := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/v1/transactions", strings.NewReader(body))
		service.CreateTransaction(w, r)

		assert.Equal(t, 400, w.Code)
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/v1/transactions", strings.NewReader("{"))
		service.CreateTransaction(w, r)

		assert.Equal(t, 400, w.Code)
	})
}

func TestTransactionService_ListTransactions(t *testing.T) {
	service, mock, closeDB := newTransactionService(t)
	defer closeDB()

	t.Run("returns entries most recent first", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("SELECT id, amount, money_type, description, created_at FROM transactions ORDER BY created_at DESC").
			WillReturnRows(sqlmock.NewRows([]string{"id", "amount", "money_type", "description", "created_at"}).
				AddRow("tx2", -50.0, "liquid", "groceries", now).
				AddRow("tx1", 500.0, "liquid", "salary", now.Add(-time.Hour)))

		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/v1/transactions", nil)
		service.ListTransactions(w, r)

		assert.Equal(t, 200, w.Code)

		var resp struct {
			Success bool                 `json:"success"`
			Data    []models.Transaction `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Len(t, resp.Data, 2)
		assert.Equal(t, "tx2", resp.Data[0].ID)
	})

	t.Run("empty ledger returns empty list, not null", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, amount, money_type, description, created_at FROM transactions").
			WillReturnRows(sqlmock.NewRows([]string{"id", "amount", "money_type", "description", "created_at"}))

		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/v1/transactions", nil)
		service.ListTransactions(w, r)

		assert.Equal(t, 200, w.Code)
		assert.Contains(t, w.Body.String(), `"data":[]`)
	})
}

func TestTransactionService_DeleteTransaction(t *testing.T) {
	service, mock, closeDB := newTransactionService(t)
	defer closeDB()

	withURLParam := func(id string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("DELETE", "/api/v1/transactions/"+id, nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
		service.DeleteTransaction(w, r)
		return w
	}

	t.Run("existing entry deleted", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM transactions WHERE id = \\$1").
			WithArgs("tx1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		w := withURLParam("tx1")
		assert.Equal(t, 200, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)
	})

	t.Run("missing entry returns 404", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM transactions WHERE id = \\$1").
			WithArgs("nope").
			WillReturnResult(sqlmock.NewResult(0, 0))

		w := withURLParam("nope")
		assert.Equal(t, 404, w.Code)
	})
}

// Adding a transaction, confirming the derived total, deleting it and
// confirming the total returns to zero. No compensating write is involved at
// any point: the totals come from the ledger itself.
func TestTransactionService_DeleteThenRecompute(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	money := NewMoneyService(db, nil)
	service := NewTransactionService(db, money)

	// Add 500 liquid
	mock.ExpectExec("INSERT INTO transactions").
		WillReturnResult(sqlmock.NewResult(1, 1))

	body := `{"amount": 500, "moneyType": "liquid"}`
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/v1/transactions", strings.NewReader(body))
	service.CreateTransaction(w, r)
	assert.Equal(t, 201, w.Code)

	// Aggregate sees 500
	expectAggregateQueries(mock, 500, 0, 0)
	data, err := money.AggregateTotals(r.Context())
	assert.NoError(t, err)
	assert.Equal(t, 500.0, data.TotalLiquid)

	// Delete it
	mock.ExpectExec("DELETE FROM transactions WHERE id = \\$1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	w = httptest.NewRecorder()
	r = httptest.NewRequest("DELETE", "/api/v1/transactions/tx1", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "tx1")
	r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	service.DeleteTransaction(w, r)
	assert.Equal(t, 200, w.Code)

	// Aggregate recomputes to zero
	expectAggregateQueries(mock, 0, 0, 0)
	data, err = money.AggregateTotals(r.Context())
	assert.NoError(t, err)
	assert.Equal(t, 0.0, data.TotalLiquid)

	assert.NoError(t, mock.ExpectationsWereMet())
}
