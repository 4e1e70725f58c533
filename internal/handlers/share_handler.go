package handlers

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Neha220803/neha-wishlist/internal/services"
)

type ShareHandler struct {
	service *services.ShareService
}

func NewShareHandler(service *services.ShareService) *ShareHandler {
	return &ShareHandler{
		service: service,
	}
}

// GenerateItemQR renders a wishlist item as a shareable QR code
// @Summary Share wishlist item as QR
// @Description Generate a QR code encoding the item's share payload
// @Tags wishlist
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} services.Response
// @Failure 404 {object} services.Response
// @Failure 500 {object} services.Response
// @Router /wishlist/{id}/qr [get]
func (h *ShareHandler) GenerateItemQR(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := h.service.GetItem(r.Context(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			services.SendErrorResponse(w, "Item not found", http.StatusNotFound, nil)
		} else {
			services.SendErrorResponse(w, err.Error(), http.StatusInternalServerError, nil)
		}
		return
	}

	shareCode, qrImage, err := h.service.GenerateItemQR(r.Context(), item)
	if err != nil {
		services.SendErrorResponse(w, err.Error(), http.StatusInternalServerError, nil)
		return
	}

	services.SendSuccessResponse(w, map[string]string{
		"shareCode": shareCode,
		"qrImage":   qrImage,
	}, http.StatusOK)
}

// ResolveShareCode looks up a previously issued share code
// @Summary Resolve share code
// @Description Return the wishlist item payload behind a share code
// @Tags wishlist
// @Produce json
// @Param code path string true "Share code"
// @Success 200 {object} services.Response
// @Failure 400 {object} services.Response
// @Router /share/{code} [get]
func (h *ShareHandler) ResolveShareCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	result, err := h.service.ResolveShareCode(r.Context(), code)
	if err != nil {
		services.SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
		return
	}

	services.SendSuccessResponse(w, result, http.StatusOK)
}
