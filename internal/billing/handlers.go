package billing

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/klinika/backend-billing/internal/common"
	"github.com/klinika/backend-billing/internal/obs"
	"github.com/klinika/backend-billing/internal/pricing"
)

// Handler wires the bill session service to HTTP.
type Handler struct {
	Svc *Service
}

func (h *Handler) configured(w http.ResponseWriter) bool {
	if h == nil || h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "billing service not configured", nil)
		return false
	}
	return true
}

// Open handles POST /api/v1/sessions.
func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	if !h.configured(w) {
		return
	}
	snap, err := h.Svc.Open()
	if err != nil {
		h.writeError(w, err)
		return
	}
	obs.IncSessionOpened()
	common.JSON(w, http.StatusCreated, map[string]any{"data": snap})
}

// Get handles GET /api/v1/sessions/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	if !h.configured(w) {
		return
	}
	snap, err := h.Svc.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": snap})
}

type itemRequest struct {
	ItemID string `json:"itemId"`
}

// AddItem handles POST /api/v1/sessions/{id}/items.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	if !h.configured(w) {
		return
	}
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.ItemID) == "" {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "itemId is required", nil)
		return
	}
	snap, err := h.Svc.AddItem(chi.URLParam(r, "id"), req.ItemID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	obs.IncBillOp("add")
	common.JSON(w, http.StatusOK, map[string]any{"data": snap})
}

// Toggle handles POST /api/v1/sessions/{id}/items/toggle.
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	if !h.configured(w) {
		return
	}
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.ItemID) == "" {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "itemId is required", nil)
		return
	}
	snap, err := h.Svc.ToggleItem(chi.URLParam(r, "id"), req.ItemID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	obs.IncBillOp("toggle")
	common.JSON(w, http.StatusOK, map[string]any{"data": snap})
}

type manualRequest struct {
	Category string        `json:"category"`
	Name     string        `json:"name"`
	Price    pricing.Money `json:"price"`
}

// Manual handles POST /api/v1/sessions/{id}/items/manual.
func (h *Handler) Manual(w http.ResponseWriter, r *http.Request) {
	if !h.configured(w) {
		return
	}
	var req manualRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", nil)
		return
	}
	snap, err := h.Svc.AddManual(chi.URLParam(r, "id"), req.Category, req.Name, req.Price)
	if err != nil {
		h.writeError(w, err)
		return
	}
	obs.IncBillOp("manual")
	common.JSON(w, http.StatusOK, map[string]any{"data": snap})
}

type adjustRequest struct {
	Delta int `json:"delta"`
}

// Adjust handles PATCH /api/v1/sessions/{id}/items/{lineId}.
func (h *Handler) Adjust(w http.ResponseWriter, r *http.Request) {
	if !h.configured(w) {
		return
	}
	var req adjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", nil)
		return
	}
	if req.Delta == 0 {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "delta must be non-zero", nil)
		return
	}
	snap, err := h.Svc.Adjust(chi.URLParam(r, "id"), chi.URLParam(r, "lineId"), req.Delta)
	if err != nil {
		h.writeError(w, err)
		return
	}
	obs.IncBillOp("adjust")
	common.JSON(w, http.StatusOK, map[string]any{"data": snap})
}

// Remove handles DELETE /api/v1/sessions/{id}/items/{lineId}.
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	if !h.configured(w) {
		return
	}
	snap, err := h.Svc.RemoveLine(chi.URLParam(r, "id"), chi.URLParam(r, "lineId"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	obs.IncBillOp("remove")
	common.JSON(w, http.StatusOK, map[string]any{"data": snap})
}

// Clear handles DELETE /api/v1/sessions/{id}/items.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	if !h.configured(w) {
		return
	}
	snap, err := h.Svc.ClearBill(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	obs.IncBillOp("clear")
	common.JSON(w, http.StatusOK, map[string]any{"data": snap})
}

type stayRequest struct {
	AdmissionDate *string `json:"admissionDate"`
	DischargeDate *string `json:"dischargeDate"`
}

// SetStay handles PUT /api/v1/sessions/{id}/stay. Dates are RFC 3339;
// either side may be null to clear it.
func (h *Handler) SetStay(w http.ResponseWriter, r *http.Request) {
	if !h.configured(w) {
		return
	}
	var req stayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", nil)
		return
	}
	admission, err := parseStayDate(req.AdmissionDate)
	if err != nil {
		common.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION", "invalid admissionDate", map[string]any{"admissionDate": "must be RFC 3339"})
		return
	}
	discharge, err := parseStayDate(req.DischargeDate)
	if err != nil {
		common.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION", "invalid dischargeDate", map[string]any{"dischargeDate": "must be RFC 3339"})
		return
	}
	snap, err := h.Svc.SetStay(chi.URLParam(r, "id"), admission, discharge)
	if err != nil {
		h.writeError(w, err)
		return
	}
	obs.IncBillOp("stay")
	common.JSON(w, http.StatusOK, map[string]any{"data": snap})
}

func parseStayDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(*raw))
	if err != nil {
		// date-only input is common from date pickers
		d, derr := time.Parse("2006-01-02", strings.TrimSpace(*raw))
		if derr != nil {
			return nil, err
		}
		t = d
	}
	return &t, nil
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		common.JSONError(w, status, appErr.Code, appErr.Message, appErr.Details)
		return
	}
	var vErr *ValidationError
	switch {
	case errors.Is(err, ErrSessionNotFound):
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "bill session not found", nil)
	case errors.Is(err, ErrItemNotFound):
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "catalog item not found", nil)
	case errors.As(err, &vErr):
		common.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION", "validation failed", map[string]any{vErr.Field: vErr.Reason})
	default:
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
	}
}
