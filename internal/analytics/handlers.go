package analytics

import (
	"context"
	"errors"
	"net/http"

	"github.com/klinika/backend-billing/internal/common"
	"github.com/klinika/backend-billing/internal/obs"
)

// Handler exposes analytics over HTTP.
type Handler struct {
	Svc *Service
}

// Overview handles GET /api/v1/analytics/overview.
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "analytics service not configured", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": h.Svc.Overview()})
}

// Insights handles GET /api/v1/analytics/insights.
func (h *Handler) Insights(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "analytics service not configured", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": h.Svc.Insights()})
}

// Run handles POST /api/v1/analytics/run.
func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "analytics service not configured", nil)
		return
	}
	report, err := h.Svc.Run(r.Context())
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			common.JSONError(w, http.StatusRequestTimeout, "TIMEOUT", "analysis cancelled", nil)
			return
		}
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "analysis failed", nil)
		return
	}
	obs.IncAnalyticsRun()
	common.JSON(w, http.StatusOK, map[string]any{"data": report})
}
