package billing_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/klinika/backend-billing/internal/billing"
	"github.com/klinika/backend-billing/internal/session"
)

type staticItems map[string]billing.Item

func (s staticItems) Resolve(id string) (billing.Item, bool) {
	item, ok := s[id]
	return item, ok
}

func newRouter() http.Handler {
	handler := &billing.Handler{Svc: &billing.Service{
		Sessions: session.NewStore[billing.State](time.Hour),
		Items: staticItems{
			"lab1": {ID: "lab1", Name: "Complete Blood Count (CBC)", Price: 35000, Category: "Laboratory Tests"},
		},
	}}
	r := chi.NewRouter()
	r.Route("/api/v1/sessions", func(s chi.Router) {
		s.Post("/", handler.Open)
		s.Get("/{id}", handler.Get)
		s.Post("/{id}/items", handler.AddItem)
		s.Post("/{id}/items/toggle", handler.Toggle)
		s.Post("/{id}/items/manual", handler.Manual)
		s.Patch("/{id}/items/{lineId}", handler.Adjust)
		s.Delete("/{id}/items/{lineId}", handler.Remove)
		s.Delete("/{id}/items", handler.Clear)
		s.Put("/{id}/stay", handler.SetStay)
	})
	return r
}

type snapshotEnvelope struct {
	Data billing.Snapshot `json:"data"`
}

func decodeSnapshot(t *testing.T, rr *httptest.ResponseRecorder) billing.Snapshot {
	t.Helper()
	var envelope snapshotEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	return envelope.Data
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestSessionLifecycleOverHTTP(t *testing.T) {
	router := newRouter()

	rr := doJSON(t, router, http.MethodPost, "/api/v1/sessions/", "")
	require.Equal(t, http.StatusCreated, rr.Code)
	snap := decodeSnapshot(t, rr)
	require.NotEmpty(t, snap.SessionID)
	base := "/api/v1/sessions/" + snap.SessionID

	rr = doJSON(t, router, http.MethodPost, base+"/items", `{"itemId":"lab1"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	snap = decodeSnapshot(t, rr)
	require.Len(t, snap.Bill, 1)
	require.EqualValues(t, 35000, snap.Total)

	rr = doJSON(t, router, http.MethodPost, base+"/items", `{"itemId":"lab1"}`)
	snap = decodeSnapshot(t, rr)
	require.Equal(t, 2, snap.Bill[0].Quantity)

	lineID := snap.Bill[0].LineID
	rr = doJSON(t, router, http.MethodPatch, base+"/items/"+lineID, `{"delta":-1}`)
	require.Equal(t, http.StatusOK, rr.Code)
	snap = decodeSnapshot(t, rr)
	require.Equal(t, 1, snap.Bill[0].Quantity)

	rr = doJSON(t, router, http.MethodDelete, base+"/items/"+lineID, "")
	require.Equal(t, http.StatusOK, rr.Code)
	snap = decodeSnapshot(t, rr)
	require.Empty(t, snap.Bill)

	rr = doJSON(t, router, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestAddItemValidation(t *testing.T) {
	router := newRouter()
	rr := doJSON(t, router, http.MethodPost, "/api/v1/sessions/", "")
	snap := decodeSnapshot(t, rr)
	base := "/api/v1/sessions/" + snap.SessionID

	rr = doJSON(t, router, http.MethodPost, base+"/items", `{}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, router, http.MethodPost, base+"/items", `{"itemId":"nope"}`)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUnknownSessionReturns404(t *testing.T) {
	router := newRouter()
	rr := doJSON(t, router, http.MethodGet, "/api/v1/sessions/missing", "")
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/api/v1/sessions/missing/items", `{"itemId":"lab1"}`)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestManualEntryOverHTTP(t *testing.T) {
	router := newRouter()
	rr := doJSON(t, router, http.MethodPost, "/api/v1/sessions/", "")
	snap := decodeSnapshot(t, rr)
	base := "/api/v1/sessions/" + snap.SessionID

	rr = doJSON(t, router, http.MethodPost, base+"/items/manual", `{"category":"Therapy Services","name":"Physical Therapy Session","price":80000}`)
	require.Equal(t, http.StatusOK, rr.Code)
	snap = decodeSnapshot(t, rr)
	require.EqualValues(t, 80000, snap.Total)

	rr = doJSON(t, router, http.MethodPost, base+"/items/manual", `{"category":"Therapy Services","name":"","price":80000}`)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestSetStayOverHTTP(t *testing.T) {
	router := newRouter()
	rr := doJSON(t, router, http.MethodPost, "/api/v1/sessions/", "")
	snap := decodeSnapshot(t, rr)
	base := "/api/v1/sessions/" + snap.SessionID

	rr = doJSON(t, router, http.MethodPut, base+"/stay", `{"admissionDate":"2025-03-01","dischargeDate":"2025-03-04"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	snap = decodeSnapshot(t, rr)
	require.Equal(t, 3, snap.Summary.StayDays)

	rr = doJSON(t, router, http.MethodPut, base+"/stay", `{"admissionDate":"2025-03-04","dischargeDate":"2025-03-01"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	rr = doJSON(t, router, http.MethodPut, base+"/stay", `{"admissionDate":"not-a-date"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}
