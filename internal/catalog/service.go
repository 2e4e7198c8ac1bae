package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	validator "github.com/go-playground/validator/v10"

	"github.com/klinika/backend-billing/internal/common"
	"github.com/klinika/backend-billing/internal/obs"
	"github.com/klinika/backend-billing/internal/pricing"
)

// Service orchestrates catalog reads, management CRUD, and caching.
type Service struct {
	store    *Store
	cache    *Cache
	validate *validator.Validate
}

// ServiceConfig groups Service dependencies.
type ServiceConfig struct {
	Store *Store
	Cache *Cache
}

// NewService constructs a Service instance.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Store == nil {
		return nil, errors.New("catalog: store is required")
	}
	return &Service{
		store:    cfg.Store,
		cache:    cfg.Cache,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

// ListParams captures filters for the calculator-facing listing.
type ListParams struct {
	Mode     Mode
	Query    string
	Category string
}

// ListResult carries the visible items with the catalog version they came from.
type ListResult struct {
	Version uint64 `json:"version"`
	Items   []Item `json:"items"`
}

// List returns the visible subset of the catalog for a calculator mode,
// filtered by the free-text query and the optional category. The per-mode
// base list is cached with the catalog version baked into the key, so edits
// invalidate naturally and stale entries age out via TTL.
func (s *Service) List(ctx context.Context, params ListParams) (ListResult, error) {
	base, version, err := s.visibleItems(ctx, params.Mode)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{Version: version, Items: Filter(base, params.Query, params.Category)}, nil
}

func (s *Service) visibleItems(ctx context.Context, mode Mode) ([]Item, uint64, error) {
	version := s.store.Version()
	key := listCacheKey(mode, version)
	var cached []Item
	if ok, err := s.cache.GetJSON(ctx, key, &cached); err == nil && ok {
		return cached, version, nil
	}
	snap := s.store.Snapshot()
	items := make([]Item, 0, len(snap.Items))
	for _, it := range snap.Items {
		if it.Type.Matches(mode) {
			items = append(items, it)
		}
	}
	_ = s.cache.SetJSON(ctx, key, items)
	return items, snap.Version, nil
}

// Categories returns the category metadata for a calculator mode.
func (s *Service) Categories(mode Mode) []Category {
	return Categories(mode)
}

// ManagementParams captures management-screen filters. Type filtering only
// exists here; the bill engine never sees it.
type ManagementParams struct {
	Query    string
	Category string
	Type     ServiceType
}

// ManagementList returns the full catalog filtered for the management view.
func (s *Service) ManagementList(params ManagementParams) ListResult {
	snap := s.store.Snapshot()
	items := Filter(snap.Items, params.Query, params.Category)
	if params.Type != "" {
		kept := items[:0]
		for _, it := range items {
			if it.Type == params.Type {
				kept = append(kept, it)
			}
		}
		items = kept
	}
	return ListResult{Version: snap.Version, Items: items}
}

// CreateRequest is the management create payload.
type CreateRequest struct {
	Name     string `json:"name" validate:"required"`
	Price    int64  `json:"price" validate:"gte=0"`
	Category string `json:"category" validate:"required"`
	Daily    bool   `json:"daily"`
	Type     string `json:"type" validate:"required,oneof=outpatient inpatient both"`
}

// Create validates and stores a new catalog item with a fresh id.
func (s *Service) Create(req CreateRequest) (Item, error) {
	if err := s.validate.Struct(req); err != nil {
		return Item{}, validationError(err)
	}
	typ, err := ParseServiceType(req.Type)
	if err != nil {
		return Item{}, badRequest("type", err.Error(), err)
	}
	item := s.store.Create(CreateInput{
		Name:     req.Name,
		Price:    pricing.Money(req.Price),
		Category: req.Category,
		Daily:    req.Daily,
		Type:     typ,
	})
	obs.SetCatalogVersion(s.store.Version())
	return item, nil
}

// UpdateRequest is the management update payload; nil fields stay unchanged.
type UpdateRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Price    *int64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	Category *string `json:"category,omitempty" validate:"omitempty,min=1"`
	Daily    *bool   `json:"daily,omitempty"`
	Type     *string `json:"type,omitempty" validate:"omitempty,oneof=outpatient inpatient both"`
}

// Update validates and applies a partial update by id.
func (s *Service) Update(id string, req UpdateRequest) (Item, error) {
	if err := s.validate.Struct(req); err != nil {
		return Item{}, validationError(err)
	}
	patch := Patch{Category: req.Category, Daily: req.Daily}
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return Item{}, badRequest("name", "name must not be blank", nil)
		}
		patch.Name = &trimmed
	}
	if req.Price != nil {
		price := pricing.Money(*req.Price)
		patch.Price = &price
	}
	if req.Type != nil {
		typ, err := ParseServiceType(*req.Type)
		if err != nil {
			return Item{}, badRequest("type", err.Error(), err)
		}
		patch.Type = &typ
	}
	item, err := s.store.Update(id, patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Item{}, notFound(id, err)
		}
		return Item{}, fmt.Errorf("update catalog item: %w", err)
	}
	obs.SetCatalogVersion(s.store.Version())
	return item, nil
}

// Delete removes a catalog item by id.
func (s *Service) Delete(id string) error {
	if err := s.store.Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(id, err)
		}
		return fmt.Errorf("delete catalog item: %w", err)
	}
	obs.SetCatalogVersion(s.store.Version())
	return nil
}

func listCacheKey(mode Mode, version uint64) string {
	return "catalog:list:" + string(mode) + ":v" + strconv.FormatUint(version, 10)
}

func validationError(err error) *common.AppError {
	details := map[string]any{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, strings.ToLower(fe.Field()))
		}
		details["fields"] = fields
	}
	return &common.AppError{
		Code:       "VALIDATION",
		Message:    "invalid catalog payload",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
		Details:    details,
	}
}

func badRequest(field, message string, err error) *common.AppError {
	return &common.AppError{
		Code:       "BAD_REQUEST",
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
		Details: map[string]any{
			"field": field,
		},
	}
}

func notFound(id string, err error) *common.AppError {
	return &common.AppError{
		Code:       "NOT_FOUND",
		Message:    "catalog item not found",
		HTTPStatus: http.StatusNotFound,
		Err:        err,
		Details:    map[string]any{"id": id},
	}
}
