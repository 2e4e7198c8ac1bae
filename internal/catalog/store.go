package catalog

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/klinika/backend-billing/internal/billing"
	"github.com/klinika/backend-billing/internal/pricing"
)

// ErrNotFound indicates the requested catalog item does not exist.
var ErrNotFound = errors.New("catalog item not found")

// Store holds the catalog as a sequence of immutable versioned snapshots.
// Reads hand out copies, so a listed snapshot never observes later edits and
// bills that copied item fields at add-time stay untouched by CRUD.
type Store struct {
	mu      sync.RWMutex
	version uint64
	items   []Item
}

// Snapshot is one immutable catalog version.
type Snapshot struct {
	Version uint64
	Items   []Item
}

// NewStore seeds a store with the provided items. Duplicate ids keep the
// first occurrence.
func NewStore(seed []Item) *Store {
	seen := make(map[string]struct{}, len(seed))
	items := make([]Item, 0, len(seed))
	for _, it := range seed {
		if _, dup := seen[it.ID]; dup {
			continue
		}
		seen[it.ID] = struct{}{}
		items = append(items, it)
	}
	return &Store{version: 1, items: items}
}

// Snapshot returns the current catalog version with a copied item slice.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return Snapshot{Version: s.version, Items: items}
}

// Version returns the current catalog version.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Get looks up a single item by id.
func (s *Store) Get(id string) (Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, nil
		}
	}
	return Item{}, ErrNotFound
}

// Resolve looks up an item and converts it to its bill form. It satisfies
// the item source interface the bill service depends on.
func (s *Store) Resolve(id string) (billing.Item, bool) {
	it, err := s.Get(id)
	if err != nil {
		return billing.Item{}, false
	}
	return it.BillItem(), true
}

// CreateInput carries the fields for a new catalog item.
type CreateInput struct {
	Name     string
	Price    pricing.Money
	Category string
	Daily    bool
	Type     ServiceType
}

// Create appends a new item with a freshly assigned id and bumps the version.
func (s *Store) Create(in CreateInput) Item {
	item := Item{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(in.Name),
		Price:    in.Price,
		Category: in.Category,
		Daily:    in.Daily,
		Type:     in.Type,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
	s.version++
	return item
}

// Patch carries optional field updates; nil fields are left unchanged.
type Patch struct {
	Name     *string
	Price    *pricing.Money
	Category *string
	Daily    *bool
	Type     *ServiceType
}

// Update applies the patch to the item with the given id and bumps the version.
func (s *Store) Update(id string, patch Patch) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.ID != id {
			continue
		}
		if patch.Name != nil {
			it.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Price != nil {
			it.Price = *patch.Price
		}
		if patch.Category != nil {
			it.Category = *patch.Category
		}
		if patch.Daily != nil {
			it.Daily = *patch.Daily
		}
		if patch.Type != nil {
			it.Type = *patch.Type
		}
		s.items[i] = it
		s.version++
		return it, nil
	}
	return Item{}, ErrNotFound
}

// Delete removes the item with the given id and bumps the version.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.version++
			return nil
		}
	}
	return ErrNotFound
}

// Len reports the number of items in the current version.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
