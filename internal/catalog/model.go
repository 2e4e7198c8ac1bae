package catalog

import (
	"fmt"
	"strings"

	"github.com/klinika/backend-billing/internal/billing"
	"github.com/klinika/backend-billing/internal/pricing"
)

// Mode identifies a calculator screen. Each mode sees its own category set
// and the slice of the catalog whose service type matches.
type Mode string

const (
	ModeOutpatient Mode = "outpatient"
	ModeInpatient  Mode = "inpatient"
)

// ParseMode validates a calculator mode string.
func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case ModeOutpatient:
		return ModeOutpatient, nil
	case ModeInpatient:
		return ModeInpatient, nil
	default:
		return "", fmt.Errorf("unknown calculator mode: %q", raw)
	}
}

// ServiceType governs catalog visibility in the management screen and which
// calculator modes an item is offered to.
type ServiceType string

const (
	TypeOutpatient ServiceType = "outpatient"
	TypeInpatient  ServiceType = "inpatient"
	TypeBoth       ServiceType = "both"
)

// ParseServiceType validates a service type string.
func ParseServiceType(raw string) (ServiceType, error) {
	switch ServiceType(strings.ToLower(strings.TrimSpace(raw))) {
	case TypeOutpatient:
		return TypeOutpatient, nil
	case TypeInpatient:
		return TypeInpatient, nil
	case TypeBoth:
		return TypeBoth, nil
	default:
		return "", fmt.Errorf("unknown service type: %q", raw)
	}
}

// Matches reports whether an item of this type is visible to the given mode.
func (t ServiceType) Matches(mode Mode) bool {
	switch t {
	case TypeBoth:
		return true
	case TypeOutpatient:
		return mode == ModeOutpatient
	case TypeInpatient:
		return mode == ModeInpatient
	}
	return false
}

// Item is one priced, categorized catalog entry.
type Item struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Price    pricing.Money `json:"price"`
	Category string        `json:"category"`
	Daily    bool          `json:"daily,omitempty"`
	Type     ServiceType   `json:"type"`
}

// BillItem converts the catalog entry into the value copy the selection
// engine stores on a bill line.
func (it Item) BillItem() billing.Item {
	return billing.Item{
		ID:       it.ID,
		Name:     it.Name,
		Price:    it.Price,
		Category: it.Category,
		Daily:    it.Daily,
	}
}

// Category is per-mode category metadata, including how its items are
// selected into a bill.
type Category struct {
	Name string                  `json:"name"`
	Mode billing.InteractionMode `json:"mode"`
}

// Filter returns the subset of items matching the free-text query and the
// optional category, AND-combined. The query is a case-insensitive substring
// match on the name; an empty query matches everything, as does an empty
// category. Ordering is preserved and the input is never mutated.
func Filter(items []Item, query, category string) []Item {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if category != "" && it.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(it.Name), query) {
			continue
		}
		out = append(out, it)
	}
	return out
}
