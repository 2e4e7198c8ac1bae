package billing

import (
	"strings"

	"github.com/google/uuid"

	"github.com/klinika/backend-billing/internal/pricing"
)

// Line is one entry in a bill. Item fields are copied by value at add-time so
// later catalog edits never retroactively change an open bill.
type Line struct {
	LineID   string        `json:"lineId"`
	ItemID   string        `json:"itemId"`
	Name     string        `json:"name"`
	Price    pricing.Money `json:"price"`
	Category string        `json:"category"`
	Daily    bool          `json:"daily,omitempty"`
	Quantity int           `json:"quantity"`
}

// Item carries the catalog fields the selection engine needs. Callers pass a
// snapshot copy; the engine never holds a reference back into the catalog.
type Item struct {
	ID       string
	Name     string
	Price    pricing.Money
	Category string
	Daily    bool
}

// Bill is an ordered sequence of lines, insertion order preserved. All
// operations are pure: the input bill is never mutated and a new value is
// returned, so callers can keep prior states around.
type Bill []Line

func newLineID() string {
	return uuid.NewString()
}

func (b Bill) clone() Bill {
	if len(b) == 0 {
		return Bill{}
	}
	out := make(Bill, len(b))
	copy(out, b)
	return out
}

// FindByItem returns the index of the line holding the given catalog item, or -1.
func (b Bill) FindByItem(itemID string) int {
	for i, l := range b {
		if l.ItemID == itemID {
			return i
		}
	}
	return -1
}

// FindByLine returns the index of the line with the given line id, or -1.
func (b Bill) FindByLine(lineID string) int {
	for i, l := range b {
		if l.LineID == lineID {
			return i
		}
	}
	return -1
}

// AddOrIncrement merges the item into the bill: an existing line for the same
// catalog id gains one unit, otherwise a new line with quantity 1 is appended.
// It always succeeds.
func AddOrIncrement(b Bill, item Item) Bill {
	next := b.clone()
	if i := next.FindByItem(item.ID); i >= 0 {
		next[i].Quantity++
		return next
	}
	return append(next, Line{
		LineID:   newLineID(),
		ItemID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Category: item.Category,
		Daily:    item.Daily,
		Quantity: 1,
	})
}

// Toggle flips the item's presence: an existing line is removed regardless of
// quantity, an absent item is added with quantity fixed at 1. Used for
// categories where presence is binary and quantity is meaningless.
func Toggle(b Bill, item Item) Bill {
	if i := b.FindByItem(item.ID); i >= 0 {
		next := make(Bill, 0, len(b)-1)
		next = append(next, b[:i]...)
		return append(next, b[i+1:]...)
	}
	next := b.clone()
	return append(next, Line{
		LineID:   newLineID(),
		ItemID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Category: item.Category,
		Daily:    item.Daily,
		Quantity: 1,
	})
}

// AdjustQuantity adds delta to the quantity of the line with the given line
// id. A resulting quantity of zero or below removes the line. An unknown line
// id is a no-op, not an error.
func AdjustQuantity(b Bill, lineID string, delta int) Bill {
	i := b.FindByLine(lineID)
	if i < 0 {
		return b.clone()
	}
	next := b.clone()
	next[i].Quantity += delta
	if next[i].Quantity <= 0 {
		return append(next[:i], next[i+1:]...)
	}
	return next
}

// Remove deletes the line with the given line id; unknown ids are a no-op.
func Remove(b Bill, lineID string) Bill {
	i := b.FindByLine(lineID)
	if i < 0 {
		return b.clone()
	}
	next := b.clone()
	return append(next[:i], next[i+1:]...)
}

// Clear returns an empty bill.
func Clear(Bill) Bill {
	return Bill{}
}

// AddManualEntry appends a free-form charge for categories whose items are
// not in the catalog. Name must be non-empty and price non-negative; invalid
// input returns a ValidationError and leaves the bill unchanged.
func AddManualEntry(b Bill, category, name string, price pricing.Money) (Bill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return b, &ValidationError{Field: "name", Reason: "name is required"}
	}
	if price < 0 {
		return b, &ValidationError{Field: "price", Reason: "price must not be negative"}
	}
	next := b.clone()
	id := newLineID()
	return append(next, Line{
		LineID:   id,
		ItemID:   "manual-" + id,
		Name:     name,
		Price:    price,
		Category: category,
		Quantity: 1,
	}), nil
}
