package billing

import (
	"fmt"
	"strings"
)

// InteractionMode describes how a category's items enter the bill. The mode
// is declared per category in catalog metadata and dispatched explicitly by
// the selection engine rather than inferred from the payload shape.
type InteractionMode string

const (
	// ModeSearch items are picked from the catalog and carry a quantity.
	ModeSearch InteractionMode = "search"
	// ModeToggle items are either present with quantity 1 or absent.
	ModeToggle InteractionMode = "toggle"
	// ModeManual categories accept only free-form priced entries.
	ModeManual InteractionMode = "manual"
)

// ParseInteractionMode validates a mode string.
func ParseInteractionMode(raw string) (InteractionMode, error) {
	switch InteractionMode(strings.ToLower(strings.TrimSpace(raw))) {
	case ModeSearch:
		return ModeSearch, nil
	case ModeToggle:
		return ModeToggle, nil
	case ModeManual:
		return ModeManual, nil
	default:
		return "", fmt.Errorf("unknown interaction mode: %q", raw)
	}
}

// Select applies the selection gesture appropriate for the item's category
// mode: toggle categories flip presence, everything else merges quantities.
func Select(b Bill, item Item, mode InteractionMode) Bill {
	if mode == ModeToggle {
		return Toggle(b, item)
	}
	return AddOrIncrement(b, item)
}
