package billing

import "github.com/klinika/backend-billing/internal/pricing"

// AggregatedLine pairs a bill line with its extended price at a given stay length.
type AggregatedLine struct {
	Line
	Extended pricing.Money `json:"extended"`
}

// CategoryGroup collects the lines of one category for display.
type CategoryGroup struct {
	Category string           `json:"category"`
	Lines    []AggregatedLine `json:"lines"`
	Subtotal pricing.Money    `json:"subtotal"`
}

// Summary is the aggregated view of a bill: lines grouped by category in
// first-seen order, with exact extended prices and grand total.
type Summary struct {
	Groups   []CategoryGroup `json:"groups"`
	StayDays int             `json:"stayDays"`
	Total    pricing.Money   `json:"total"`
}

// ExtendedPrice computes a single line's extended price: unit price times
// quantity, times the stay length for daily-rate lines.
func ExtendedPrice(l Line, stayDays int) pricing.Money {
	return pricing.Extended(pricing.Line{Qty: l.Quantity, UnitPrice: l.Price, Daily: l.Daily}, stayDays)
}

// Aggregate partitions the bill by category, preserving first-seen category
// order and within-category insertion order, and computes the grand total.
// The total is a plain integer sum, so it is invariant under any permutation
// of the bill's lines.
func Aggregate(b Bill, stayDays int) Summary {
	if stayDays < 1 {
		stayDays = 1
	}
	summary := Summary{Groups: []CategoryGroup{}, StayDays: stayDays}
	index := make(map[string]int, len(b))
	for _, line := range b {
		extended := ExtendedPrice(line, stayDays)
		gi, ok := index[line.Category]
		if !ok {
			gi = len(summary.Groups)
			index[line.Category] = gi
			summary.Groups = append(summary.Groups, CategoryGroup{Category: line.Category})
		}
		summary.Groups[gi].Lines = append(summary.Groups[gi].Lines, AggregatedLine{Line: line, Extended: extended})
		summary.Groups[gi].Subtotal += extended
		summary.Total += extended
	}
	return summary
}
