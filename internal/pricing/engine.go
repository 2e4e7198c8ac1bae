package pricing

// Money represents a monetary value stored in minor units.
type Money = int64

// Line describes a bill line used for pricing calculation.
type Line struct {
	Qty       int
	UnitPrice Money
	Daily     bool
}

// Extended calculates the extended price of a single line. Daily lines scale
// by the billable stay length in addition to quantity.
func Extended(l Line, stayDays int) Money {
	if l.Qty <= 0 {
		return 0
	}
	amount := Money(l.Qty) * l.UnitPrice
	if l.Daily {
		if stayDays < 1 {
			stayDays = 1
		}
		amount *= Money(stayDays)
	}
	return amount
}

// Total sums extended prices over every line. Integer arithmetic keeps the
// result exact and independent of line order.
func Total(lines []Line, stayDays int) Money {
	var total Money
	for _, l := range lines {
		total += Extended(l, stayDays)
	}
	return total
}
