package billing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/klinika/backend-billing/internal/pricing"
)

func TestAggregateGroupsByCategoryInFirstSeenOrder(t *testing.T) {
	bill := Bill{}
	bill = AddOrIncrement(bill, cbc())
	bill = AddOrIncrement(bill, privateRoom())
	bill = AddOrIncrement(bill, Item{ID: "lab2", Name: "Urinalysis", Price: 15000, Category: "Laboratory Tests"})

	summary := Aggregate(bill, 1)
	require.Len(t, summary.Groups, 2)
	require.Equal(t, "Laboratory Tests", summary.Groups[0].Category)
	require.Equal(t, "Room & Board", summary.Groups[1].Category)
	require.Len(t, summary.Groups[0].Lines, 2)
	require.Equal(t, pricing.Money(50000), summary.Groups[0].Subtotal)
}

func TestAggregateAppliesDailyMultiplier(t *testing.T) {
	bill := AddOrIncrement(Bill{}, privateRoom())
	summary := Aggregate(bill, 3)
	require.Equal(t, pricing.Money(1050000), summary.Total)
	require.Equal(t, 3, summary.StayDays)

	// non-daily lines stay untouched by stay length
	bill = AddOrIncrement(bill, cbc())
	summary = Aggregate(bill, 3)
	require.Equal(t, pricing.Money(1050000+35000), summary.Total)
}

func TestAggregateClampsStayDays(t *testing.T) {
	bill := AddOrIncrement(Bill{}, privateRoom())
	require.Equal(t, Aggregate(bill, 1).Total, Aggregate(bill, 0).Total)
	require.Equal(t, 1, Aggregate(bill, -4).StayDays)
}

func TestAggregateEmptyBill(t *testing.T) {
	summary := Aggregate(Bill{}, 1)
	require.Empty(t, summary.Groups)
	require.Equal(t, pricing.Money(0), summary.Total)
}

func TestExtendedPriceQuantityAndDaily(t *testing.T) {
	line := Line{Price: 150000, Quantity: 2, Daily: true}
	require.Equal(t, pricing.Money(900000), ExtendedPrice(line, 3))

	line.Daily = false
	require.Equal(t, pricing.Money(300000), ExtendedPrice(line, 3))

	line.Quantity = 0
	require.Equal(t, pricing.Money(0), ExtendedPrice(line, 3))
}
