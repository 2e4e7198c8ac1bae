package billing

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/klinika/backend-billing/internal/pricing"
)

func cbc() Item {
	return Item{ID: "lab1", Name: "Complete Blood Count (CBC)", Price: 35000, Category: "Laboratory Tests"}
}

func privateRoom() Item {
	return Item{ID: "room1", Name: "Private Room", Price: 350000, Category: "Room & Board", Daily: true}
}

func TestAddOrIncrementMergesSameItem(t *testing.T) {
	bill := AddOrIncrement(Bill{}, cbc())
	require.Len(t, bill, 1)
	require.Equal(t, 1, bill[0].Quantity)

	bill = AddOrIncrement(bill, cbc())
	require.Len(t, bill, 1)
	require.Equal(t, 2, bill[0].Quantity)
	require.Equal(t, pricing.Money(70000), Aggregate(bill, 1).Total)
}

func TestAddOrIncrementDoesNotMutateInput(t *testing.T) {
	original := AddOrIncrement(Bill{}, cbc())
	_ = AddOrIncrement(original, cbc())
	require.Equal(t, 1, original[0].Quantity)
}

func TestToggleAddsThenRemoves(t *testing.T) {
	item := Item{ID: "con1", Name: "General Consultation", Price: 50000, Category: "Consultation"}
	bill := Toggle(Bill{}, item)
	require.Len(t, bill, 1)
	require.Equal(t, 1, bill[0].Quantity)

	bill = Toggle(bill, item)
	require.Empty(t, bill)
}

func TestToggleRemovesRegardlessOfQuantity(t *testing.T) {
	bill := AddOrIncrement(Bill{}, cbc())
	bill = AddOrIncrement(bill, cbc())
	require.Equal(t, 2, bill[0].Quantity)

	bill = Toggle(bill, cbc())
	require.Empty(t, bill)
}

func TestAdjustQuantity(t *testing.T) {
	bill := AddOrIncrement(Bill{}, cbc())
	lineID := bill[0].LineID

	bill = AdjustQuantity(bill, lineID, 2)
	require.Equal(t, 3, bill[0].Quantity)

	bill = AdjustQuantity(bill, lineID, -1)
	require.Equal(t, 2, bill[0].Quantity)

	bill = AdjustQuantity(bill, lineID, -2)
	require.Empty(t, bill)
}

func TestAdjustQuantityUnknownLineIsNoop(t *testing.T) {
	bill := AddOrIncrement(Bill{}, cbc())
	next := AdjustQuantity(bill, "missing", 5)
	require.Equal(t, bill, next)
}

func TestRemoveLine(t *testing.T) {
	bill := AddOrIncrement(Bill{}, cbc())
	bill = AddOrIncrement(bill, privateRoom())
	require.Len(t, bill, 2)

	bill = Remove(bill, bill[0].LineID)
	require.Len(t, bill, 1)
	require.Equal(t, "room1", bill[0].ItemID)

	bill = Remove(bill, "missing")
	require.Len(t, bill, 1)
}

func TestClear(t *testing.T) {
	bill := AddOrIncrement(Bill{}, cbc())
	require.Empty(t, Clear(bill))
}

func TestAddManualEntry(t *testing.T) {
	bill, err := AddManualEntry(Bill{}, "Therapy Services", "  Physical Therapy Session  ", 80000)
	require.NoError(t, err)
	require.Len(t, bill, 1)
	require.Equal(t, "Physical Therapy Session", bill[0].Name)
	require.Equal(t, 1, bill[0].Quantity)
	require.NotEmpty(t, bill[0].LineID)
	require.Contains(t, bill[0].ItemID, "manual-")
}

func TestAddManualEntryRejectsBlankName(t *testing.T) {
	_, err := AddManualEntry(Bill{}, "Therapy Services", "   ", 80000)
	require.Error(t, err)
	require.True(t, IsValidation(err))
}

func TestAddManualEntryRejectsNegativePrice(t *testing.T) {
	_, err := AddManualEntry(Bill{}, "Therapy Services", "Session", -1)
	require.Error(t, err)
	require.True(t, IsValidation(err))
}

func TestTotalInvariantUnderPermutation(t *testing.T) {
	items := []Item{
		cbc(),
		privateRoom(),
		{ID: "xray1", Name: "Chest X-Ray", Price: 45000, Category: "X-Ray"},
		{ID: "pf1", Name: "Attending Physician Fee", Price: 150000, Category: "Professional Fees", Daily: true},
		{ID: "med1", Name: "Paracetamol 500mg", Price: 500, Category: "Medications"},
	}
	bill := Bill{}
	for _, it := range items {
		bill = AddOrIncrement(bill, it)
	}
	bill = AddOrIncrement(bill, items[0])
	want := Aggregate(bill, 3).Total

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		shuffled := bill.clone()
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		require.Equal(t, want, Aggregate(shuffled, 3).Total)
	}
}
