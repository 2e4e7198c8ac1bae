package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/klinika/backend-billing/internal/session"
)

type fakeItemSource map[string]Item

func (f fakeItemSource) Resolve(id string) (Item, bool) {
	item, ok := f[id]
	return item, ok
}

func newTestService() *Service {
	return &Service{
		Sessions: session.NewStore[State](time.Hour),
		Items: fakeItemSource{
			"lab1":  cbc(),
			"room1": privateRoom(),
		},
	}
}

func TestServiceOpenAndGet(t *testing.T) {
	svc := newTestService()
	snap, err := svc.Open()
	require.NoError(t, err)
	require.NotEmpty(t, snap.SessionID)
	require.Empty(t, snap.Bill)

	got, err := svc.Get(snap.SessionID)
	require.NoError(t, err)
	require.Equal(t, snap.SessionID, got.SessionID)
}

func TestServiceGetUnknownSession(t *testing.T) {
	svc := newTestService()
	_, err := svc.Get("missing")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestServiceAddItem(t *testing.T) {
	svc := newTestService()
	snap, err := svc.Open()
	require.NoError(t, err)

	snap, err = svc.AddItem(snap.SessionID, "lab1")
	require.NoError(t, err)
	require.Len(t, snap.Bill, 1)

	snap, err = svc.AddItem(snap.SessionID, "lab1")
	require.NoError(t, err)
	require.Len(t, snap.Bill, 1)
	require.Equal(t, 2, snap.Bill[0].Quantity)
	require.EqualValues(t, 70000, snap.Total)
}

func TestServiceAddItemUnknown(t *testing.T) {
	svc := newTestService()
	snap, err := svc.Open()
	require.NoError(t, err)

	_, err = svc.AddItem(snap.SessionID, "nope")
	require.ErrorIs(t, err, ErrItemNotFound)

	// the failed add must not touch the session
	got, err := svc.Get(snap.SessionID)
	require.NoError(t, err)
	require.Empty(t, got.Bill)
}

func TestServiceToggle(t *testing.T) {
	svc := newTestService()
	snap, err := svc.Open()
	require.NoError(t, err)

	snap, err = svc.ToggleItem(snap.SessionID, "lab1")
	require.NoError(t, err)
	require.Len(t, snap.Bill, 1)

	snap, err = svc.ToggleItem(snap.SessionID, "lab1")
	require.NoError(t, err)
	require.Empty(t, snap.Bill)
}

func TestServiceManualEntry(t *testing.T) {
	svc := newTestService()
	snap, err := svc.Open()
	require.NoError(t, err)

	snap, err = svc.AddManual(snap.SessionID, "Therapy Services", "Physical Therapy Session", 80000)
	require.NoError(t, err)
	require.Len(t, snap.Bill, 1)
	require.EqualValues(t, 80000, snap.Total)

	_, err = svc.AddManual(snap.SessionID, "Therapy Services", "", 80000)
	require.Error(t, err)
	require.True(t, IsValidation(err))
}

func TestServiceAdjustRemoveClear(t *testing.T) {
	svc := newTestService()
	snap, err := svc.Open()
	require.NoError(t, err)

	snap, err = svc.AddItem(snap.SessionID, "lab1")
	require.NoError(t, err)
	lineID := snap.Bill[0].LineID

	snap, err = svc.Adjust(snap.SessionID, lineID, 2)
	require.NoError(t, err)
	require.Equal(t, 3, snap.Bill[0].Quantity)

	snap, err = svc.RemoveLine(snap.SessionID, lineID)
	require.NoError(t, err)
	require.Empty(t, snap.Bill)

	snap, err = svc.AddItem(snap.SessionID, "room1")
	require.NoError(t, err)
	snap, err = svc.ClearBill(snap.SessionID)
	require.NoError(t, err)
	require.Empty(t, snap.Bill)
}

func TestServiceSetStay(t *testing.T) {
	svc := newTestService()
	snap, err := svc.Open()
	require.NoError(t, err)

	snap, err = svc.AddItem(snap.SessionID, "room1")
	require.NoError(t, err)
	require.EqualValues(t, 350000, snap.Total)

	snap, err = svc.SetStay(snap.SessionID, date("2025-03-01"), date("2025-03-04"))
	require.NoError(t, err)
	require.Equal(t, 3, snap.Summary.StayDays)
	require.EqualValues(t, 1050000, snap.Total)
}

func TestServiceSetStayRejectsReversedDates(t *testing.T) {
	svc := newTestService()
	snap, err := svc.Open()
	require.NoError(t, err)

	_, err = svc.SetStay(snap.SessionID, date("2025-03-04"), date("2025-03-01"))
	require.Error(t, err)
	require.True(t, IsValidation(err))
}

func TestServiceClearKeepsStay(t *testing.T) {
	svc := newTestService()
	snap, err := svc.Open()
	require.NoError(t, err)

	snap, err = svc.SetStay(snap.SessionID, date("2025-03-01"), date("2025-03-04"))
	require.NoError(t, err)

	snap, err = svc.ClearBill(snap.SessionID)
	require.NoError(t, err)
	require.Equal(t, 3, snap.Summary.StayDays)
	require.NotNil(t, snap.Stay.Admission)
}
