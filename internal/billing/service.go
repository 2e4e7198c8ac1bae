package billing

import (
	"errors"
	"strings"
	"time"

	"github.com/klinika/backend-billing/internal/pricing"
	"github.com/klinika/backend-billing/internal/session"
)

// ItemSource resolves catalog items referenced by bill operations.
type ItemSource interface {
	Resolve(id string) (Item, bool)
}

// State is the complete per-session calculator state.
type State struct {
	Bill Bill `json:"bill"`
	Stay Stay `json:"stay"`
}

// Snapshot is the canonical view of a session returned after every
// operation: the raw lines plus the grouped, stay-aware summary.
type Snapshot struct {
	SessionID string        `json:"sessionId"`
	Bill      Bill          `json:"bill"`
	Stay      Stay          `json:"stay"`
	Summary   Summary       `json:"summary"`
	Total     pricing.Money `json:"total"`
}

// Service applies bill operations to session state. All mutation goes
// through the session store's Update so concurrent requests against the
// same session serialize cleanly.
type Service struct {
	Sessions *session.Store[State]
	Items    ItemSource
}

func (s *Service) ready() error {
	if s == nil || s.Sessions == nil {
		return errors.New("billing service not configured")
	}
	return nil
}

func (s *Service) snapshot(id string, st State) Snapshot {
	summary := Aggregate(st.Bill, st.Stay.Days())
	return Snapshot{
		SessionID: id,
		Bill:      st.Bill,
		Stay:      st.Stay,
		Summary:   summary,
		Total:     summary.Total,
	}
}

// Open creates an empty session and returns its snapshot.
func (s *Service) Open() (Snapshot, error) {
	if err := s.ready(); err != nil {
		return Snapshot{}, err
	}
	st := State{Bill: Bill{}}
	id := s.Sessions.Create(st)
	return s.snapshot(id, st), nil
}

// Get returns the current snapshot for a session.
func (s *Service) Get(id string) (Snapshot, error) {
	if err := s.ready(); err != nil {
		return Snapshot{}, err
	}
	st, ok := s.Sessions.Get(id)
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}
	return s.snapshot(id, st), nil
}

func (s *Service) mutate(id string, fn func(State) (State, error)) (Snapshot, error) {
	if err := s.ready(); err != nil {
		return Snapshot{}, err
	}
	var opErr error
	st, ok := s.Sessions.Update(id, func(cur State) State {
		next, err := fn(cur)
		if err != nil {
			opErr = err
			return cur
		}
		return next
	})
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}
	if opErr != nil {
		return Snapshot{}, opErr
	}
	return s.snapshot(id, st), nil
}

func (s *Service) resolve(itemID string) (Item, error) {
	if s.Items == nil {
		return Item{}, errors.New("billing service has no item source")
	}
	item, ok := s.Items.Resolve(strings.TrimSpace(itemID))
	if !ok {
		return Item{}, ErrItemNotFound
	}
	return item, nil
}

// AddItem adds a catalog item to the bill, merging into an existing line.
func (s *Service) AddItem(sessionID, itemID string) (Snapshot, error) {
	item, err := s.resolve(itemID)
	if err != nil {
		return Snapshot{}, err
	}
	return s.mutate(sessionID, func(st State) (State, error) {
		st.Bill = AddOrIncrement(st.Bill, item)
		return st, nil
	})
}

// ToggleItem adds the item if absent and removes it if present.
func (s *Service) ToggleItem(sessionID, itemID string) (Snapshot, error) {
	item, err := s.resolve(itemID)
	if err != nil {
		return Snapshot{}, err
	}
	return s.mutate(sessionID, func(st State) (State, error) {
		st.Bill = Toggle(st.Bill, item)
		return st, nil
	})
}

// AddManual appends a free-form entry to the bill.
func (s *Service) AddManual(sessionID, category, name string, price pricing.Money) (Snapshot, error) {
	return s.mutate(sessionID, func(st State) (State, error) {
		bill, err := AddManualEntry(st.Bill, category, name, price)
		if err != nil {
			return st, err
		}
		st.Bill = bill
		return st, nil
	})
}

// Adjust changes a line's quantity by delta, removing it at zero or below.
func (s *Service) Adjust(sessionID, lineID string, delta int) (Snapshot, error) {
	return s.mutate(sessionID, func(st State) (State, error) {
		st.Bill = AdjustQuantity(st.Bill, lineID, delta)
		return st, nil
	})
}

// RemoveLine deletes a line regardless of quantity.
func (s *Service) RemoveLine(sessionID, lineID string) (Snapshot, error) {
	return s.mutate(sessionID, func(st State) (State, error) {
		st.Bill = Remove(st.Bill, lineID)
		return st, nil
	})
}

// ClearBill resets the bill while keeping the session and its stay dates.
func (s *Service) ClearBill(sessionID string) (Snapshot, error) {
	return s.mutate(sessionID, func(st State) (State, error) {
		st.Bill = Clear(st.Bill)
		return st, nil
	})
}

// SetStay records admission and discharge dates. A discharge before the
// admission is rejected rather than silently clamped.
func (s *Service) SetStay(sessionID string, admission, discharge *time.Time) (Snapshot, error) {
	if admission != nil && discharge != nil && discharge.Before(*admission) {
		return Snapshot{}, &ValidationError{Field: "dischargeDate", Reason: "must not be before admission date"}
	}
	return s.mutate(sessionID, func(st State) (State, error) {
		st.Stay = Stay{Admission: admission, Discharge: discharge}
		return st, nil
	})
}
