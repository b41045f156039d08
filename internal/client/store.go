package client

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"honorsinventory/internal/domain"
)

const (
	MsgFetchFailed    = "Failed to fetch equipment"
	MsgCreateFailed   = "Failed to create equipment"
	MsgUpdateFailed   = "Failed to update equipment"
	MsgDeleteFailed   = "Failed to delete equipment"
	MsgTransferFailed = "Failed to transfer equipment"
)

// API is the part of Client the Store depends on.
type API interface {
	ListEquipment(ctx context.Context) ([]domain.EquipmentView, error)
	ListLocations(ctx context.Context) ([]domain.Location, error)
	CreateEquipment(ctx context.Context, req domain.CreateEquipmentRequest) (*domain.EquipmentView, error)
	UpdateEquipment(ctx context.Context, id int64, req domain.UpdateEquipmentRequest) (*domain.EquipmentView, error)
	DeleteEquipment(ctx context.Context, id int64) error
	TransferEquipment(ctx context.Context, id, newLocationID int64) (*domain.EquipmentView, error)
}

// State is a point-in-time copy of the store. Error is empty when the last
// action succeeded.
type State struct {
	Equipment []domain.EquipmentView
	Locations []domain.Location
	Loading   bool
	Error     string
}

// Store holds the client's copy of the inventory. All writes go through its
// methods under one lock; readers get snapshots. Mutations wait for the
// server and then patch the single affected element.
type Store struct {
	api API
	log *zap.Logger

	mu    sync.RWMutex
	state State
}

func NewStore(api API, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		api:   api,
		log:   log,
		state: State{Loading: true},
	}
}

func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{
		Equipment: append([]domain.EquipmentView(nil), s.state.Equipment...),
		Locations: append([]domain.Location(nil), s.state.Locations...),
		Loading:   s.state.Loading,
		Error:     s.state.Error,
	}
}

// Load fetches equipment and locations concurrently and returns once both
// are done. Only the equipment fetch drives Loading and Error.
func (s *Store) Load(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.fetchEquipment(ctx)
	}()
	go func() {
		defer wg.Done()
		s.fetchLocations(ctx)
	}()
	wg.Wait()
}

// Refetch reloads the equipment list only.
func (s *Store) Refetch(ctx context.Context) {
	s.fetchEquipment(ctx)
}

func (s *Store) fetchEquipment(ctx context.Context) {
	s.mu.Lock()
	s.state.Loading = true
	s.mu.Unlock()

	items, err := s.api.ListEquipment(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = false
	if err != nil {
		s.log.Warn("fetch equipment failed", zap.Error(err))
		s.state.Error = MsgFetchFailed
		return
	}
	s.state.Equipment = items
	s.state.Error = ""
}

func (s *Store) fetchLocations(ctx context.Context) {
	locations, err := s.api.ListLocations(ctx)
	if err != nil {
		s.log.Warn("fetch locations failed", zap.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Locations = locations
}

func (s *Store) Create(ctx context.Context, req domain.CreateEquipmentRequest) bool {
	s.clearError()
	item, err := s.api.CreateEquipment(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.fail(MsgCreateFailed, err)
		return false
	}
	s.state.Equipment = append(s.state.Equipment, *item)
	return true
}

func (s *Store) Update(ctx context.Context, id int64, req domain.UpdateEquipmentRequest) bool {
	s.clearError()
	item, err := s.api.UpdateEquipment(ctx, id, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.fail(MsgUpdateFailed, err)
		return false
	}
	s.replace(*item)
	return true
}

func (s *Store) Delete(ctx context.Context, id int64) bool {
	s.clearError()
	err := s.api.DeleteEquipment(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.fail(MsgDeleteFailed, err)
		return false
	}
	s.remove(id)
	return true
}

func (s *Store) Transfer(ctx context.Context, id, newLocationID int64) bool {
	s.clearError()
	item, err := s.api.TransferEquipment(ctx, id, newLocationID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.fail(MsgTransferFailed, err)
		return false
	}
	s.replace(*item)
	return true
}

// Apply patches the list from a change feed event. Events for items already
// patched by this store are harmless.
func (s *Store) Apply(ev domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.Type {
	case domain.EventEquipmentDeleted:
		s.remove(ev.EquipmentID)
	case domain.EventEquipmentCreated, domain.EventEquipmentUpdated, domain.EventEquipmentTransferred:
		if ev.Equipment == nil {
			return
		}
		if !s.replace(*ev.Equipment) {
			s.state.Equipment = append(s.state.Equipment, *ev.Equipment)
		}
	}
}

func (s *Store) clearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = ""
}

// fail must be called with mu held.
func (s *Store) fail(msg string, err error) {
	s.log.Warn(msg, zap.Error(err))
	s.state.Error = msg
}

// replace swaps the element with the same id in place and reports whether
// one was found. Callers hold mu.
func (s *Store) replace(item domain.EquipmentView) bool {
	for i := range s.state.Equipment {
		if s.state.Equipment[i].ID == item.ID {
			next := append([]domain.EquipmentView(nil), s.state.Equipment...)
			next[i] = item
			s.state.Equipment = next
			return true
		}
	}
	return false
}

func (s *Store) remove(id int64) {
	next := make([]domain.EquipmentView, 0, len(s.state.Equipment))
	for _, it := range s.state.Equipment {
		if it.ID != id {
			next = append(next, it)
		}
	}
	s.state.Equipment = next
}
