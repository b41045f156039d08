package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"honorsinventory/internal/domain"
)

type Service struct {
	store  Store
	events Publisher
	now    func() time.Time
}

// NewService wires the equipment service. A nil publisher disables change
// events.
func NewService(store Store, events Publisher) *Service {
	if events == nil {
		events = noopPublisher{}
	}
	return &Service{
		store:  store,
		events: events,
		now:    time.Now,
	}
}

// ListAll returns every piece of equipment ordered by building type, room and
// equipment type.
func (s *Service) ListAll(ctx context.Context) ([]domain.EquipmentView, error) {
	items, err := s.store.Equipment().ListViews(ctx)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.EquipmentView, error) {
	v, err := s.store.Equipment().GetView(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get equipment %d: %w", id, err)
	}
	return v, nil
}

// Create stores a new piece of equipment. Without a location it goes to the
// first Warehouse room.
func (s *Service) Create(ctx context.Context, model, equipmentType string, locationID *int64) (*domain.EquipmentView, error) {
	model, equipmentType, err := normalizeFields(model, equipmentType)
	if err != nil {
		return nil, err
	}

	var view *domain.EquipmentView
	err = s.store.InTx(ctx, func(tx Store) error {
		target, err := resolveLocation(ctx, tx, locationID)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		e := &domain.Equipment{
			Model:         model,
			EquipmentType: equipmentType,
			LocationID:    target,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := tx.Equipment().Create(ctx, e); err != nil {
			return err
		}

		view, err = tx.Equipment().GetView(ctx, e.ID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create equipment: %w", err)
	}

	s.publish(domain.EventEquipmentCreated, view.ID, view)
	return view, nil
}

// Update overwrites model and type. Location and creation time are kept.
func (s *Service) Update(ctx context.Context, id int64, model, equipmentType string) (*domain.EquipmentView, error) {
	model, equipmentType, err := normalizeFields(model, equipmentType)
	if err != nil {
		return nil, err
	}

	var view *domain.EquipmentView
	err = s.store.InTx(ctx, func(tx Store) error {
		err := tx.Equipment().Update(ctx, id, map[string]any{
			"model":          model,
			"equipment_type": equipmentType,
			"updated_at":     s.now().UTC(),
		})
		if err != nil {
			return err
		}

		view, err = tx.Equipment().GetView(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update equipment %d: %w", id, err)
	}

	s.publish(domain.EventEquipmentUpdated, id, view)
	return view, nil
}

// Delete reports whether a row was removed.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := s.store.InTx(ctx, func(tx Store) error {
		var err error
		deleted, err = tx.Equipment().Delete(ctx, id)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("delete equipment %d: %w", id, err)
	}

	if deleted {
		s.publish(domain.EventEquipmentDeleted, id, nil)
	}
	return deleted, nil
}

// Transfer moves equipment to another room. Moving to the current room is
// allowed and still bumps updatedAt.
func (s *Service) Transfer(ctx context.Context, id, newLocationID int64) (*domain.EquipmentView, error) {
	var view *domain.EquipmentView
	err := s.store.InTx(ctx, func(tx Store) error {
		if _, err := tx.Equipment().GetByID(ctx, id); err != nil {
			return err
		}
		if _, err := tx.Locations().GetByID(ctx, newLocationID); err != nil {
			return err
		}

		err := tx.Equipment().Update(ctx, id, map[string]any{
			"location_id": newLocationID,
			"updated_at":  s.now().UTC(),
		})
		if err != nil {
			return err
		}

		view, err = tx.Equipment().GetView(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("transfer equipment %d to location %d: %w", id, newLocationID, err)
	}

	s.publish(domain.EventEquipmentTransferred, id, view)
	return view, nil
}

func (s *Service) publish(t domain.EventType, id int64, view *domain.EquipmentView) {
	s.events.Publish(domain.Event{
		Type:        t,
		EquipmentID: id,
		Equipment:   view,
		At:          s.now().UTC(),
	})
}

func resolveLocation(ctx context.Context, tx Store, locationID *int64) (int64, error) {
	if locationID == nil {
		wh, err := tx.Locations().FirstWarehouse(ctx)
		if err != nil {
			return 0, err
		}
		return wh.ID, nil
	}

	loc, err := tx.Locations().GetByID(ctx, *locationID)
	if err != nil {
		return 0, err
	}
	return loc.ID, nil
}

func normalizeFields(model, equipmentType string) (string, string, error) {
	model = strings.TrimSpace(model)
	equipmentType = strings.TrimSpace(equipmentType)

	fields := map[string]string{}
	checkText(fields, "model", model, domain.EquipmentModelMaxLen)
	checkText(fields, "equipmentType", equipmentType, domain.EquipmentTypeMaxLen)
	if len(fields) > 0 {
		return "", "", &ValidationError{Fields: fields}
	}
	return model, equipmentType, nil
}

func checkText(fields map[string]string, name, value string, max int) {
	switch n := utf8.RuneCountInString(value); {
	case n == 0:
		fields[name] = "is required"
	case n > max:
		fields[name] = fmt.Sprintf("must be at most %d characters", max)
	}
}
