package inventory

import (
	"context"

	"honorsinventory/internal/domain"
)

type EquipmentRepository interface {
	ListViews(ctx context.Context) ([]domain.EquipmentView, error)
	GetView(ctx context.Context, id int64) (*domain.EquipmentView, error)
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	Create(ctx context.Context, e *domain.Equipment) error
	Update(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type LocationRepository interface {
	List(ctx context.Context) ([]domain.Location, error)
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
	FirstWarehouse(ctx context.Context) (*domain.Location, error)
}

// Store hands out repositories bound to one database handle. Inside InTx the
// Store passed to fn is bound to the open transaction.
type Store interface {
	Equipment() EquipmentRepository
	Locations() LocationRepository
	InTx(ctx context.Context, fn func(tx Store) error) error
}

// Publisher receives change events after a mutation has committed.
type Publisher interface {
	Publish(event domain.Event)
}

type noopPublisher struct{}

func (noopPublisher) Publish(domain.Event) {}
