package inventory

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"honorsinventory/internal/domain"
)

const pgForeignKeyViolation = "23503"

// GormStore is the Store used in production, over either PostgreSQL or SQLite.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Equipment() EquipmentRepository {
	return &equipmentRepo{db: s.db}
}

func (s *GormStore) Locations() LocationRepository {
	return &locationRepo{db: s.db}
}

func (s *GormStore) InTx(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

type equipmentRepo struct {
	db *gorm.DB
}

func (r *equipmentRepo) views(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("equipment AS e").
		Select("e.id, e.model, e.equipment_type, e.location_id, " +
			"l.room_name AS location_name, l.building_type, e.created_at, e.updated_at").
		Joins("JOIN locations l ON l.id = e.location_id")
}

func (r *equipmentRepo) ListViews(ctx context.Context) ([]domain.EquipmentView, error) {
	var out []domain.EquipmentView
	err := r.views(ctx).
		Order("l.building_type, l.room_name, e.equipment_type, e.id").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.EquipmentView{}
	}
	return out, nil
}

func (r *equipmentRepo) GetView(ctx context.Context, id int64) (*domain.EquipmentView, error) {
	var out []domain.EquipmentView
	if err := r.views(ctx).Where("e.id = ?", id).Limit(1).Scan(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrEquipmentNotFound
	}
	return &out[0], nil
}

func (r *equipmentRepo) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	var e domain.Equipment
	err := r.db.WithContext(ctx).First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEquipmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *equipmentRepo) Create(ctx context.Context, e *domain.Equipment) error {
	err := r.db.WithContext(ctx).Omit("Location").Create(e).Error
	if isForeignKeyError(err) {
		return ErrLocationNotFound
	}
	return err
}

func (r *equipmentRepo) Update(ctx context.Context, id int64, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&domain.Equipment{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		if isForeignKeyError(res.Error) {
			return ErrLocationNotFound
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrEquipmentNotFound
	}
	return nil
}

func (r *equipmentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Equipment{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

type locationRepo struct {
	db *gorm.DB
}

func (r *locationRepo) List(ctx context.Context) ([]domain.Location, error) {
	out := []domain.Location{}
	if err := r.db.WithContext(ctx).Order("building_type, room_name").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *locationRepo) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	var l domain.Location
	err := r.db.WithContext(ctx).First(&l, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLocationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// FirstWarehouse returns the Warehouse room with the lowest id.
func (r *locationRepo) FirstWarehouse(ctx context.Context) (*domain.Location, error) {
	var l domain.Location
	err := r.db.WithContext(ctx).
		Where("building_type = ?", domain.BuildingWarehouse).
		Order("id").
		First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoWarehouse
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key constraint")
}
