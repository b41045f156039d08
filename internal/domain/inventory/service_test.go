package inventory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honorsinventory/internal/domain"
)

func newTestService(t *testing.T) (*Service, *recordingPublisher) {
	t.Helper()
	db := setupSeededDB(t)
	pub := &recordingPublisher{}
	svc := NewService(NewGormStore(db), pub)
	svc.now = steppingClock(time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC))
	return svc, pub
}

func TestCreateWithoutLocationGoesToWarehouse(t *testing.T) {
	svc, pub := newTestService(t)
	ctx := context.Background()

	item, err := svc.Create(ctx, "Test Cam", "Camera", nil)
	require.NoError(t, err)

	assert.Equal(t, "HON Warehouse", item.LocationName)
	assert.Equal(t, domain.BuildingWarehouse, item.BuildingType)
	assert.Equal(t, item.CreatedAt, item.UpdatedAt)

	events := pub.Events()
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventEquipmentCreated, events[0].Type)
	assert.Equal(t, item.ID, events[0].EquipmentID)
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	db := svc.store.(*GormStore).db
	office := locationID(t, db, "HON 4015B")

	created, err := svc.Create(ctx, "  Dell Latitude 7440 ", "Laptop", int64Ptr(office))
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dell Latitude 7440", got.Model)
	assert.Equal(t, "Laptop", got.EquipmentType)
	assert.Equal(t, office, got.LocationID)
	assert.Equal(t, "HON 4015B", got.LocationName)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestCreateWithMissingLocation(t *testing.T) {
	svc, pub := newTestService(t)
	ctx := context.Background()

	before, err := svc.ListAll(ctx)
	require.NoError(t, err)

	_, err = svc.Create(ctx, "Ghost", "Monitor", int64Ptr(9999))
	assert.ErrorIs(t, err, ErrLocationNotFound)

	after, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before))
	assert.Empty(t, pub.Events())
}

func TestCreateWithoutWarehouse(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&domain.Location{RoomName: "HON 3017", BuildingType: domain.BuildingClassroom}).Error)
	svc := NewService(NewGormStore(db), nil)

	_, err := svc.Create(context.Background(), "Epson", "Projector", nil)
	assert.ErrorIs(t, err, ErrNoWarehouse)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name          string
		model, eqType string
		fields        []string
	}{
		{name: "blank model", model: "   ", eqType: "Laptop", fields: []string{"model"}},
		{name: "long type", model: "X", eqType: strings.Repeat("t", 51), fields: []string{"equipmentType"}},
		{name: "both", model: "", eqType: "", fields: []string{"equipmentType", "model"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.model, tc.eqType, nil)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))

			var got []string
			for k := range verr.Fields {
				got = append(got, k)
			}
			sort.Strings(got)
			assert.Equal(t, tc.fields, got)
		})
	}

	// Limits count characters, not bytes.
	_, err := svc.Create(ctx, strings.Repeat("é", 100), "Camera", nil)
	assert.NoError(t, err)
}

func TestUpdateKeepsLocationAndCreatedAt(t *testing.T) {
	svc, pub := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "HP LaserJet", "Printer", nil)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, "HP LaserJet Pro", "Printer")
	require.NoError(t, err)

	assert.Equal(t, "HP LaserJet Pro", updated.Model)
	assert.Equal(t, created.LocationID, updated.LocationID)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	events := pub.Events()
	require.Len(t, events, 2)
	assert.Equal(t, domain.EventEquipmentUpdated, events[1].Type)
}

func TestUpdateMissing(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Update(context.Background(), 4242, "A", "B")
	assert.ErrorIs(t, err, ErrEquipmentNotFound)
}

func TestTransfer(t *testing.T) {
	svc, pub := newTestService(t)
	ctx := context.Background()
	db := svc.store.(*GormStore).db
	classroom := locationID(t, db, "HON 3025")

	created, err := svc.Create(ctx, "Logitech C920", "Camera", nil)
	require.NoError(t, err)

	moved, err := svc.Transfer(ctx, created.ID, classroom)
	require.NoError(t, err)
	assert.Equal(t, classroom, moved.LocationID)
	assert.Equal(t, "HON 3025", moved.LocationName)
	assert.Equal(t, domain.BuildingClassroom, moved.BuildingType)
	assert.True(t, moved.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, domain.EventEquipmentTransferred, pub.Events()[1].Type)

	// Same room again is allowed and bumps updatedAt.
	again, err := svc.Transfer(ctx, created.ID, classroom)
	require.NoError(t, err)
	assert.True(t, again.UpdatedAt.After(moved.UpdatedAt))
}

func TestTransferToMissingLocationLeavesRowUnchanged(t *testing.T) {
	svc, pub := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Dell 24", "Monitor", nil)
	require.NoError(t, err)

	_, err = svc.Transfer(ctx, created.ID, 9999)
	assert.ErrorIs(t, err, ErrLocationNotFound)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.LocationID, got.LocationID)
	assert.True(t, got.UpdatedAt.Equal(created.UpdatedAt))
	assert.Len(t, pub.Events(), 1)
}

func TestTransferMissingEquipment(t *testing.T) {
	svc, _ := newTestService(t)
	db := svc.store.(*GormStore).db

	_, err := svc.Transfer(context.Background(), 9999, locationID(t, db, "HON 3017"))
	assert.ErrorIs(t, err, ErrEquipmentNotFound)
}

func TestDeleteTwice(t *testing.T) {
	svc, pub := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Router", "Router", nil)
	require.NoError(t, err)
	before, _ := svc.ListAll(ctx)

	deleted, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	after, _ := svc.ListAll(ctx)
	assert.Len(t, after, len(before)-1)

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrEquipmentNotFound)

	var deletes int
	for _, e := range pub.Events() {
		if e.Type == domain.EventEquipmentDeleted {
			deletes++
			assert.Nil(t, e.Equipment)
		}
	}
	assert.Equal(t, 1, deletes)
}

func TestListAllIsSorted(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	db := svc.store.(*GormStore).db

	// Insert out of order on purpose.
	_, err := svc.Create(ctx, "Zebra Scanner", "Scanner", int64Ptr(locationID(t, db, "HON 2020")))
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Apple Pencil", "Accessory", int64Ptr(locationID(t, db, "HON 4020A")))
	require.NoError(t, err)

	items, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, items)

	less := func(a, b domain.EquipmentView) bool {
		if a.BuildingType != b.BuildingType {
			return a.BuildingType < b.BuildingType
		}
		if a.LocationName != b.LocationName {
			return a.LocationName < b.LocationName
		}
		if a.EquipmentType != b.EquipmentType {
			return a.EquipmentType < b.EquipmentType
		}
		return a.ID < b.ID
	}
	assert.True(t, sort.SliceIsSorted(items, func(i, j int) bool { return less(items[i], items[j]) }))
}

func TestListAllEmpty(t *testing.T) {
	svc := NewService(NewGormStore(setupTestDB(t)), nil)
	items, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
