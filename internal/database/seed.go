package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"honorsinventory/internal/domain"
)

var seedLocations = []domain.Location{
	{RoomName: "HON Warehouse", BuildingType: domain.BuildingWarehouse},
	{RoomName: "HON 3017", BuildingType: domain.BuildingClassroom},
	{RoomName: "HON 4015B", BuildingType: domain.BuildingOffice},
	{RoomName: "HON 2020", BuildingType: domain.BuildingClassroom},
	{RoomName: "HON 4020A", BuildingType: domain.BuildingOffice},
	{RoomName: "HON 3025", BuildingType: domain.BuildingClassroom},
}

type seedItem struct {
	model, equipmentType, room string
}

var seedEquipment = []seedItem{
	{`Dell UltraSharp 27"`, "Monitor", "HON Warehouse"},
	{`Dell UltraSharp 24"`, "Monitor", "HON Warehouse"},
	{"Lenovo ThinkPad T14", "Laptop", "HON Warehouse"},
	{"Canon ImageRunner", "Printer", "HON Warehouse"},
	{"Logitech MX Master", "Mouse", "HON Warehouse"},
	{"Corsair K95", "Keyboard", "HON Warehouse"},

	{"HP LaserJet Pro", "Printer", "HON 3017"},
	{`Dell UltraSharp 24"`, "Monitor", "HON 3017"},
	{"Logitech Wireless", "Mouse", "HON 3017"},

	{"Dell Elite8", "Laptop", "HON 4015B"},
	{"HP EliteDisplay", "Monitor", "HON 4015B"},
	{"Microsoft Ergonomic", "Keyboard", "HON 4015B"},
}

// Seed inserts the department rooms and a starter inventory. It does nothing
// when any location already exists, so it is safe to run on every start.
// It reports whether rows were inserted.
func Seed(ctx context.Context, db *gorm.DB) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.Location{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count locations: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locations := make([]domain.Location, len(seedLocations))
		copy(locations, seedLocations)
		if err := tx.Create(&locations).Error; err != nil {
			return fmt.Errorf("insert locations: %w", err)
		}

		byRoom := make(map[string]int64, len(locations))
		for _, l := range locations {
			byRoom[l.RoomName] = l.ID
		}

		now := time.Now().UTC()
		equipment := make([]domain.Equipment, 0, len(seedEquipment))
		for _, it := range seedEquipment {
			equipment = append(equipment, domain.Equipment{
				Model:         it.model,
				EquipmentType: it.equipmentType,
				LocationID:    byRoom[it.room],
				CreatedAt:     now,
				UpdatedAt:     now,
			})
		}
		if err := tx.Create(&equipment).Error; err != nil {
			return fmt.Errorf("insert equipment: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Reset removes every equipment and location row.
func Reset(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM equipment").Error; err != nil {
			return err
		}
		return tx.Exec("DELETE FROM locations").Error
	})
}
