package domain

import "time"

const (
	EquipmentModelMaxLen = 100
	EquipmentTypeMaxLen  = 50
)

type Equipment struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	Model         string    `json:"model" gorm:"size:100;not null"`
	EquipmentType string    `json:"equipmentType" gorm:"size:50;not null"`
	LocationID    int64     `json:"locationId" gorm:"not null;index"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	Location *Location `json:"-" gorm:"foreignKey:LocationID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Equipment) TableName() string {
	return "equipment"
}

// EquipmentView is the read shape served to clients: an equipment row joined
// with its location's display fields. It is never stored.
type EquipmentView struct {
	ID            int64     `json:"id"`
	Model         string    `json:"model"`
	EquipmentType string    `json:"equipmentType"`
	LocationID    int64     `json:"locationId"`
	LocationName  string    `json:"locationName"`
	BuildingType  string    `json:"buildingType"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// EquipmentTypeSuggestions is the list offered by add/edit forms. The store
// accepts any type string.
var EquipmentTypeSuggestions = []string{
	"Laptop",
	"Monitor",
	"Printer",
	"Keyboard",
	"Mouse",
	"Desktop",
	"Tablet",
	"Projector",
	"Camera",
	"Speakers",
	"Headset",
	"Router",
	"Switch",
	"Cable",
	"Other",
}
