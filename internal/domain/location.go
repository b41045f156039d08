package domain

import "sort"

const (
	BuildingWarehouse = "Warehouse"
	BuildingOffice    = "Office"
	BuildingClassroom = "Classroom"

	RoomNameMaxLen     = 100
	BuildingTypeMaxLen = 20
)

// Location is a room. BuildingType is free text; the three constants above are
// the values the department uses today.
type Location struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	RoomName     string `json:"roomName" gorm:"size:100;not null;uniqueIndex"`
	BuildingType string `json:"buildingType" gorm:"size:20;not null"`
}

func (Location) TableName() string {
	return "locations"
}

var knownBuildingOrder = map[string]int{
	BuildingWarehouse: 0,
	BuildingOffice:    1,
	BuildingClassroom: 2,
}

// OrderBuildingTypes sorts building types for display: Warehouse, Office and
// Classroom first, any other value after them alphabetically. Duplicates are
// dropped.
func OrderBuildingTypes(types []string) []string {
	seen := make(map[string]bool, len(types))
	out := make([]string, 0, len(types))
	for _, t := range types {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, iKnown := knownBuildingOrder[out[i]]
		rj, jKnown := knownBuildingOrder[out[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown != jKnown:
			return iKnown
		default:
			return out[i] < out[j]
		}
	})
	return out
}
