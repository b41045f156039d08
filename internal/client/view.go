package client

import (
	"sort"
	"strings"

	"honorsinventory/internal/domain"
)

const filterAll = "all"

// Filter narrows the equipment list. Empty or "all" fields match anything.
type Filter struct {
	Search        string
	EquipmentType string
	BuildingType  string
}

// FilterEquipment keeps items whose model, type or room contains Search
// (case-insensitive) and whose type and building equal the selected ones.
func FilterEquipment(items []domain.EquipmentView, f Filter) []domain.EquipmentView {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]domain.EquipmentView, 0, len(items))
	for _, it := range items {
		if term != "" &&
			!strings.Contains(strings.ToLower(it.Model), term) &&
			!strings.Contains(strings.ToLower(it.EquipmentType), term) &&
			!strings.Contains(strings.ToLower(it.LocationName), term) {
			continue
		}
		if !matchesSelect(f.EquipmentType, it.EquipmentType) || !matchesSelect(f.BuildingType, it.BuildingType) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchesSelect(selected, value string) bool {
	return selected == "" || selected == filterAll || selected == value
}

// EquipmentTypes lists the distinct types present, sorted.
func EquipmentTypes(items []domain.EquipmentView) []string {
	seen := map[string]bool{}
	var out []string
	for _, it := range items {
		if !seen[it.EquipmentType] {
			seen[it.EquipmentType] = true
			out = append(out, it.EquipmentType)
		}
	}
	sort.Strings(out)
	return out
}

type Group struct {
	BuildingType string
	Items        []domain.EquipmentView
}

// GroupByBuildingType always returns the Warehouse, Office and Classroom
// sections, even when empty, followed by any other building type present in
// items in alphabetical order. Item order within a group is preserved.
func GroupByBuildingType(items []domain.EquipmentView) []Group {
	types := []string{domain.BuildingWarehouse, domain.BuildingOffice, domain.BuildingClassroom}
	byType := map[string][]domain.EquipmentView{}
	for _, it := range items {
		if _, ok := byType[it.BuildingType]; !ok {
			types = append(types, it.BuildingType)
		}
		byType[it.BuildingType] = append(byType[it.BuildingType], it)
	}

	ordered := domain.OrderBuildingTypes(types)
	groups := make([]Group, 0, len(ordered))
	for _, t := range ordered {
		groups = append(groups, Group{BuildingType: t, Items: byType[t]})
	}
	return groups
}

// PlanDrop reports whether dropping item onto the targetBuildingType section
// should open the transfer chooser. Dropping into its own section does nothing.
func PlanDrop(item domain.EquipmentView, targetBuildingType string) bool {
	return targetBuildingType != "" && item.BuildingType != targetBuildingType
}

// TransferCandidates lists the rooms of buildingType that item could move to.
// An empty buildingType means any building. The current room is excluded.
func TransferCandidates(locations []domain.Location, item domain.EquipmentView, buildingType string) []domain.Location {
	out := make([]domain.Location, 0, len(locations))
	for _, l := range locations {
		if l.ID == item.LocationID {
			continue
		}
		if buildingType != "" && l.BuildingType != buildingType {
			continue
		}
		out = append(out, l)
	}
	return out
}
