package inventory

import (
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"honorsinventory/internal/domain"
)

const (
	inventorySheet = "Inventory"
	summarySheet   = "Summary"
	xlsxMIME       = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var inventoryHeaders = []interface{}{
	"ID", "Model", "Equipment type", "Room", "Building type", "Created (UTC)", "Updated (UTC)",
}

type Count struct {
	Label string
	Count int
}

// Summary is the count breakdown shown on the summary sheet.
type Summary struct {
	Total           int
	ByBuildingType  []Count
	ByEquipmentType []Count
	ByLocation      []Count
}

// Summarize counts items per building type (display order), per equipment type
// and per room (alphabetical).
func Summarize(items []domain.EquipmentView) Summary {
	byBuilding := map[string]int{}
	byType := map[string]int{}
	byRoom := map[string]int{}
	var buildings []string
	for _, it := range items {
		if byBuilding[it.BuildingType] == 0 {
			buildings = append(buildings, it.BuildingType)
		}
		byBuilding[it.BuildingType]++
		byType[it.EquipmentType]++
		byRoom[it.LocationName]++
	}

	s := Summary{Total: len(items)}
	for _, b := range domain.OrderBuildingTypes(buildings) {
		s.ByBuildingType = append(s.ByBuildingType, Count{Label: b, Count: byBuilding[b]})
	}
	s.ByEquipmentType = sortedCounts(byType)
	s.ByLocation = sortedCounts(byRoom)
	return s
}

func sortedCounts(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for k, v := range m {
		out = append(out, Count{Label: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// BuildReport renders the inventory and its summary into a workbook.
func BuildReport(items []domain.EquipmentView, generatedAt time.Time) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", inventorySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(inventorySheet, "A1", &inventoryHeaders); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(inventorySheet, "A1", "G1", bold); err != nil {
		return nil, err
	}
	for i, it := range items {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			it.ID, it.Model, it.EquipmentType, it.LocationName, it.BuildingType,
			it.CreatedAt.UTC().Format(time.DateTime), it.UpdatedAt.UTC().Format(time.DateTime),
		}
		if err := f.SetSheetRow(inventorySheet, cell, &row); err != nil {
			return nil, err
		}
	}
	_ = f.SetColWidth(inventorySheet, "B", "B", 30)
	_ = f.SetColWidth(inventorySheet, "C", "E", 18)
	_ = f.SetColWidth(inventorySheet, "F", "G", 20)

	if err := writeSummary(f, Summarize(items), generatedAt, bold); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(summarySheet, "A", "A", 24)
	return f, nil
}

func writeSummary(f *excelize.File, s Summary, generatedAt time.Time, bold int) error {
	row := 1
	put := func(values ...interface{}) error {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		row++
		return f.SetSheetRow(summarySheet, cell, &values)
	}
	section := func(title string, counts []Count) error {
		row++
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := put(title, "Count"); err != nil {
			return err
		}
		end, _ := excelize.CoordinatesToCellName(2, row-1)
		if err := f.SetCellStyle(summarySheet, cell, end, bold); err != nil {
			return err
		}
		for _, c := range counts {
			if err := put(c.Label, c.Count); err != nil {
				return err
			}
		}
		return nil
	}

	if err := put("Generated (UTC)", generatedAt.UTC().Format(time.DateTime)); err != nil {
		return err
	}
	if err := put("Total equipment", s.Total); err != nil {
		return err
	}
	if err := section("Building type", s.ByBuildingType); err != nil {
		return err
	}
	if err := section("Equipment type", s.ByEquipmentType); err != nil {
		return err
	}
	return section("Room", s.ByLocation)
}

func reportFileName(at time.Time) string {
	return fmt.Sprintf("equipment_%s.xlsx", at.UTC().Format("2006-01-02"))
}
