package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"honorsinventory/internal/client"
	"honorsinventory/internal/domain"
)

const timeLayout = "2006-01-02 15:04"

func writeGroups(w io.Writer, groups []client.Group) {
	for _, g := range groups {
		fmt.Fprintf(w, "\n%s (%d)\n", g.BuildingType, len(g.Items))
		if len(g.Items) == 0 {
			fmt.Fprintln(w, "  no equipment")
			continue
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "  ID\tMODEL\tTYPE\tROOM\tUPDATED")
		for _, it := range g.Items {
			fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\t%s\n",
				it.ID, it.Model, it.EquipmentType, it.LocationName, it.UpdatedAt.Local().Format(timeLayout))
		}
		tw.Flush()
	}
}

func writeItem(w io.Writer, it domain.EquipmentView) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\t%d\n", it.ID)
	fmt.Fprintf(tw, "Model\t%s\n", it.Model)
	fmt.Fprintf(tw, "Type\t%s\n", it.EquipmentType)
	fmt.Fprintf(tw, "Room\t%s (#%d)\n", it.LocationName, it.LocationID)
	fmt.Fprintf(tw, "Building\t%s\n", it.BuildingType)
	fmt.Fprintf(tw, "Created\t%s\n", it.CreatedAt.Local().Format(timeLayout))
	fmt.Fprintf(tw, "Updated\t%s\n", it.UpdatedAt.Local().Format(timeLayout))
	tw.Flush()
}

func writeLocations(w io.Writer, locations []domain.Location) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tROOM\tBUILDING")
	for _, l := range locations {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", l.ID, l.RoomName, l.BuildingType)
	}
	tw.Flush()
}

func writeEvent(w io.Writer, ev domain.Event, total int) {
	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}
	line := fmt.Sprintf("[%s] %s #%d", at.Local().Format("15:04:05"), ev.Type, ev.EquipmentID)
	if ev.Equipment != nil {
		line += fmt.Sprintf(" %s @ %s", ev.Equipment.Model, ev.Equipment.LocationName)
	}
	fmt.Fprintf(w, "%s (%d items)\n", line, total)
}
