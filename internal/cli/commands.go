package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"honorsinventory/internal/client"
	"honorsinventory/internal/domain"
)

func (a *App) list(ctx context.Context, args []string) error {
	fs := a.flagSet("list")
	search := fs.String("search", "", "substring of model, type or room")
	eqType := fs.String("type", "all", "equipment type")
	building := fs.String("building", "all", "building type")
	if err := fs.Parse(args); err != nil {
		return err
	}

	st, err := a.load(ctx)
	if err != nil {
		return err
	}

	filtered := client.FilterEquipment(st.Equipment, client.Filter{
		Search:        *search,
		EquipmentType: *eqType,
		BuildingType:  *building,
	})
	fmt.Fprintf(a.out, "Showing %d of %d items\n", len(filtered), len(st.Equipment))
	writeGroups(a.out, client.GroupByBuildingType(filtered))
	return nil
}

func (a *App) show(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	item, err := a.api.GetEquipment(ctx, id)
	if client.IsNotFound(err) {
		return fmt.Errorf("equipment %d not found", id)
	}
	if err != nil {
		return err
	}
	writeItem(a.out, *item)
	return nil
}

func (a *App) add(ctx context.Context, args []string) error {
	fs := a.flagSet("add")
	model := fs.String("model", "", "model name (required)")
	eqType := fs.String("type", "", "equipment type (required)")
	location := fs.Int64("location", 0, "location id; defaults to the warehouse")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*model) == "" || strings.TrimSpace(*eqType) == "" {
		return errors.New("add: -model and -type are required")
	}

	req := domain.CreateEquipmentRequest{Model: *model, EquipmentType: *eqType}
	if *location > 0 {
		req.LocationID = location
	}

	if _, err := a.load(ctx); err != nil {
		return err
	}
	if !a.store.Create(ctx, req) {
		return a.storeError()
	}

	items := a.store.Snapshot().Equipment
	created := items[len(items)-1]
	fmt.Fprintf(a.out, "Added equipment %d to %s\n", created.ID, created.LocationName)
	writeItem(a.out, created)
	return nil
}

func (a *App) edit(ctx context.Context, args []string) error {
	rawID, rest := splitLeadingID(args)
	fs := a.flagSet("edit")
	model := fs.String("model", "", "model name (required)")
	eqType := fs.String("type", "", "equipment type (required)")
	if err := fs.Parse(rest); err != nil {
		return err
	}
	id, err := parseID(positional(rawID, fs.Args()))
	if err != nil {
		return err
	}
	if strings.TrimSpace(*model) == "" || strings.TrimSpace(*eqType) == "" {
		return errors.New("edit: -model and -type are required")
	}

	if _, err := a.load(ctx); err != nil {
		return err
	}
	if !a.store.Update(ctx, id, domain.UpdateEquipmentRequest{Model: *model, EquipmentType: *eqType}) {
		return a.storeError()
	}

	if item, ok := findItem(a.store.Snapshot().Equipment, id); ok {
		writeItem(a.out, item)
	}
	return nil
}

func (a *App) remove(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	if _, err := a.load(ctx); err != nil {
		return err
	}
	if !a.store.Delete(ctx, id) {
		return a.storeError()
	}
	fmt.Fprintf(a.out, "Deleted equipment %d (%d items remain)\n", id, len(a.store.Snapshot().Equipment))
	return nil
}

func (a *App) transfer(ctx context.Context, args []string) error {
	rawID, rest := splitLeadingID(args)
	fs := a.flagSet("transfer")
	to := fs.Int64("to", 0, "target location id (required)")
	if err := fs.Parse(rest); err != nil {
		return err
	}
	id, err := parseID(positional(rawID, fs.Args()))
	if err != nil {
		return err
	}
	if *to <= 0 {
		return errors.New("transfer: -to LOCATION_ID is required")
	}

	if _, err := a.load(ctx); err != nil {
		return err
	}
	return a.doTransfer(ctx, id, *to)
}

// move is the keyboard version of dragging an item onto another building
// section: it lists the candidate rooms and only transfers once -room picks
// one.
func (a *App) move(ctx context.Context, args []string) error {
	rawID, rest := splitLeadingID(args)
	fs := a.flagSet("move")
	building := fs.String("building", "", "target building type (required)")
	room := fs.String("room", "", "target room name")
	if err := fs.Parse(rest); err != nil {
		return err
	}
	id, err := parseID(positional(rawID, fs.Args()))
	if err != nil {
		return err
	}
	if *building == "" {
		return errors.New("move: -building is required")
	}

	st, err := a.load(ctx)
	if err != nil {
		return err
	}
	item, ok := findItem(st.Equipment, id)
	if !ok {
		return fmt.Errorf("equipment %d not found", id)
	}
	if !client.PlanDrop(item, *building) {
		fmt.Fprintf(a.out, "Equipment %d is already in a %s location; nothing to do\n", id, item.BuildingType)
		return nil
	}

	candidates := client.TransferCandidates(st.Locations, item, *building)
	if len(candidates) == 0 {
		return fmt.Errorf("no %s locations to move equipment %d to", *building, id)
	}

	if *room == "" {
		fmt.Fprintf(a.out, "Move %q from %s to which %s room? Re-run with -room NAME.\n", item.Model, item.LocationName, *building)
		writeLocations(a.out, candidates)
		return nil
	}

	for _, l := range candidates {
		if strings.EqualFold(l.RoomName, *room) {
			return a.doTransfer(ctx, id, l.ID)
		}
	}
	return fmt.Errorf("%q is not a %s room equipment %d can move to", *room, *building, id)
}

func (a *App) doTransfer(ctx context.Context, id, locationID int64) error {
	if !a.store.Transfer(ctx, id, locationID) {
		return a.storeError()
	}
	if item, ok := findItem(a.store.Snapshot().Equipment, id); ok {
		fmt.Fprintf(a.out, "Transferred equipment %d to %s\n", id, item.LocationName)
	}
	return nil
}

func (a *App) locations(ctx context.Context, args []string) error {
	if err := a.flagSet("locations").Parse(args); err != nil {
		return err
	}
	locations, err := a.api.ListLocations(ctx)
	if err != nil {
		return err
	}
	writeLocations(a.out, locations)
	return nil
}

func (a *App) types(ctx context.Context, args []string) error {
	if err := a.flagSet("types").Parse(args); err != nil {
		return err
	}
	types, err := a.api.ListEquipmentTypes(ctx)
	if err != nil {
		return err
	}
	for _, t := range types {
		fmt.Fprintln(a.out, t)
	}
	return nil
}

func (a *App) report(ctx context.Context, args []string) error {
	fs := a.flagSet("report")
	path := fs.String("o", "equipment.xlsx", "output file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := os.Create(*path)
	if err != nil {
		return err
	}
	if err := a.api.DownloadReport(ctx, f); err != nil {
		f.Close()
		_ = os.Remove(*path)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Wrote %s\n", *path)
	return nil
}

// watch prints each change as it arrives until ctx is cancelled.
func (a *App) watch(ctx context.Context, args []string) error {
	if err := a.flagSet("watch").Parse(args); err != nil {
		return err
	}
	st, err := a.load(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Watching %d items, Ctrl-C to stop\n", len(st.Equipment))

	err = a.api.Subscribe(ctx, func(ev domain.Event) {
		a.store.Apply(ev)
		writeEvent(a.out, ev, len(a.store.Snapshot().Equipment))
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 || args[0] == "" {
		return 0, errors.New("expected exactly one equipment ID")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid equipment ID %q", args[0])
	}
	return id, nil
}

func positional(leading string, rest []string) []string {
	if leading == "" {
		return rest
	}
	return append([]string{leading}, rest...)
}

func findItem(items []domain.EquipmentView, id int64) (domain.EquipmentView, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return domain.EquipmentView{}, false
}
