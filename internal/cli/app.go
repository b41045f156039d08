package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"honorsinventory/internal/client"
)

// ErrUsage is returned for an unknown or missing subcommand.
var ErrUsage = errors.New("usage")

type command struct {
	name    string
	args    string
	summary string
	run     func(ctx context.Context, args []string) error
}

// App is the terminal dashboard. Reads go through the state store where the
// dashboard would use it, and every mutation goes through the store.
type App struct {
	api   *client.Client
	store *client.Store
	out   io.Writer
	err   io.Writer

	commands map[string]command
}

func New(api *client.Client, store *client.Store, out, errOut io.Writer) *App {
	a := &App{api: api, store: store, out: out, err: errOut}
	a.commands = map[string]command{}
	for _, c := range []command{
		{"list", "[-search TEXT] [-type TYPE] [-building TYPE]", "list equipment grouped by building type", a.list},
		{"show", "ID", "show one piece of equipment", a.show},
		{"add", "-model MODEL -type TYPE [-location ID]", "add equipment (defaults to the warehouse)", a.add},
		{"edit", "ID -model MODEL -type TYPE", "change model and type", a.edit},
		{"delete", "ID", "delete equipment", a.remove},
		{"transfer", "ID -to LOCATION_ID", "move equipment to a room", a.transfer},
		{"move", "ID -building TYPE [-room NAME]", "move equipment into another building type", a.move},
		{"locations", "", "list rooms", a.locations},
		{"types", "", "list suggested equipment types", a.types},
		{"report", "[-o FILE]", "download the xlsx summary report", a.report},
		{"watch", "", "stream inventory changes", a.watch},
	} {
		a.commands[c.name] = c
	}
	return a
}

// Run dispatches args[0] to its subcommand.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.Usage()
		return ErrUsage
	}
	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		a.Usage()
		return nil
	}

	cmd, ok := a.commands[name]
	if !ok {
		fmt.Fprintf(a.err, "unknown command %q\n\n", name)
		a.Usage()
		return ErrUsage
	}

	err := cmd.run(ctx, args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}

func (a *App) Usage() {
	names := make([]string, 0, len(a.commands))
	for n := range a.commands {
		names = append(names, n)
	}
	sort.Strings(names)

	fmt.Fprintln(a.err, "Usage: inventoryctl <command> [flags]")
	fmt.Fprintln(a.err)
	fmt.Fprintln(a.err, "Commands:")
	for _, n := range names {
		c := a.commands[n]
		fmt.Fprintf(a.err, "  %-10s %-48s %s\n", c.name, c.args, c.summary)
	}
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.err)
	return fs
}

// storeError reports the store's error message after a failed action.
func (a *App) storeError() error {
	msg := a.store.Snapshot().Error
	if msg == "" {
		msg = "request failed"
	}
	return errors.New(msg)
}

func (a *App) load(ctx context.Context) (client.State, error) {
	a.store.Load(ctx)
	st := a.store.Snapshot()
	if st.Error != "" {
		return st, errors.New(st.Error)
	}
	return st, nil
}

// splitLeadingID pulls a positional ID off the front so flags may follow it.
func splitLeadingID(args []string) (string, []string) {
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		return args[0], args[1:]
	}
	return "", args
}
