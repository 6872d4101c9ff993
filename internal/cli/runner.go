package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/shoplist/internal/adapter"
	"github.com/idilsaglam/shoplist/internal/config"
	"github.com/idilsaglam/shoplist/internal/logging"
	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/store"
	"github.com/idilsaglam/shoplist/internal/store/jsonstore"
	"github.com/idilsaglam/shoplist/internal/tui"
	"github.com/idilsaglam/shoplist/internal/ui"
)

// usageError marks failures caused by bad arguments (exit code 2).
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// app carries what every subcommand needs.
type app struct {
	cfg     *config.Config
	stdout  io.Writer
	stderr  io.Writer
	logger  *slog.Logger
	cleanup func()

	// runScreen starts the interactive screen; tests swap it out.
	runScreen func(items []model.Item, opt tui.Options) error
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string) int {
	a := &app{
		cfg:       config.Load(),
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		runScreen: tui.Run,
	}
	return a.run(args)
}

func (a *app) run(args []string) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	root := a.newRootCmd()
	root.SetArgs(args)
	err := root.Execute()
	if a.cleanup != nil {
		a.cleanup()
	}
	if err == nil {
		return 0
	}

	ui.Fail(a.stderr, err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(a.stderr)
		fmt.Fprint(a.stderr, root.UsageString())
		return 2
	}
	return 1
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "shoplist",
		Short: "shoplist - a searchable shopping list",
		Long: `shoplist shows a shopping list you can search as you type.

With no subcommand it opens the interactive list. Type to filter by item
name (case-insensitive substring), arrows to move, esc to clear or quit.`,
		Example: `  shoplist
  shoplist ls
  shoplist ls cheese
  shoplist --items groceries.json ls --json oil`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError{fmt.Errorf("unknown subcommand: %s", args[0])}
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.doScreen()
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	f := root.PersistentFlags()
	f.StringVar(&a.cfg.ItemsFile, "items", a.cfg.ItemsFile, "JSON file with the startup list (default: built-in sample)")
	f.StringVar(&a.cfg.Theme, "theme", a.cfg.Theme, "color theme: "+strings.Join(ui.Themes, ", "))
	f.BoolVar(&a.cfg.NoColor, "no-color", a.cfg.NoColor, "disable colors")
	f.BoolVar(&a.cfg.Sync, "sync", a.cfg.Sync, "filter on the UI loop instead of in the background")
	f.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn, error")
	f.StringVar(&a.cfg.LogFile, "log-file", a.cfg.LogFile, "write JSON logs to this file")

	root.AddCommand(a.newListCmd())
	return root
}

func (a *app) newListCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "ls [query...]",
		Short: "Print the items whose name contains query",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.doList(strings.Join(args, " "), asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print matching items as JSON")
	return cmd
}

func (a *app) setup() error {
	if !ui.Known(a.cfg.Theme) {
		return usageError{fmt.Errorf("unknown theme %q (want one of %s)", a.cfg.Theme, strings.Join(ui.Themes, ", "))}
	}
	ui.SetTheme(a.cfg.Theme)
	ui.SetColorForcing(false, a.cfg.NoColor)

	logger, cleanup, err := logging.New(a.cfg.LogLevel, a.cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	a.logger, a.cleanup = logger, cleanup
	return nil
}

func (a *app) loadItems() ([]model.Item, error) {
	items, err := store.Open(a.cfg.ItemsFile)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	a.logger.Info("loaded items", "count", len(items), "file", a.cfg.ItemsFile)
	return items, nil
}

// -------------- subcommand impls ----------------

func (a *app) doScreen() error {
	items, err := a.loadItems()
	if err != nil {
		return err
	}
	theme := a.cfg.Theme
	if a.cfg.NoColor {
		theme = "mono"
	}
	if err := a.runScreen(items, tui.Options{
		Sync:   a.cfg.Sync,
		Theme:  theme,
		Logger: a.logger,
	}); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (a *app) doList(query string, asJSON bool) error {
	items, err := a.loadItems()
	if err != nil {
		return err
	}

	ad := adapter.New(items)
	ad.Filter(query)
	a.logger.Info("listed items", "query", query, "rows", ad.RowCount())

	if asJSON {
		b, err := jsonstore.Encode(ad.Displayed())
		if err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, string(b))
		return nil
	}

	ui.Panel(a.stdout, listLines(ad, len(items), query))
	return nil
}

// -------------- rendering helpers --------------

func listLines(ad *adapter.Adapter, total int, query string) []string {
	t := ui.Current()
	n := ad.RowCount()

	header := fmt.Sprintf("%s  %s",
		ui.C(t.Title, "Shopping List"),
		ui.C(t.Muted, fmt.Sprintf("%d of %d", n, total)),
	)
	lines := []string{header}
	if strings.TrimSpace(query) != "" {
		lines = append(lines, ui.C(t.Muted, "search: "+strings.TrimSpace(query)))
	}
	lines = append(lines, "")

	if n == 0 {
		return append(lines, ui.C(t.Muted, "no matching items"))
	}

	rows := make([]adapter.Row, n)
	nameWidth := 0
	for i := range rows {
		rows[i] = ad.BindRow(i)
		nameWidth = max(nameWidth, runewidth.StringWidth(rows[i].Name))
	}
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%s %s  %s",
			ui.C(t.Accent, t.Bullet),
			tui.PadRight(r.Name, nameWidth),
			ui.Quantity(r.Quantity),
		))
	}
	return lines
}
