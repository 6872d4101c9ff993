// Package tui is the interactive shopping-list screen.
//
// The screen forwards every change of the search box to the adapter.
// In async mode the scan runs inside a tea.Cmd and its result comes back to
// Update as a filteredMsg, so the displayed list is only ever replaced on
// the Bubble Tea event loop. Results for a query that has since been
// superseded are dropped.
package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/shoplist/internal/adapter"
	"github.com/idilsaglam/shoplist/internal/logging"
	"github.com/idilsaglam/shoplist/internal/model"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// panel border (2) + header (1) + search box (3) + help (1)
	chromeHeight = 7
	// panel border (2) + panel padding (2)
	chromeWidth = 4
)

// Options configure a Screen.
type Options struct {
	Sync   bool   // filter inside Update instead of a tea.Cmd
	Theme  string // classic, neon or mono
	Logger *slog.Logger
}

// filteredMsg carries a finished scan back to the event loop.
type filteredMsg struct {
	adapter.Result
}

// Screen is the Bubble Tea model for the shopping list.
type Screen struct {
	adapter *adapter.Adapter
	rows    *rowView
	input   textinput.Model
	help    help.Model
	keys    keyMap
	styles  *StyleConfig
	logger  *slog.Logger
	sync    bool

	query  string // last text handed to the adapter
	total  int
	width  int
	height int
}

// New builds the screen over items. The displayed list starts out as the
// full list.
func New(items []model.Item, opt Options) Screen {
	logger := opt.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	styles := ThemeStyles(opt.Theme)

	a := adapter.New(items)
	rows := newRowView(a, styles)
	a.SetObserver(rows)

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search items..."
	ti.CharLimit = 0
	ti.PromptStyle = styles.TitleStyle()
	ti.PlaceholderStyle = styles.MutedStyle()
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()

	h := help.New()
	h.Styles.ShortKey = styles.MutedStyle()
	h.Styles.ShortDesc = styles.MutedStyle()

	m := Screen{
		adapter: a,
		rows:    rows,
		input:   ti,
		help:    h,
		keys:    defaultKeyMap(),
		styles:  styles,
		logger:  logger,
		sync:    opt.Sync,
		total:   len(items),
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.resize()
	return m
}

func (m Screen) Init() tea.Cmd { return nil }

func (m Screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case filteredMsg:
		if !m.adapter.Publish(msg.Result) {
			m.logger.Debug("discarding stale filter result", "seq", msg.Seq, "query", msg.Query)
			return m, nil
		}
		m.logger.Debug("filter published", "seq", msg.Seq, "query", msg.Query, "rows", len(msg.Items))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Clear):
			if m.input.Value() == "" {
				return m, tea.Quit
			}
			m.input.SetValue("")
			return m, m.queryChanged()
		case key.Matches(msg, m.keys.Submit):
			// submitting does nothing; results are already live
			return m, nil
		case key.Matches(msg, m.keys.navigation()...):
			return m, m.rows.Update(msg)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, tea.Batch(cmd, m.queryChanged())
}

// queryChanged issues a filter when the search text differs from the last
// one sent. It must run on the event loop.
func (m *Screen) queryChanged() tea.Cmd {
	q := m.input.Value()
	if q == m.query {
		return nil
	}
	m.query = q

	req := m.adapter.Request(q)
	m.logger.Debug("filter requested", "seq", req.Seq, "query", q, "sync", m.sync)
	if m.sync {
		m.adapter.Publish(m.adapter.Perform(req))
		return nil
	}

	a := m.adapter
	return func() tea.Msg {
		return filteredMsg{a.Perform(req)}
	}
}

func (m *Screen) resize() {
	innerW := max(m.width-chromeWidth, 1)
	m.rows.SetSize(innerW, max(m.height-chromeHeight, 1))
	// search box border (2) + padding (2) + prompt
	m.input.Width = max(innerW-4-lipgloss.Width(m.input.Prompt), 1)
	m.help.Width = innerW
}

func (m Screen) View() string {
	count := m.adapter.RowCount()
	header := m.styles.TitleStyle().Render("Shopping List") + "  " +
		m.styles.MutedStyle().Render(fmt.Sprintf("showing %d of %d", count, m.total))

	body := m.rows.View()
	if count == 0 {
		body = m.styles.MutedStyle().Render("No matching items")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.styles.InputStyle().Render(m.input.View()),
		body,
		m.help.View(m.keys),
	)
	return m.styles.PanelStyle().Render(content)
}

// Query is the current search text.
func (m Screen) Query() string { return m.input.Value() }

// Displayed is the list the screen is currently showing.
func (m Screen) Displayed() []model.Item { return m.adapter.Displayed() }

// Run starts the screen on the terminal's alternate screen and blocks until
// the user quits.
func Run(items []model.Item, opt Options) error {
	p := tea.NewProgram(New(items, opt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
