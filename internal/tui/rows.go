package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/shoplist/internal/adapter"
)

// rowSource is the part of the adapter the list widget reads from.
type rowSource interface {
	RowCount() int
	BindRow(index int) adapter.Row
}

// rowView owns the list widget and refills it whenever the adapter reports
// that the displayed list was replaced.
type rowView struct {
	list   list.Model
	source rowSource
}

func newRowView(source rowSource, styles *StyleConfig) *rowView {
	l := list.New(nil, rowDelegate{styles: styles}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.DisableQuitKeybindings()
	l.Styles.PaginationStyle = styles.MutedStyle()

	v := &rowView{list: l, source: source}
	v.DataSetChanged()
	return v
}

// DataSetChanged implements adapter.Observer. Every visible row is re-bound
// and the cursor goes back to the top.
func (v *rowView) DataSetChanged() {
	n := v.source.RowCount()
	items := make([]list.Item, n)
	for i := 0; i < n; i++ {
		items[i] = rowItem(v.source.BindRow(i))
	}
	v.list.SetItems(items)
	v.list.ResetSelected()
}

func (v *rowView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return cmd
}

func (v *rowView) SetSize(width, height int) { v.list.SetSize(width, height) }

func (v *rowView) View() string { return v.list.View() }

// Len is the number of rows currently in the widget.
func (v *rowView) Len() int { return len(v.list.Items()) }
