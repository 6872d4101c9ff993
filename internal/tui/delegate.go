package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// rowIndent is the cursor/prefix column in front of every row.
const rowIndent = 2

// rowDelegate renders a row as two lines: the name, then "Quantity: n".
type rowDelegate struct {
	styles *StyleConfig
}

func (d rowDelegate) Height() int                               { return 2 }
func (d rowDelegate) Spacing() int                              { return 1 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(rowItem)
	if !ok {
		return
	}

	width := m.Width() - rowIndent
	name := Truncate(it.Name, width)
	qty := Truncate(it.Quantity, width)

	prefix := "  "
	nameStyle := d.styles.NameStyle()
	if index == m.Index() {
		prefix = d.styles.SelectedStyle().Render("> ")
		nameStyle = d.styles.SelectedStyle()
	}

	fmt.Fprintf(w, "%s%s\n  %s", prefix, nameStyle.Render(name), d.styles.QuantityStyle().Render(qty))
}
