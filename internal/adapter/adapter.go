// Package adapter bridges the shopping list to a row-rendering widget.
//
// An Adapter keeps two lists: the full list loaded at startup, which never
// changes, and the displayed list, which is the result of the last published
// filter. Filtering is split in two halves so a caller can compute on a
// worker goroutine and apply on the goroutine that owns the widget:
//
//	req := a.Request(query)  // owner: issue a sequence number
//	res := a.Perform(req)    // any goroutine: scan the full list
//	a.Publish(res)           // owner: apply unless a newer request exists
//
// Filter does all three in one call.
package adapter

import (
	"sync"

	"github.com/idilsaglam/shoplist/internal/model"
)

// Observer is told when the displayed list has been replaced wholesale.
// Implementations re-read RowCount and BindRow; there is no partial diff.
type Observer interface {
	DataSetChanged()
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func()

func (f ObserverFunc) DataSetChanged() { f() }

// Row is the display text for one displayed item.
type Row struct {
	Name     string
	Quantity string
}

// Request identifies one filter invocation.
type Request struct {
	Seq   uint64
	Query string
}

// Result is the outcome of Perform, ready to be published.
type Result struct {
	Seq   uint64
	Query string
	Items []model.Item
}

// Adapter owns the full and displayed lists for one screen.
type Adapter struct {
	full []model.Item // immutable after New

	mu        sync.Mutex
	displayed []model.Item
	issued    uint64 // last sequence handed out by Request
	observer  Observer
}

// New copies items into the full list. The displayed list starts out
// equal to it.
func New(items []model.Item) *Adapter {
	full := make([]model.Item, len(items))
	copy(full, items)
	return &Adapter{
		full:      full,
		displayed: clone(full),
	}
}

// SetObserver registers the widget to notify after each publish.
// A nil observer disables notification.
func (a *Adapter) SetObserver(o Observer) {
	a.mu.Lock()
	a.observer = o
	a.mu.Unlock()
}

// RowCount returns the number of displayed items.
func (a *Adapter) RowCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.displayed)
}

// BindRow returns the display text for the displayed item at index.
// It panics when index is outside [0, RowCount()).
func (a *Adapter) BindRow(index int) Row {
	a.mu.Lock()
	defer a.mu.Unlock()
	it := a.displayed[index]
	return Row{Name: it.Name, Quantity: it.QuantityLabel()}
}

// Full returns a copy of the full list.
func (a *Adapter) Full() []model.Item { return clone(a.full) }

// Displayed returns a copy of the displayed list.
func (a *Adapter) Displayed() []model.Item {
	a.mu.Lock()
	defer a.mu.Unlock()
	return clone(a.displayed)
}

// Filter replaces the displayed list with the items matching query and
// notifies the observer. An empty query shows the full list.
func (a *Adapter) Filter(query string) {
	a.Publish(a.Perform(a.Request(query)))
}

// Request issues the next sequence number for query. Any result for an
// earlier request becomes stale.
func (a *Adapter) Request(query string) Request {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.issued++
	return Request{Seq: a.issued, Query: query}
}

// Perform computes the displayed list for req. It reads only the full list
// and is safe to call from any goroutine.
func (a *Adapter) Perform(req Request) Result {
	return Result{Seq: req.Seq, Query: req.Query, Items: Match(a.full, req.Query)}
}

// Publish applies res if it answers the most recent request and reports
// whether it did. Stale results are dropped without touching the displayed
// list or notifying the observer.
func (a *Adapter) Publish(res Result) bool {
	a.mu.Lock()
	if res.Seq != a.issued {
		a.mu.Unlock()
		return false
	}
	a.displayed = res.Items
	o := a.observer
	a.mu.Unlock()

	// outside the lock: observers call back into RowCount/BindRow
	if o != nil {
		o.DataSetChanged()
	}
	return true
}

func clone(items []model.Item) []model.Item {
	out := make([]model.Item, len(items))
	copy(out, items)
	return out
}
