package adapter

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/shoplist/internal/model"
)

func threeItems() []model.Item {
	return []model.Item{
		{Name: "Noodles", Quantity: "1"},
		{Name: "Cheese", Quantity: "1"},
		{Name: "Pepper", Quantity: "2"},
	}
}

type countingObserver struct {
	calls int
}

func (o *countingObserver) DataSetChanged() { o.calls++ }

func TestNewShowsFullList(t *testing.T) {
	a := New(threeItems())
	assert.Equal(t, 3, a.RowCount())
	assert.Equal(t, threeItems(), a.Displayed())
	assert.Equal(t, threeItems(), a.Full())
}

func TestNewCopiesInput(t *testing.T) {
	items := threeItems()
	a := New(items)
	items[0].Name = "Changed"

	assert.Equal(t, "Noodles", a.Full()[0].Name)
	assert.Equal(t, "Noodles", a.BindRow(0).Name)
}

func TestFilterSubstring(t *testing.T) {
	a := New(threeItems())

	a.Filter("oo")
	assert.Equal(t, []model.Item{{Name: "Noodles", Quantity: "1"}}, a.Displayed())

	a.Filter("e")
	assert.Equal(t, threeItems(), a.Displayed())

	a.Filter("xyz")
	assert.Empty(t, a.Displayed())
	assert.Equal(t, 0, a.RowCount())
}

func TestFilterEmptyRestoresFullList(t *testing.T) {
	a := New(threeItems())
	a.Filter("cheese")
	require.Equal(t, 1, a.RowCount())

	a.Filter("")
	assert.Equal(t, threeItems(), a.Displayed())
}

func TestFilterCaseAndWhitespace(t *testing.T) {
	a := New(threeItems())
	a.Filter("cheese")
	want := a.Displayed()

	for _, q := range []string{"CHEESE", "Cheese", "  cheese  ", "\tChEeSe\n"} {
		a.Filter(q)
		assert.Equal(t, want, a.Displayed(), "query %q", q)
	}
}

func TestFilterWhitespaceOnlyMatchesAll(t *testing.T) {
	a := New(threeItems())
	a.Filter("   ")
	assert.Equal(t, threeItems(), a.Displayed())
}

func TestFilterKeepsDuplicates(t *testing.T) {
	items := []model.Item{
		{Name: "Milk", Quantity: "1"},
		{Name: "Bread", Quantity: "1"},
		{Name: "Milk", Quantity: "1"},
	}
	a := New(items)
	a.Filter("milk")
	assert.Equal(t, []model.Item{items[0], items[2]}, a.Displayed())
}

func TestBindRow(t *testing.T) {
	a := New(threeItems())
	a.Filter("pep")

	require.Equal(t, 1, a.RowCount())
	assert.Equal(t, Row{Name: "Pepper", Quantity: "Quantity: 2"}, a.BindRow(0))
}

func TestBindRowOutOfRangePanics(t *testing.T) {
	a := New(threeItems())
	a.Filter("xyz")

	assert.Panics(t, func() { a.BindRow(0) })
	assert.Panics(t, func() { a.BindRow(-1) })

	// the adapter stays usable after a recovered panic
	done := make(chan int, 1)
	go func() {
		a.Filter("")
		done <- a.RowCount()
	}()
	select {
	case n := <-done:
		assert.Equal(t, 3, n)
		assert.Equal(t, Row{Name: "Noodles", Quantity: "Quantity: 1"}, a.BindRow(0))
	case <-time.After(time.Second):
		t.Fatal("adapter locked after out-of-range BindRow")
	}
}

func TestFilterNotifiesObserver(t *testing.T) {
	a := New(threeItems())
	obs := &countingObserver{}
	a.SetObserver(obs)

	a.Filter("e")
	a.Filter("e")
	a.Filter("")
	assert.Equal(t, 3, obs.calls)
}

func TestObserverCanReadBack(t *testing.T) {
	a := New(threeItems())
	var got []string
	a.SetObserver(ObserverFunc(func() {
		got = got[:0]
		for i := 0; i < a.RowCount(); i++ {
			got = append(got, a.BindRow(i).Name)
		}
	}))

	a.Filter("c")
	assert.Equal(t, []string{"Cheese"}, got)
}

func TestPublishDiscardsStaleResult(t *testing.T) {
	a := New(threeItems())
	obs := &countingObserver{}
	a.SetObserver(obs)

	older := a.Request("oo")
	newer := a.Request("pep")

	// the newer query finishes first
	assert.True(t, a.Publish(a.Perform(newer)))
	assert.False(t, a.Publish(a.Perform(older)))

	assert.Equal(t, []model.Item{{Name: "Pepper", Quantity: "2"}}, a.Displayed())
	assert.Equal(t, 1, obs.calls)
}

func TestPublishLatestAfterOverlap(t *testing.T) {
	a := New(threeItems())

	first := a.Perform(a.Request("c"))
	second := a.Perform(a.Request("n"))
	third := a.Request("oo")

	assert.False(t, a.Publish(first))
	assert.False(t, a.Publish(second))
	assert.True(t, a.Publish(a.Perform(third)))
	assert.Equal(t, []model.Item{{Name: "Noodles", Quantity: "1"}}, a.Displayed())
}

func TestPerformConcurrent(t *testing.T) {
	a := New(threeItems())
	req := a.Request("e")

	var wg sync.WaitGroup
	results := make([]Result, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = a.Perform(req)
		}(i)
	}
	wg.Wait()

	for _, res := range results {
		assert.Equal(t, threeItems(), res.Items)
	}
	assert.True(t, a.Publish(results[0]))
}

func TestMatchDoesNotAlias(t *testing.T) {
	items := threeItems()
	out := Match(items, "")
	out[0].Name = "x"
	assert.Equal(t, "Noodles", items[0].Name)
}

func TestMatchLocaleNaive(t *testing.T) {
	items := []model.Item{{Name: "Äpfel", Quantity: "3"}, {Name: "Straße", Quantity: "1"}}
	assert.Equal(t, items[:1], Match(items, "äPF"))
	assert.Empty(t, Match(items, "strasse"))
}
