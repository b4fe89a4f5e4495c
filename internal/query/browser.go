package query

import (
	"sync"
	"time"

	"github.com/Jamess-Lucass/ecommerce-shop-ui/internal/debounce"
)

// SearchDebounce is how long search input must settle before a changed term
// is committed to the query.
const SearchDebounce = 500 * time.Millisecond

// Browser owns the catalog browse state. The query it holds is the single
// source of truth for what is fetched: filters and page changes commit
// immediately, while search terms are debounced so rapid keystrokes collapse
// into one outgoing query (last value wins, intermediate values are never
// committed).
type Browser struct {
	mu       sync.Mutex
	q        Query
	search   *debounce.Debouncer
	onCommit func(Query)
}

// NewBrowser returns a browser positioned at the first page. onCommit, if
// non-nil, is invoked with a snapshot of the query after every committed
// change.
func NewBrowser(onCommit func(Query)) *Browser {
	return &Browser{
		q:        New(),
		search:   debounce.New(SearchDebounce),
		onCommit: onCommit,
	}
}

// Query returns a snapshot of the current query.
func (b *Browser) Query() Query {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.q
}

// SetSearch records a search term to be committed once input has settled.
// Changing the search resets the position to the first page.
func (b *Browser) SetSearch(term string) {
	b.search.Do(func() {
		b.mu.Lock()
		b.q.SetSearch(term)
		b.q.SetPage(1)
		b.mu.Unlock()
		b.committed()
	})
}

// SetFilters commits field filters immediately and resets to the first page.
func (b *Browser) SetFilters(fields map[string]string) {
	b.mu.Lock()
	b.q.SetFilters(fields)
	b.q.SetPage(1)
	b.mu.Unlock()
	b.committed()
}

// SetPage commits a move to the given 1-based page.
func (b *Browser) SetPage(page int) {
	b.mu.Lock()
	b.q.SetPage(page)
	b.mu.Unlock()
	b.committed()
}

// Close cancels any pending search commit.
func (b *Browser) Close() {
	b.search.Stop()
}

func (b *Browser) committed() {
	if b.onCommit == nil {
		return
	}
	b.onCommit(b.Query())
}
