package listing

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"pokedex-service/internal/domain/pokemon"
	"pokedex-service/internal/logging"
)

// State is the phase of a List.
type State string

const (
	StateIdle             State = "idle"
	StateLoadingFirstPage State = "loading_first_page"
	StateLoadingMore      State = "loading_more"
	StateLoaded           State = "loaded"
	StateExhausted        State = "exhausted"
)

// Loading reports whether a page load is in flight in this state.
func (s State) Loading() bool {
	return s == StateLoadingFirstPage || s == StateLoadingMore
}

// ErrStale is returned when a result arrives after the list was reset or superseded.
// The result is discarded.
var ErrStale = errors.New("listing: result superseded")

// PageLoader loads one page of entries.
type PageLoader interface {
	LoadPage(ctx context.Context, offset, limit int) (pokemon.Page, error)
}

// Searcher resolves a query against the loaded entries.
type Searcher interface {
	Search(ctx context.Context, loaded []pokemon.Pokemon, query string) ([]pokemon.Pokemon, error)
}

// Source is what a List drives. *catalog.Service satisfies it.
type Source interface {
	PageLoader
	Searcher
}

// Options tunes a List.
type Options struct {
	// Limit is the page size requested on every load; 0 lets the loader decide.
	Limit  int
	Logger *slog.Logger
}

// Snapshot is a copy of a List's state.
type Snapshot struct {
	State         State             `json:"state"`
	Items         []pokemon.Pokemon `json:"items"`
	NextOffset    int               `json:"nextOffset"`
	HasMore       bool              `json:"hasMore"`
	Loading       bool              `json:"loading"`
	LastError     string            `json:"lastError,omitempty"`
	Query         string            `json:"query,omitempty"`
	SearchResults []pokemon.Pokemon `json:"searchResults,omitempty"`
}

// List accumulates pages of entries. At most one page load is in flight per
// generation; overlapping requests are no-ops. Items are deduplicated by id and
// keep their first-seen position.
type List struct {
	source Source
	limit  int
	logger *slog.Logger

	mu            sync.Mutex
	state         State
	items         []pokemon.Pokemon
	seen          map[int]struct{}
	nextOffset    int
	hasMore       bool
	lastErr       error
	generation    uint64
	searchToken   uint64
	query         string
	searchResults []pokemon.Pokemon
}

// New returns an idle List backed by source.
func New(source Source, opts Options) *List {
	limit := opts.Limit
	if limit < 0 {
		limit = 0
	}
	return &List{
		source: source,
		limit:  limit,
		logger: opts.Logger,
		state:  StateIdle,
		seen:   make(map[int]struct{}),
	}
}

// Start loads the first page, replacing any items on success. It is ignored while a load is in flight.
func (l *List) Start(ctx context.Context) (Snapshot, error) {
	l.mu.Lock()
	if l.state.Loading() {
		l.mu.Unlock()
		logging.Debug(l.loggerFor(ctx), "start ignored: load in flight")
		return l.Snapshot(), nil
	}
	prev := l.state
	l.state = StateLoadingFirstPage
	token := l.generation
	l.mu.Unlock()

	page, err := l.source.LoadPage(ctx, 0, l.limit)

	l.mu.Lock()
	defer l.mu.Unlock()
	if token != l.generation {
		return l.snapshotLocked(), ErrStale
	}
	if err != nil {
		// A failed refresh keeps what was already loaded.
		l.state = prev
		l.lastErr = err
		logging.Warn(l.loggerFor(ctx), "first page load failed", slog.Any("err", err))
		return l.snapshotLocked(), err
	}

	l.items = nil
	l.seen = make(map[int]struct{})
	l.nextOffset = 0
	l.applyLocked(l.loggerFor(ctx), page)
	return l.snapshotLocked(), nil
}

// LoadMore appends the next page. It only loads from the loaded state with more
// pages available; otherwise no fetch is issued.
func (l *List) LoadMore(ctx context.Context) (Snapshot, error) {
	l.mu.Lock()
	if l.state != StateLoaded || !l.hasMore {
		state := l.state
		l.mu.Unlock()
		logging.Debug(l.loggerFor(ctx), "load more ignored", slog.String("state", string(state)))
		return l.Snapshot(), nil
	}
	l.state = StateLoadingMore
	token := l.generation
	offset := l.nextOffset
	l.mu.Unlock()

	page, err := l.source.LoadPage(ctx, offset, l.limit)

	l.mu.Lock()
	defer l.mu.Unlock()
	if token != l.generation {
		return l.snapshotLocked(), ErrStale
	}
	if err != nil {
		l.state = StateLoaded
		l.lastErr = err
		logging.Warn(l.loggerFor(ctx), "page load failed",
			slog.Int(logging.FieldOffset, offset),
			slog.Any("err", err),
		)
		return l.snapshotLocked(), err
	}
	l.applyLocked(l.loggerFor(ctx), page)
	return l.snapshotLocked(), nil
}

// applyLocked merges a successful page and advances the cursor.
func (l *List) applyLocked(logger *slog.Logger, page pokemon.Page) {
	added := 0
	for _, p := range page.Items {
		if _, dup := l.seen[p.ID]; dup {
			continue
		}
		l.seen[p.ID] = struct{}{}
		l.items = append(l.items, p)
		added++
	}

	step := page.Limit
	if step <= 0 {
		step = l.limit
	}
	l.nextOffset = page.Offset + step
	l.hasMore = page.HasMore
	l.lastErr = nil
	l.state = StateLoaded
	if !l.hasMore {
		l.state = StateExhausted
	}

	logging.Debug(logger, "page applied",
		slog.Int(logging.FieldOffset, page.Offset),
		slog.Int(logging.FieldCount, added),
		slog.Int(logging.FieldDropped, page.Dropped),
	)
}

// loggerFor prefers the request-scoped logger carried by ctx over the list's own.
func (l *List) loggerFor(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, l.logger)
}

// Reset abandons in-flight work and returns to idle. Results of loads or searches
// started before the reset are discarded.
func (l *List) Reset() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.generation++
	l.searchToken++
	l.state = StateIdle
	l.items = nil
	l.seen = make(map[int]struct{})
	l.nextOffset = 0
	l.hasMore = false
	l.lastErr = nil
	l.query = ""
	l.searchResults = nil
	return l.snapshotLocked()
}

// Search resolves query against the loaded items. An empty query clears the
// current results. A search superseded by a newer one, or by Reset, returns ErrStale.
func (l *List) Search(ctx context.Context, query string) ([]pokemon.Pokemon, error) {
	l.mu.Lock()
	l.searchToken++
	token := l.searchToken
	q := strings.TrimSpace(query)
	l.query = q
	if q == "" {
		l.searchResults = nil
		l.mu.Unlock()
		return []pokemon.Pokemon{}, nil
	}
	loaded := append([]pokemon.Pokemon(nil), l.items...)
	l.mu.Unlock()

	results, err := l.source.Search(ctx, loaded, q)

	l.mu.Lock()
	defer l.mu.Unlock()
	if token != l.searchToken {
		return nil, ErrStale
	}
	l.searchResults = append([]pokemon.Pokemon{}, results...)
	return results, err
}

// Snapshot returns a copy of the current state.
func (l *List) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

func (l *List) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:      l.state,
		Items:      append([]pokemon.Pokemon{}, l.items...),
		NextOffset: l.nextOffset,
		HasMore:    l.hasMore,
		Loading:    l.state.Loading(),
		Query:      l.query,
	}
	if l.lastErr != nil {
		snap.LastError = l.lastErr.Error()
	}
	if l.searchResults != nil {
		snap.SearchResults = append([]pokemon.Pokemon{}, l.searchResults...)
	}
	return snap
}
