package listing

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"pokedex-service/internal/app/catalog"
	"pokedex-service/internal/domain/pokemon"
	"pokedex-service/internal/providers"
	"pokedex-service/internal/providers/fixture"
	"pokedex-service/internal/testutil"
)

type stubSource struct {
	mu      sync.Mutex
	pages   map[int]pokemon.Page
	errs    map[int]error
	offsets []int
	queries []string

	// gate, when set, blocks LoadPage and Search until it is closed.
	gate    chan struct{}
	entered chan struct{}
}

func newStubSource() *stubSource {
	return &stubSource{pages: map[int]pokemon.Page{}, errs: map[int]error{}}
}

func (s *stubSource) block() {
	s.mu.Lock()
	s.gate = make(chan struct{})
	s.entered = make(chan struct{}, 1)
	s.mu.Unlock()
}

func (s *stubSource) wait() {
	s.mu.Lock()
	gate, entered := s.gate, s.entered
	s.mu.Unlock()
	if gate == nil {
		return
	}
	entered <- struct{}{}
	<-gate
}

func (s *stubSource) LoadPage(ctx context.Context, offset, limit int) (pokemon.Page, error) {
	s.mu.Lock()
	s.offsets = append(s.offsets, offset)
	page, err := s.pages[offset], s.errs[offset]
	s.mu.Unlock()

	s.wait()
	if err != nil {
		return pokemon.Page{}, err
	}
	page.Offset, page.Limit = offset, limit
	return page, nil
}

func (s *stubSource) Search(ctx context.Context, loaded []pokemon.Pokemon, query string) ([]pokemon.Pokemon, error) {
	s.mu.Lock()
	s.queries = append(s.queries, query)
	s.mu.Unlock()

	s.wait()
	return catalog.MatchLocal(loaded, query), nil
}

func (s *stubSource) loadCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.offsets)
}

func entries(ids ...int) []pokemon.Pokemon {
	out := make([]pokemon.Pokemon, 0, len(ids))
	for _, id := range ids {
		out = append(out, testutil.SamplePokemon(id, "mon"))
	}
	return out
}

func ids(items []pokemon.Pokemon) []int {
	out := make([]int, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestStartLoadsFirstPage(t *testing.T) {
	src := newStubSource()
	src.pages[0] = pokemon.Page{Items: entries(1, 2, 3), HasMore: true}
	list := New(src, Options{Limit: 3})

	if snap := list.Snapshot(); snap.State != StateIdle || snap.Loading {
		t.Fatalf("expected idle list, got %+v", snap)
	}

	snap, err := list.Start(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if snap.State != StateLoaded || !snap.HasMore || snap.NextOffset != 3 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if !equalInts(ids(snap.Items), []int{1, 2, 3}) {
		t.Fatalf("unexpected items %v", ids(snap.Items))
	}
}

func TestLoadMoreAppendsAndExhausts(t *testing.T) {
	src := newStubSource()
	src.pages[0] = pokemon.Page{Items: entries(1, 2), HasMore: true}
	src.pages[2] = pokemon.Page{Items: entries(3), HasMore: false}
	list := New(src, Options{Limit: 2})

	if _, err := list.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	snap, err := list.LoadMore(context.Background())
	if err != nil {
		t.Fatalf("load more: %v", err)
	}
	if snap.State != StateExhausted || snap.HasMore {
		t.Fatalf("expected exhausted list, got %+v", snap)
	}
	if !equalInts(ids(snap.Items), []int{1, 2, 3}) {
		t.Fatalf("unexpected items %v", ids(snap.Items))
	}

	if _, err := list.LoadMore(context.Background()); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
	if src.loadCalls() != 2 {
		t.Fatalf("expected no fetch once exhausted, got %d calls", src.loadCalls())
	}
}

func TestLoadMoreBeforeStartIsIgnored(t *testing.T) {
	src := newStubSource()
	list := New(src, Options{Limit: 2})

	snap, err := list.LoadMore(context.Background())
	if err != nil || snap.State != StateIdle {
		t.Fatalf("expected idle no-op, got %+v err=%v", snap, err)
	}
	if src.loadCalls() != 0 {
		t.Fatalf("expected no fetch, got %d", src.loadCalls())
	}
}

func TestLoadMoreTwiceWhileInFlightIssuesOneFetch(t *testing.T) {
	src := newStubSource()
	src.pages[0] = pokemon.Page{Items: entries(1, 2), HasMore: true}
	src.pages[2] = pokemon.Page{Items: entries(3, 4), HasMore: true}
	list := New(src, Options{Limit: 2})
	if _, err := list.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	src.block()
	done := make(chan error, 1)
	go func() {
		_, err := list.LoadMore(context.Background())
		done <- err
	}()
	<-src.entered

	snap, err := list.LoadMore(context.Background())
	if err != nil {
		t.Fatalf("expected overlapping load more to be a no-op, got %v", err)
	}
	if snap.State != StateLoadingMore || !snap.Loading {
		t.Fatalf("expected loading state, got %s", snap.State)
	}
	if _, err := list.Start(context.Background()); err != nil {
		t.Fatalf("expected overlapping start to be a no-op, got %v", err)
	}

	close(src.gate)
	if err := <-done; err != nil {
		t.Fatalf("first load more: %v", err)
	}
	if src.loadCalls() != 2 {
		t.Fatalf("expected exactly one page fetch after start, got %d total", src.loadCalls())
	}
	if got := ids(list.Snapshot().Items); !equalInts(got, []int{1, 2, 3, 4}) {
		t.Fatalf("unexpected items %v", got)
	}
}

func TestOverlappingPagesAreDeduplicated(t *testing.T) {
	src := newStubSource()
	src.pages[0] = pokemon.Page{Items: entries(1, 2, 3), HasMore: true}
	src.pages[3] = pokemon.Page{Items: entries(3, 2, 4, 5), HasMore: false}
	list := New(src, Options{Limit: 3})

	if _, err := list.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	snap, err := list.LoadMore(context.Background())
	if err != nil {
		t.Fatalf("load more: %v", err)
	}
	if !equalInts(ids(snap.Items), []int{1, 2, 3, 4, 5}) {
		t.Fatalf("expected deduplicated stable order, got %v", ids(snap.Items))
	}
}

func TestFailedFirstPageReturnsToIdle(t *testing.T) {
	boom := errors.New("boom")
	src := newStubSource()
	src.errs[0] = boom
	list := New(src, Options{Limit: 2})

	snap, err := list.Start(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if snap.State != StateIdle || snap.LastError == "" || len(snap.Items) != 0 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestFailedLoadMorePreservesItems(t *testing.T) {
	src := newStubSource()
	src.pages[0] = pokemon.Page{Items: entries(1, 2), HasMore: true}
	src.errs[2] = errors.New("boom")
	list := New(src, Options{Limit: 2})
	if _, err := list.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	snap, err := list.LoadMore(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if snap.State != StateLoaded || snap.NextOffset != 2 || !equalInts(ids(snap.Items), []int{1, 2}) {
		t.Fatalf("expected loaded state with items kept, got %+v", snap)
	}

	src.mu.Lock()
	delete(src.errs, 2)
	src.pages[2] = pokemon.Page{Items: entries(3), HasMore: false}
	src.mu.Unlock()

	snap, err = list.LoadMore(context.Background())
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if snap.LastError != "" || !equalInts(ids(snap.Items), []int{1, 2, 3}) {
		t.Fatalf("unexpected snapshot after retry %+v", snap)
	}
}

func TestFailedRefreshKeepsLoadedItems(t *testing.T) {
	src := newStubSource()
	src.pages[0] = pokemon.Page{Items: entries(1), HasMore: false}
	list := New(src, Options{Limit: 1})
	if _, err := list.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	src.mu.Lock()
	src.errs[0] = errors.New("boom")
	src.mu.Unlock()

	snap, err := list.Start(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if snap.State != StateExhausted || len(snap.Items) != 1 {
		t.Fatalf("expected previous state kept, got %+v", snap)
	}
}

func TestResetDiscardsInFlightResult(t *testing.T) {
	src := newStubSource()
	src.pages[0] = pokemon.Page{Items: entries(1, 2), HasMore: true}
	list := New(src, Options{Limit: 2})

	src.block()
	done := make(chan error, 1)
	go func() {
		_, err := list.Start(context.Background())
		done <- err
	}()
	<-src.entered

	if snap := list.Reset(); snap.State != StateIdle {
		t.Fatalf("expected idle after reset, got %s", snap.State)
	}
	close(src.gate)

	if err := <-done; !errors.Is(err, ErrStale) {
		t.Fatalf("expected ErrStale, got %v", err)
	}
	snap := list.Snapshot()
	if snap.State != StateIdle || len(snap.Items) != 0 {
		t.Fatalf("expected stale result to be dropped, got %+v", snap)
	}
}

func TestSearchFiltersLoadedItems(t *testing.T) {
	src := newStubSource()
	src.pages[0] = pokemon.Page{Items: []pokemon.Pokemon{testutil.SamplePokemon(25, "pikachu"), testutil.SamplePokemon(4, "charmander")}}
	list := New(src, Options{Limit: 2})
	if _, err := list.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	results, err := list.Search(context.Background(), " 25 ")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].Name != "pikachu" {
		t.Fatalf("unexpected results %+v", results)
	}
	snap := list.Snapshot()
	if snap.Query != "25" || len(snap.SearchResults) != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}

	if results, _ := list.Search(context.Background(), ""); len(results) != 0 {
		t.Fatalf("expected cleared results")
	}
	if snap := list.Snapshot(); snap.SearchResults != nil || snap.Query != "" {
		t.Fatalf("expected search cleared, got %+v", snap)
	}
	if len(src.queries) != 1 {
		t.Fatalf("expected empty query to skip the searcher, got %v", src.queries)
	}
}

func TestSearchSupersededByResetIsStale(t *testing.T) {
	src := newStubSource()
	list := New(src, Options{})

	src.block()
	done := make(chan error, 1)
	go func() {
		_, err := list.Search(context.Background(), "pika")
		done <- err
	}()
	<-src.entered
	list.Reset()
	close(src.gate)

	if err := <-done; !errors.Is(err, ErrStale) {
		t.Fatalf("expected ErrStale, got %v", err)
	}
	if snap := list.Snapshot(); snap.SearchResults != nil {
		t.Fatalf("expected stale search results dropped")
	}
}

func TestListOverCatalogService(t *testing.T) {
	svc := catalog.NewService(fixture.Synthetic(25), catalog.Options{})
	list := New(svc, Options{Limit: 10})

	if _, err := list.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 5; i++ {
		if _, err := list.LoadMore(context.Background()); err != nil {
			t.Fatalf("load more: %v", err)
		}
	}
	snap := list.Snapshot()
	if snap.State != StateExhausted || len(snap.Items) != 25 {
		t.Fatalf("expected all 25 items, got %d (%s)", len(snap.Items), snap.State)
	}
	for i, p := range snap.Items {
		if p.ID != i+1 {
			t.Fatalf("expected id %d at %d, got %d", i+1, i, p.ID)
		}
	}

	results, err := list.Search(context.Background(), "mon-2")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 7 {
		t.Fatalf("expected mon-2 and mon-20..25, got %d", len(results))
	}
}

func TestListFetchesIndexBeforeEachPageOfEntries(t *testing.T) {
	fetcher := &testutil.RecordingFetcher{Inner: fixture.Synthetic(4)}
	svc := catalog.NewService(fetcher, catalog.Options{Concurrency: 1})
	list := New(svc, Options{Limit: 2})

	if _, err := list.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := list.LoadMore(context.Background()); err != nil {
		t.Fatalf("load more: %v", err)
	}

	locators := fetcher.Locators()
	if len(locators) != 6 {
		t.Fatalf("expected two index and four entry fetches, got %v", locators)
	}
	if locators[0] != providers.IndexLocator(0, 2) || locators[3] != providers.IndexLocator(2, 2) {
		t.Fatalf("expected index fetch to lead each page, got %v", locators)
	}
	for _, i := range []int{1, 2, 4, 5} {
		if strings.HasPrefix(locators[i], "pokemon?") {
			t.Fatalf("expected entry fetch at %d, got %q", i, locators[i])
		}
	}
}
