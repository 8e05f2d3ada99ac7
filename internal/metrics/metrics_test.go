package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksFetchAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordFetch("pokeapi", 10*time.Millisecond, "")
	rec.RecordFetch("pokeapi", 15*time.Millisecond, "not_found")
	rec.RecordFetch("pokeapi", 5*time.Millisecond, "not_found")

	if got := rec.FetchCalls("pokeapi"); got != 3 {
		t.Fatalf("expected 3 calls, got %d", got)
	}
	if got := rec.FetchErrors("pokeapi"); got != 2 {
		t.Fatalf("expected 2 errors, got %d", got)
	}
	if got := rec.LastCallLatency("pokeapi"); got != 5*time.Millisecond {
		t.Fatalf("expected last latency to be 5ms, got %s", got)
	}

	snap := rec.Snapshot("pokeapi")
	if snap.ErrorsByKind["not_found"] != 2 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}

	snap.ErrorsByKind["not_found"] = 99
	if rec.Snapshot("pokeapi").ErrorsByKind["not_found"] != 2 {
		t.Fatalf("expected snapshot to be a copy")
	}
}

func TestRecorderTracksPageLoads(t *testing.T) {
	rec := NewRecorder()
	rec.RecordPageLoad(58, 2, nil)
	rec.RecordPageLoad(0, 0, errors.New("index failed"))

	pages := rec.Pages()
	if pages.Loads != 2 || pages.Failures != 1 || pages.Items != 58 || pages.DroppedItems != 2 {
		t.Fatalf("unexpected page snapshot %+v", pages)
	}
}

func TestRecorderNilSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordFetch("pokeapi", time.Millisecond, "")
	rec.RecordPageLoad(1, 0, nil)
	rec.RecordHTTPRequest("GET", "/", 200, time.Millisecond)
	if got := rec.FetchCalls("pokeapi"); got != 0 {
		t.Fatalf("expected zero calls on nil recorder, got %d", got)
	}
	if rec.Pages().Loads != 0 {
		t.Fatalf("expected zero page loads on nil recorder")
	}
}

func TestSnapshotUnknownSource(t *testing.T) {
	snap := NewRecorder().Snapshot("unknown")
	if snap.Calls != 0 || snap.ErrorsByKind == nil {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}
