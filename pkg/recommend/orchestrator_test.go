package recommend

import (
	"strings"
	"sync"
	"testing"

	"github.com/cinedeck/cli/pkg/api"
	cerrors "github.com/cinedeck/cli/pkg/errors"
)

func stubbed(fetch func(id api.MovieID, mode Mode, limit int) ([]api.Movie, error)) *Orchestrator {
	o := New()
	o.fetch = fetch
	return o
}

func TestFetch_InvalidIDFailsWithoutNetworkCall(t *testing.T) {
	calls := 0
	o := stubbed(func(id api.MovieID, mode Mode, limit int) ([]api.Movie, error) {
		calls++
		return nil, nil
	})

	for _, id := range []api.MovieID{-1, 0} {
		err := o.Fetch(id, ModeContent)
		if err == nil {
			t.Fatalf("Fetch(%d) should fail validation", id)
		}
		if !cerrors.IsValidation(err) {
			t.Errorf("Fetch(%d) error should be a validation error, got %v", id, err)
		}
	}

	if calls != 0 {
		t.Errorf("backend was contacted %d times, want 0", calls)
	}

	snap := o.Snapshot()
	if snap.State != StateError {
		t.Errorf("state = %v, want error", snap.State)
	}
}

func TestFetch_SuccessStoresResults(t *testing.T) {
	o := stubbed(func(id api.MovieID, mode Mode, limit int) ([]api.Movie, error) {
		return []api.Movie{{ID: 9, Title: "Arrival", RecommendationType: "content"}}, nil
	})

	if err := o.Fetch(7, ModeContent); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	snap := o.Snapshot()
	if snap.State != StateSuccess {
		t.Errorf("state = %v, want success", snap.State)
	}
	if snap.MovieID != 7 || snap.Mode != ModeContent {
		t.Errorf("selected movie/mode = %v/%v", snap.MovieID, snap.Mode)
	}
	if len(snap.Results) != 1 || snap.Results[0].Title != "Arrival" {
		t.Errorf("results = %v", snap.Results)
	}
	if snap.Err != "" {
		t.Errorf("err = %q, want empty", snap.Err)
	}
}

func TestFetch_NilResultCoercedToEmpty(t *testing.T) {
	o := stubbed(func(id api.MovieID, mode Mode, limit int) ([]api.Movie, error) {
		return nil, nil
	})

	if err := o.Fetch(7, ModeContent); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	snap := o.Snapshot()
	if snap.State != StateSuccess {
		t.Errorf("state = %v, want success (empty list is not a failure)", snap.State)
	}
	if snap.Results == nil || len(snap.Results) != 0 {
		t.Errorf("results = %v, want empty non-nil list", snap.Results)
	}
}

func TestFetch_ClearsPreviousStateOnNewTrigger(t *testing.T) {
	fail := true
	o := stubbed(func(id api.MovieID, mode Mode, limit int) ([]api.Movie, error) {
		if fail {
			return nil, &api.APIError{StatusCode: 500, Message: "boom"}
		}
		return []api.Movie{{ID: 1, Title: "Dune"}}, nil
	})

	_ = o.Fetch(7, ModeContent)
	if o.Snapshot().Err == "" {
		t.Fatal("expected an error message after failed fetch")
	}

	fail = false
	if err := o.Fetch(7, ModeContent); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	snap := o.Snapshot()
	if snap.Err != "" || snap.State != StateSuccess {
		t.Errorf("previous error not cleared: %+v", snap)
	}
}

func TestFetch_ErrorForcesEmptyResults(t *testing.T) {
	o := stubbed(func(id api.MovieID, mode Mode, limit int) ([]api.Movie, error) {
		return []api.Movie{{ID: 1}}, &api.APIError{StatusCode: 500, Message: "boom"}
	})

	if err := o.Fetch(7, ModeContent); err == nil {
		t.Fatal("Fetch should surface the error")
	}
	snap := o.Snapshot()
	if snap.State != StateError {
		t.Errorf("state = %v, want error", snap.State)
	}
	if len(snap.Results) != 0 {
		t.Errorf("results = %v, want forced empty", snap.Results)
	}
}

func TestFetch_CollaborativeTMDbErrorGetsNote(t *testing.T) {
	o := stubbed(func(id api.MovieID, mode Mode, limit int) ([]api.Movie, error) {
		return nil, &api.APIError{StatusCode: 503, Message: "TMDb service unavailable"}
	})

	_ = o.Fetch(7, ModeCollaborative)

	snap := o.Snapshot()
	if !strings.HasPrefix(snap.Err, "TMDb service unavailable") {
		t.Errorf("err = %q, should keep the backend message", snap.Err)
	}
	if !strings.Contains(snap.Err, "depend on TMDb data") {
		t.Errorf("err = %q, should append the external-dependency note", snap.Err)
	}
}

func TestFetch_CollaborativeNoLocalMatchPassesThrough(t *testing.T) {
	msg := "No local movies match this title"
	o := stubbed(func(id api.MovieID, mode Mode, limit int) ([]api.Movie, error) {
		return nil, &api.APIError{StatusCode: 404, Message: msg}
	})

	_ = o.Fetch(7, ModeCollaborative)

	if got := o.Snapshot().Err; got != msg {
		t.Errorf("err = %q, want unchanged %q", got, msg)
	}
}

func TestFetch_ContentModeErrorNeverAugmented(t *testing.T) {
	o := stubbed(func(id api.MovieID, mode Mode, limit int) ([]api.Movie, error) {
		return nil, &api.APIError{StatusCode: 503, Message: "TMDb service unavailable"}
	})

	_ = o.Fetch(7, ModeContent)

	if got := o.Snapshot().Err; got != "TMDb service unavailable" {
		t.Errorf("err = %q, want unaugmented backend message", got)
	}
}

func TestFetch_StaleResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})

	o := New()
	o.fetch = func(id api.MovieID, mode Mode, limit int) ([]api.Movie, error) {
		if id == 1 {
			close(started)
			<-release // hold the first request until the second has finished
			return []api.Movie{{ID: 100, Title: "Stale"}}, nil
		}
		return []api.Movie{{ID: 200, Title: "Fresh"}}, nil
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = o.Fetch(1, ModeContent)
	}()

	<-started
	if err := o.Fetch(2, ModeContent); err != nil {
		t.Fatalf("second Fetch: %v", err)
	}
	close(release)
	wg.Wait()

	snap := o.Snapshot()
	if snap.MovieID != 2 {
		t.Errorf("selected movie = %v, want 2", snap.MovieID)
	}
	if len(snap.Results) != 1 || snap.Results[0].Title != "Fresh" {
		t.Errorf("stale response overwrote newer state: %v", snap.Results)
	}
}

func TestRetry_ReissuesSameRequest(t *testing.T) {
	var got []Mode
	var gotIDs []api.MovieID
	o := stubbed(func(id api.MovieID, mode Mode, limit int) ([]api.Movie, error) {
		got = append(got, mode)
		gotIDs = append(gotIDs, id)
		return []api.Movie{}, nil
	})

	if err := o.Fetch(7, ModeCollaborative); err != nil {
		t.Fatal(err)
	}
	if err := o.Retry(); err != nil {
		t.Fatal(err)
	}

	if len(got) != 2 || got[1] != ModeCollaborative || gotIDs[1] != 7 {
		t.Errorf("Retry issued %v for ids %v", got, gotIDs)
	}
}

func TestFallbackToContent(t *testing.T) {
	var modes []Mode
	o := stubbed(func(id api.MovieID, mode Mode, limit int) ([]api.Movie, error) {
		modes = append(modes, mode)
		if mode == ModeCollaborative {
			return nil, &api.APIError{StatusCode: 503, Message: "TMDb API error"}
		}
		return []api.Movie{{ID: 9, Title: "Arrival"}}, nil
	})

	_ = o.Fetch(7, ModeCollaborative)
	if err := o.FallbackToContent(); err != nil {
		t.Fatalf("FallbackToContent: %v", err)
	}

	if len(modes) != 2 || modes[1] != ModeContent {
		t.Errorf("modes = %v, want collaborative then content", modes)
	}
	snap := o.Snapshot()
	if snap.State != StateSuccess || snap.Mode != ModeContent {
		t.Errorf("snapshot after fallback = %+v", snap)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"content", ModeContent, false},
		{"", ModeContent, false},
		{"Collaborative", ModeCollaborative, false},
		{"hybrid", "", true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
