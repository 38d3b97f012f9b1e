package recommend

import (
	"strings"
	"sync"

	"github.com/cinedeck/cli/pkg/api"
	cerrors "github.com/cinedeck/cli/pkg/errors"
	"github.com/cinedeck/cli/pkg/logger"
)

// Mode selects the recommendation endpoint family.
type Mode string

const (
	ModeContent       Mode = "content"
	ModeCollaborative Mode = "collaborative"
)

// ParseMode validates a user-supplied recommendation mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeContent, "":
		return ModeContent, nil
	case ModeCollaborative:
		return ModeCollaborative, nil
	}
	return "", cerrors.ValidationError("mode", "must be content or collaborative")
}

// State is the orchestrator's request-cycle state.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "idle"
	}
}

const recommendFallback = "Failed to fetch recommendations. Try again or switch modes."

// collabErrorClass is a coarse classification of collaborative-mode
// backend failures, keyed on message text because the backend exposes no
// structured code. Swap the classifier if that ever changes.
type collabErrorClass int

const (
	collabErrOther collabErrorClass = iota
	collabErrUpstream
	collabErrNoLocalMatch
)

func classifyCollaborativeError(msg string) collabErrorClass {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "no local movies match"):
		return collabErrNoLocalMatch
	case strings.Contains(lower, "tmdb"):
		return collabErrUpstream
	default:
		return collabErrOther
	}
}

const upstreamNote = " Collaborative recommendations depend on TMDb data; the external service may be unavailable."

// Orchestrator drives recommendation fetches for a selected movie. Each
// trigger runs the cycle Loading -> {Success, Error}; its loading and
// error state is independent of the catalog's. Triggers are stamped with
// a monotonically increasing generation and a completion whose generation
// is stale is discarded instead of overwriting newer state.
type Orchestrator struct {
	mu      sync.Mutex
	gen     uint64
	state   State
	movieID api.MovieID
	mode    Mode
	limit   int
	results []api.Movie
	errMsg  string

	fetch func(id api.MovieID, mode Mode, limit int) ([]api.Movie, error)
}

// Snapshot is a point-in-time copy of the orchestrator state.
type Snapshot struct {
	State   State
	MovieID api.MovieID
	Mode    Mode
	Results []api.Movie
	Err     string
}

// DefaultLimit is the backend's default result count.
const DefaultLimit = 5

// New creates an orchestrator backed by the recommendation endpoints.
func New() *Orchestrator {
	return &Orchestrator{
		limit: DefaultLimit,
		fetch: fetchFromAPI,
	}
}

func fetchFromAPI(id api.MovieID, mode Mode, limit int) ([]api.Movie, error) {
	if mode == ModeCollaborative {
		return api.GetCollaborativeRecommendations(id, limit)
	}
	return api.GetRecommendations(id, string(mode), limit)
}

// SetLimit overrides the requested result count.
func (o *Orchestrator) SetLimit(limit int) {
	if limit > 0 {
		o.limit = limit
	}
}

// Fetch runs one recommendation request cycle for the movie in the given
// mode. The movie id is validated before any network call. The returned
// error is also reflected in the orchestrator's error state.
func (o *Orchestrator) Fetch(id api.MovieID, mode Mode) error {
	if !id.Valid() {
		err := cerrors.ValidationError("movie id", "must be a positive integer")
		o.mu.Lock()
		o.state = StateError
		o.results = nil
		o.errMsg = err.Message
		o.mu.Unlock()
		return err
	}

	o.mu.Lock()
	o.gen++
	myGen := o.gen
	o.state = StateLoading
	o.movieID = id
	o.mode = mode
	o.results = nil
	o.errMsg = ""
	limit := o.limit
	o.mu.Unlock()

	logger.Info("Fetching recommendations", "movie_id", id, "mode", mode, "limit", limit)
	results, err := o.fetch(id, mode, limit)

	o.mu.Lock()
	defer o.mu.Unlock()

	if myGen != o.gen {
		// A newer trigger superseded this request; drop the result.
		logger.Debug("Discarding stale recommendation response", "movie_id", id, "gen", myGen)
		return nil
	}

	if err != nil {
		msg := api.UserMessage(err, recommendFallback)
		if mode == ModeCollaborative && classifyCollaborativeError(msg) == collabErrUpstream {
			msg += upstreamNote
		}
		o.state = StateError
		o.results = []api.Movie{}
		o.errMsg = msg
		logger.Error("Recommendation fetch failed", "movie_id", id, "mode", mode, "err", err)
		return err
	}

	if results == nil {
		results = []api.Movie{}
	}
	o.state = StateSuccess
	o.results = results
	logger.Info("Recommendations fetched", "movie_id", id, "mode", mode, "count", len(results))
	return nil
}

// Retry re-issues the last request with the same movie and mode.
func (o *Orchestrator) Retry() error {
	o.mu.Lock()
	id, mode := o.movieID, o.mode
	o.mu.Unlock()
	return o.Fetch(id, mode)
}

// FallbackToContent re-issues the last request in content mode, the
// recovery path offered after a collaborative failure.
func (o *Orchestrator) FallbackToContent() error {
	o.mu.Lock()
	id := o.movieID
	o.mu.Unlock()
	return o.Fetch(id, ModeContent)
}

// Snapshot returns a copy of the current state.
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	results := make([]api.Movie, len(o.results))
	copy(results, o.results)
	return Snapshot{
		State:   o.state,
		MovieID: o.movieID,
		Mode:    o.mode,
		Results: results,
		Err:     o.errMsg,
	}
}
