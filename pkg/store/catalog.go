package store

import (
	"github.com/cinedeck/cli/pkg/api"
	"github.com/cinedeck/cli/pkg/logger"
)

const catalogLoadFallback = "Failed to load movies. Check the backend and try again."

// CatalogStore holds the fetched movie catalog together with its own
// loading and error state. Single mutator; not safe for concurrent use.
type CatalogStore struct {
	movies  []api.Movie
	loading bool
	errMsg  string

	fetch func(refresh bool) ([]api.Movie, error)
}

// NewCatalogStore creates a catalog store backed by the movies endpoint.
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{fetch: api.GetMovies}
}

// Load fetches the movie catalog.
func (s *CatalogStore) Load() error {
	return s.load(false)
}

// Refresh fetches the catalog with the server-side cache bypassed.
func (s *CatalogStore) Refresh() error {
	return s.load(true)
}

func (s *CatalogStore) load(refresh bool) error {
	s.loading = true
	s.errMsg = ""
	defer func() { s.loading = false }()

	movies, err := s.fetch(refresh)
	if err != nil {
		s.errMsg = api.UserMessage(err, catalogLoadFallback)
		logger.Error("Catalog load failed", "refresh", refresh, "err", err)
		return err
	}

	s.movies = movies
	logger.Info("Catalog loaded", "count", len(movies), "refresh", refresh)
	return nil
}

// Movies returns the current catalog.
func (s *CatalogStore) Movies() []api.Movie {
	return s.movies
}

// Loading reports whether a load is in progress.
func (s *CatalogStore) Loading() bool {
	return s.loading
}

// Err returns the user-facing message of the last failed load, or "".
func (s *CatalogStore) Err() string {
	return s.errMsg
}
