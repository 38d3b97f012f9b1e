package store

import (
	"os"
	"sort"

	"github.com/cinedeck/cli/pkg/api"
	"github.com/cinedeck/cli/pkg/config"
	"github.com/cinedeck/cli/pkg/logger"
	json "github.com/json-iterator/go"
)

// FavoritesStore is a persisted set of movie ids. Stale ids (movies that
// have since left the catalog) are tolerated and never pruned. Every
// mutation writes the full set back to disk immediately.
type FavoritesStore struct {
	path string
	ids  map[api.MovieID]struct{}
}

// OpenFavorites loads the favorites set from the configured path.
func OpenFavorites() *FavoritesStore {
	return OpenFavoritesAt(config.GetFavoritesPath())
}

// OpenFavoritesAt loads the favorites set from an explicit path. An
// absent or unparsable file yields an empty set.
func OpenFavoritesAt(path string) *FavoritesStore {
	s := &FavoritesStore{
		path: path,
		ids:  make(map[api.MovieID]struct{}),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Could not read favorites file, starting empty", "path", path, "err", err)
		}
		return s
	}

	var ids []api.MovieID
	if err := json.Unmarshal(data, &ids); err != nil {
		logger.Warn("Favorites file is not valid JSON, starting empty", "path", path, "err", err)
		return s
	}

	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// Toggle flips membership for the id and persists the set. Returns true
// if the movie is a favorite after the call.
func (s *FavoritesStore) Toggle(id api.MovieID) (bool, error) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}

	added := s.IsFavorite(id)
	if err := s.save(); err != nil {
		logger.Error("Failed to persist favorites", "path", s.path, "err", err)
		return added, err
	}
	return added, nil
}

// IsFavorite reports membership for the id.
func (s *FavoritesStore) IsFavorite(id api.MovieID) bool {
	_, ok := s.ids[id]
	return ok
}

// IDs returns the favorite ids in ascending order.
func (s *FavoritesStore) IDs() []api.MovieID {
	ids := make([]api.MovieID, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Len returns the number of favorites.
func (s *FavoritesStore) Len() int {
	return len(s.ids)
}

func (s *FavoritesStore) save() error {
	data, err := json.MarshalIndent(s.IDs(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}
