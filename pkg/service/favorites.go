package service

import (
	"fmt"

	"github.com/cinedeck/cli/pkg/api"
	"github.com/cinedeck/cli/pkg/formatter"
	"github.com/cinedeck/cli/pkg/store"
)

// FavoritesService manages the persisted favorites set.
type FavoritesService struct {
	catalog   *store.CatalogStore
	favorites *store.FavoritesStore
}

// NewFavoritesService creates a favorites service.
func NewFavoritesService() *FavoritesService {
	return &FavoritesService{
		catalog:   store.NewCatalogStore(),
		favorites: store.OpenFavorites(),
	}
}

// Toggle flips favorite membership for a movie id and reports the result.
func (fs *FavoritesService) Toggle(id api.MovieID) error {
	added, err := fs.favorites.Toggle(id)
	if err != nil {
		return fmt.Errorf("failed to persist favorites: %w", err)
	}

	if added {
		formatter.PrintSuccess("Added movie %s to favorites", id)
	} else {
		formatter.PrintSuccess("Removed movie %s from favorites", id)
	}
	return nil
}

// List prints the favorites, resolving titles against the catalog. Ids
// no longer present in the catalog are shown rather than pruned.
func (fs *FavoritesService) List() error {
	if fs.favorites.Len() == 0 {
		fmt.Println("No favorites yet")
		return nil
	}

	byID := make(map[api.MovieID]api.Movie)
	if err := fs.catalog.Load(); err != nil {
		formatter.PrintWarning("Could not load the catalog; showing favorite ids only")
	} else {
		for _, m := range fs.catalog.Movies() {
			byID[m.ID] = m
		}
	}

	headers := []string{"ID", "Title", "Genre", "Year", "Rating"}
	var rows [][]string
	for _, id := range fs.favorites.IDs() {
		if m, ok := byID[id]; ok {
			rows = append(rows, []string{
				id.String(),
				formatter.Truncate(m.Title, 40),
				m.Genre,
				formatter.Year(m.Year),
				formatter.Rating(m.Rating),
			})
		} else {
			rows = append(rows, []string{id.String(), "(not in catalog)", "", "", ""})
		}
	}

	fmt.Printf("\nFavorites (%d)\n\n", fs.favorites.Len())
	formatter.PrintTable(headers, rows)

	return nil
}
