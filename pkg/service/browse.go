package service

import (
	"fmt"

	"github.com/cinedeck/cli/pkg/filter"
	"github.com/cinedeck/cli/pkg/formatter"
	"github.com/cinedeck/cli/pkg/store"
)

// BrowseService renders the searchable, filterable, sortable catalog view.
type BrowseService struct {
	catalog   *store.CatalogStore
	favorites *store.FavoritesStore
}

// NewBrowseService creates a browse service backed by the live catalog
// and the persisted favorites set.
func NewBrowseService() *BrowseService {
	return &BrowseService{
		catalog:   store.NewCatalogStore(),
		favorites: store.OpenFavorites(),
	}
}

// BrowseOptions are the user-selected view criteria.
type BrowseOptions struct {
	Query         string
	Genre         string
	Sort          filter.SortKey
	Refresh       bool
	FavoritesOnly bool
	Limit         int
}

// ListMovies fetches the catalog and prints the derived display list.
func (bs *BrowseService) ListMovies(opts BrowseOptions) error {
	if err := bs.loadCatalog(opts.Refresh); err != nil {
		return err
	}

	movies := filter.Apply(bs.catalog.Movies(), opts.Query, opts.Genre, opts.Sort)

	if opts.FavoritesOnly {
		kept := movies[:0:0]
		for _, m := range movies {
			if bs.favorites.IsFavorite(m.ID) {
				kept = append(kept, m)
			}
		}
		movies = kept
	}

	if opts.Limit > 0 && len(movies) > opts.Limit {
		movies = movies[:opts.Limit]
	}

	if len(movies) == 0 {
		fmt.Println("No movies match the current filters")
		return nil
	}

	headers := []string{"ID", "Title", "Genre", "Year", "Rating", "Fav", "Description"}
	rows := make([][]string, len(movies))
	for i, m := range movies {
		fav := ""
		if bs.favorites.IsFavorite(m.ID) {
			fav = "*"
		}
		rows[i] = []string{
			m.ID.String(),
			formatter.Truncate(m.Title, 40),
			m.Genre,
			formatter.Year(m.Year),
			formatter.Rating(m.Rating),
			fav,
			formatter.Truncate(m.Description, 50),
		}
	}

	fmt.Printf("\nMovies (%d shown)\n\n", len(movies))
	formatter.PrintTable(headers, rows)

	return nil
}

// ListGenres prints the distinct genres present in the catalog.
func (bs *BrowseService) ListGenres(refresh bool) error {
	if err := bs.loadCatalog(refresh); err != nil {
		return err
	}

	genres := filter.AvailableGenres(bs.catalog.Movies())

	counts := make(map[string]int)
	for _, m := range bs.catalog.Movies() {
		if m.Genre != "" {
			counts[m.Genre]++
		}
	}

	headers := []string{"Genre", "Movies"}
	rows := make([][]string, len(genres))
	for i, g := range genres {
		count := counts[g]
		if g == filter.AllGenres {
			count = len(bs.catalog.Movies())
		}
		rows[i] = []string{g, fmt.Sprintf("%d", count)}
	}

	fmt.Printf("\nGenres (%d)\n\n", len(genres)-1)
	formatter.PrintTable(headers, rows)

	return nil
}

func (bs *BrowseService) loadCatalog(refresh bool) error {
	var err error
	if refresh {
		err = bs.catalog.Refresh()
	} else {
		err = bs.catalog.Load()
	}
	if err != nil {
		formatter.PrintError("%s", bs.catalog.Err())
		formatter.PrintInfo("Run the command again, or retry with --refresh to bypass the server cache.")
		return fmt.Errorf("failed to load movies: %w", err)
	}
	return nil
}
