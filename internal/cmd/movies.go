package cmd

import (
	"github.com/cinedeck/cli/pkg/filter"
	"github.com/cinedeck/cli/pkg/service"
	"github.com/spf13/cobra"
)

var (
	moviesSearch    string
	moviesGenre     string
	moviesSort      string
	moviesRefresh   bool
	moviesFavorites bool
	moviesLimit     int
)

var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "Browse the movie catalog",
	Long:  "Fetch and display the movie catalog with search, genre filtering, and sorting",
}

var moviesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List movies",
	Long:  "Display the catalog filtered by search text and genre, ordered by the sort key",
	RunE: func(cmd *cobra.Command, args []string) error {
		sortKey, err := filter.ParseSortKey(moviesSort)
		if err != nil {
			return err
		}

		svc := service.NewBrowseService()
		return svc.ListMovies(service.BrowseOptions{
			Query:         moviesSearch,
			Genre:         moviesGenre,
			Sort:          sortKey,
			Refresh:       moviesRefresh,
			FavoritesOnly: moviesFavorites,
			Limit:         moviesLimit,
		})
	},
}

var moviesGenresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List genres present in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewBrowseService()
		return svc.ListGenres(moviesRefresh)
	},
}

func init() {
	moviesListCmd.Flags().StringVarP(&moviesSearch, "search", "s", "", "Case-insensitive text to match against title and description")
	moviesListCmd.Flags().StringVarP(&moviesGenre, "genre", "g", filter.AllGenres, "Genre to filter by (default: no filter)")
	moviesListCmd.Flags().StringVar(&moviesSort, "sort", "title", "Sort key: title, rating, or year")
	moviesListCmd.Flags().BoolVar(&moviesRefresh, "refresh", false, "Bypass the server-side cache")
	moviesListCmd.Flags().BoolVar(&moviesFavorites, "favorites", false, "Show favorite movies only")
	moviesListCmd.Flags().IntVar(&moviesLimit, "limit", 0, "Maximum rows to display (0 = all)")

	moviesGenresCmd.Flags().BoolVar(&moviesRefresh, "refresh", false, "Bypass the server-side cache")

	moviesCmd.AddCommand(moviesListCmd)
	moviesCmd.AddCommand(moviesGenresCmd)
}
