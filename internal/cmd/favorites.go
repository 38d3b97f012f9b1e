package cmd

import (
	"strconv"

	"github.com/cinedeck/cli/pkg/api"
	cerrors "github.com/cinedeck/cli/pkg/errors"
	"github.com/cinedeck/cli/pkg/service"
	"github.com/spf13/cobra"
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage your favorite movies",
	Long:  "List and toggle favorites. The set is persisted locally and survives across sessions.",
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorite movies",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewFavoritesService()
		return svc.List()
	},
}

var favoritesToggleCmd = &cobra.Command{
	Use:   "toggle <movie-id>",
	Short: "Add or remove a movie from favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseMovieID(args[0])
		if err != nil {
			return err
		}

		svc := service.NewFavoritesService()
		return svc.Toggle(id)
	},
}

func parseMovieID(arg string) (api.MovieID, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n <= 0 {
		return 0, cerrors.ValidationError("movie id", "must be a positive integer")
	}
	return api.MovieID(n), nil
}

func init() {
	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesCmd.AddCommand(favoritesToggleCmd)
}
