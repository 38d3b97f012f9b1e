package cmd

import (
	"github.com/cinedeck/cli/pkg/config"
	"github.com/cinedeck/cli/pkg/recommend"
	"github.com/cinedeck/cli/pkg/service"
	"github.com/spf13/cobra"
)

var (
	recommendMode  string
	recommendLimit int
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <movie-id>",
	Short: "Get recommendations for a movie",
	Long: `Fetch recommendations for a movie. Content-based mode suggests movies
with similar attributes; collaborative mode uses an external cross-user
signal source (TMDb). After a collaborative failure you are offered a
content-based retry.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseMovieID(args[0])
		if err != nil {
			return err
		}

		mode, err := recommend.ParseMode(recommendMode)
		if err != nil {
			return err
		}

		limit := recommendLimit
		if !cmd.Flags().Changed("limit") {
			limit = config.GetInt("recommend.limit")
		}

		svc := service.NewRecommendService()
		return svc.Recommend(id, service.RecommendOptions{
			Mode:  mode,
			Limit: limit,
		})
	},
}

func init() {
	recommendCmd.Flags().StringVarP(&recommendMode, "mode", "m", "content", "Recommendation mode: content or collaborative")
	recommendCmd.Flags().IntVar(&recommendLimit, "limit", recommend.DefaultLimit, "Maximum recommendations to request")
}
