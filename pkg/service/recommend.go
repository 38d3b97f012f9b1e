package service

import (
	"fmt"

	"github.com/cinedeck/cli/pkg/api"
	"github.com/cinedeck/cli/pkg/formatter"
	"github.com/cinedeck/cli/pkg/prompter"
	"github.com/cinedeck/cli/pkg/recommend"
)

// RecommendService drives the recommendation flow: fetch, render, and
// offer the content-mode fallback after a collaborative failure.
type RecommendService struct {
	orch *recommend.Orchestrator
}

// NewRecommendService creates a recommendation service.
func NewRecommendService() *RecommendService {
	return &RecommendService{orch: recommend.New()}
}

// RecommendOptions are the user-selected request parameters.
type RecommendOptions struct {
	Mode  recommend.Mode
	Limit int
}

// Recommend fetches and prints recommendations for a movie. A failure
// here is scoped to the recommendation flow; it never disturbs catalog
// state.
func (rs *RecommendService) Recommend(id api.MovieID, opts RecommendOptions) error {
	rs.orch.SetLimit(opts.Limit)

	err := rs.orch.Fetch(id, opts.Mode)
	snap := rs.orch.Snapshot()

	if err != nil {
		formatter.PrintError("%s", snap.Err)

		// Offer the content-based fallback after a collaborative failure
		if opts.Mode == recommend.ModeCollaborative && prompter.IsInteractive() {
			retry, perr := prompter.PromptConfirm("Try content-based recommendations instead?")
			if perr == nil && retry {
				if err := rs.orch.FallbackToContent(); err != nil {
					snap = rs.orch.Snapshot()
					formatter.PrintError("%s", snap.Err)
					return fmt.Errorf("failed to fetch recommendations: %w", err)
				}
				rs.printResults(rs.orch.Snapshot())
				return nil
			}
		}
		return fmt.Errorf("failed to fetch recommendations: %w", err)
	}

	rs.printResults(snap)
	return nil
}

func (rs *RecommendService) printResults(snap recommend.Snapshot) {
	if len(snap.Results) == 0 {
		// An empty list is a normal state, not a failure
		fmt.Printf("No recommendations found for movie %s\n", snap.MovieID)
		return
	}

	headers := []string{"ID", "Title", "Genre", "Year", "Rating", "Kind", "Confidence"}
	rows := make([][]string, len(snap.Results))
	for i, m := range snap.Results {
		rows[i] = []string{
			m.ID.String(),
			formatter.Truncate(m.Title, 40),
			m.Genre,
			formatter.Year(m.Year),
			formatter.Rating(m.Rating),
			m.RecommendationType,
			confidence(m.ConfidenceScore),
		}
	}

	fmt.Printf("\nRecommendations for movie %s (%s mode)\n\n", snap.MovieID, snap.Mode)
	formatter.PrintTable(headers, rows)
}

func confidence(score float64) string {
	if score == 0 {
		return "-"
	}
	return fmt.Sprintf("%.0f%%", score)
}
