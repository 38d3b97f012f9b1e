package api

import (
	"strconv"

	"github.com/cinedeck/cli/pkg/client"
	"github.com/cinedeck/cli/pkg/logger"
)

// GetRecommendations retrieves recommendations for a movie from the
// content-based endpoint family. The mode is passed through verbatim as
// the type parameter.
func GetRecommendations(movieID MovieID, mode string, limit int) ([]Movie, error) {
	logger.Debug("Fetching recommendations", "movie_id", movieID, "mode", mode, "limit", limit)

	resp, err := client.GetClient().
		R().
		SetQueryParam("id", movieID.String()).
		SetQueryParam("type", mode).
		SetQueryParam("limit", strconv.Itoa(limit)).
		Get("/recommended/")

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	return decodeMovieList(resp.Body()), nil
}

// GetCollaborativeRecommendations retrieves recommendations from the
// collaborative endpoint, which takes no mode parameter.
func GetCollaborativeRecommendations(movieID MovieID, limit int) ([]Movie, error) {
	logger.Debug("Fetching collaborative recommendations", "movie_id", movieID, "limit", limit)

	resp, err := client.GetClient().
		R().
		SetQueryParam("id", movieID.String()).
		SetQueryParam("limit", strconv.Itoa(limit)).
		Get("/collaborative_recommended/")

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	return decodeMovieList(resp.Body()), nil
}
