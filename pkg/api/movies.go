package api

import (
	"github.com/cinedeck/cli/pkg/client"
	"github.com/cinedeck/cli/pkg/logger"
	json "github.com/json-iterator/go"
)

// GetMovies retrieves the movie catalog. With refresh the backend is
// asked to bypass its cache and re-pull from its upstream source.
func GetMovies(refresh bool) ([]Movie, error) {
	logger.Debug("Fetching movie catalog", "refresh", refresh)

	req := client.GetClient().R()
	if refresh {
		req.SetQueryParam("refresh", "true")
	}

	resp, err := req.Get("/movies/")
	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	return decodeMovieList(resp.Body()), nil
}

// decodeMovieList decodes a movie list body. A 2xx body that is not a
// JSON list is treated as an empty catalog, not an error.
func decodeMovieList(body []byte) []Movie {
	var movies []Movie
	if err := json.Unmarshal(body, &movies); err != nil {
		logger.Warn("Response body was not a movie list, treating as empty", "err", err)
		return []Movie{}
	}
	if movies == nil {
		return []Movie{}
	}
	return movies
}
