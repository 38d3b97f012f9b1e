package api

import (
	"bytes"
	"fmt"
	"strconv"
)

// Recommendation kinds annotated on movies returned by the
// recommendation endpoints.
const (
	RecommendationContent       = "content"
	RecommendationCollaborative = "collaborative"
)

// MovieID is a catalog movie identifier. The backend serves it as a JSON
// number for catalog rows but as a numeric string for collaborative
// results (TMDb ids), so it unmarshals from either.
type MovieID int

func (id MovieID) String() string {
	return strconv.Itoa(int(id))
}

// Valid reports whether the id can identify a catalog movie.
func (id MovieID) Valid() bool {
	return id > 0
}

func (id *MovieID) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if s == "" || s == "null" {
		*id = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("movie id %q is not numeric: %w", s, err)
	}
	*id = MovieID(n)
	return nil
}

// Movie is a catalog entry. Rating is on the backend's 0-10 scale; zero
// values mean the field was absent. Recommendation endpoints additionally
// annotate kind and confidence (0-100).
type Movie struct {
	ID          MovieID `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Genre       string  `json:"genre,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	Year        int     `json:"year,omitempty"`
	PosterURL   string  `json:"poster_url,omitempty"`

	RecommendationType string  `json:"recommendation_type,omitempty"`
	ConfidenceScore    float64 `json:"confidence_score,omitempty"`
	TMDbURL            string  `json:"tmdb_url,omitempty"`
}

// ErrorBody is the optional structured payload of backend error responses.
type ErrorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}
