package api

import (
	"net/http"
	"testing"
)

func TestGetRecommendations_SendsModeAndLimit(t *testing.T) {
	pointClientAt(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/recommended/" {
			t.Errorf("path = %q, want /recommended/", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("id") != "7" || q.Get("type") != "content" || q.Get("limit") != "5" {
			t.Errorf("query = %v", q)
		}
		w.Write([]byte(`[
			{"id": 9, "title": "Arrival", "genre": "Sci-Fi", "recommendation_type": "content", "confidence_score": 87.5}
		]`))
	}))

	movies, err := GetRecommendations(7, "content", 5)
	if err != nil {
		t.Fatalf("GetRecommendations: %v", err)
	}
	if len(movies) != 1 {
		t.Fatalf("got %d movies, want 1", len(movies))
	}
	if movies[0].RecommendationType != RecommendationContent {
		t.Errorf("RecommendationType = %q", movies[0].RecommendationType)
	}
	if movies[0].ConfidenceScore != 87.5 {
		t.Errorf("ConfidenceScore = %v", movies[0].ConfidenceScore)
	}
}

func TestGetCollaborativeRecommendations_NoModeParameter(t *testing.T) {
	pointClientAt(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/collaborative_recommended/" {
			t.Errorf("path = %q, want /collaborative_recommended/", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("id") != "7" || q.Get("limit") != "3" {
			t.Errorf("query = %v", q)
		}
		if q.Has("type") {
			t.Error("collaborative endpoint takes no type parameter")
		}
		// Collaborative results carry TMDb ids as numeric strings
		w.Write([]byte(`[
			{"id": "603", "title": "The Matrix", "recommendation_type": "collaborative", "confidence_score": 100}
		]`))
	}))

	movies, err := GetCollaborativeRecommendations(7, 3)
	if err != nil {
		t.Fatalf("GetCollaborativeRecommendations: %v", err)
	}
	if len(movies) != 1 {
		t.Fatalf("got %d movies, want 1", len(movies))
	}
	if movies[0].ID != 603 {
		t.Errorf("ID = %d, want 603 (decoded from string)", movies[0].ID)
	}
}

func TestGetRecommendations_EmptyListIsNotAnError(t *testing.T) {
	pointClientAt(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))

	movies, err := GetRecommendations(7, "content", 5)
	if err != nil {
		t.Fatalf("GetRecommendations: %v", err)
	}
	if movies == nil || len(movies) != 0 {
		t.Errorf("movies = %v, want empty non-nil list", movies)
	}
}
