package filter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cinedeck/cli/pkg/api"
)

// AllGenres is the sentinel genre meaning "no genre filter".
const AllGenres = "All"

// SortKey selects the ordering of a displayed movie list.
type SortKey string

const (
	SortTitle  SortKey = "title"  // lexicographic ascending
	SortRating SortKey = "rating" // descending, missing treated as 0
	SortYear   SortKey = "year"   // descending, missing treated as 0
)

// ParseSortKey validates a user-supplied sort key.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortTitle:
		return SortTitle, nil
	case SortRating:
		return SortRating, nil
	case SortYear:
		return SortYear, nil
	}
	return "", fmt.Errorf("unknown sort key %q (use title, rating, or year)", s)
}

// AvailableGenres returns the AllGenres sentinel followed by the distinct
// genres present in the catalog, sorted lexicographically. Movies with no
// genre contribute nothing.
func AvailableGenres(catalog []api.Movie) []string {
	seen := make(map[string]struct{})
	for _, m := range catalog {
		if m.Genre != "" {
			seen[m.Genre] = struct{}{}
		}
	}

	genres := make([]string, 0, len(seen)+1)
	genres = append(genres, AllGenres)
	for g := range seen {
		genres = append(genres, g)
	}
	sort.Strings(genres[1:])
	return genres
}

// Apply derives the display list for a catalog: movies matching the
// free-text query (case-insensitive substring over title and description)
// and the genre (exact match, or AllGenres for no filter), ordered by the
// sort key with stable ties. Pure function; the input catalog is never
// mutated.
func Apply(catalog []api.Movie, query, genre string, key SortKey) []api.Movie {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]api.Movie, 0, len(catalog))
	for _, m := range catalog {
		if !matchesQuery(m, q) {
			continue
		}
		if genre != AllGenres && genre != "" && m.Genre != genre {
			continue
		}
		out = append(out, m)
	}

	sort.SliceStable(out, less(out, key))
	return out
}

func matchesQuery(m api.Movie, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(m.Title), q) ||
		strings.Contains(strings.ToLower(m.Description), q)
}

func less(movies []api.Movie, key SortKey) func(i, j int) bool {
	switch key {
	case SortRating:
		return func(i, j int) bool { return movies[i].Rating > movies[j].Rating }
	case SortYear:
		return func(i, j int) bool { return movies[i].Year > movies[j].Year }
	default:
		return func(i, j int) bool {
			return strings.ToLower(movies[i].Title) < strings.ToLower(movies[j].Title)
		}
	}
}
