package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed data/*.json
var dataFiles embed.FS

// Store holds the catalog data sets, loaded whole into memory at
// construction and read-only afterwards.
type Store struct {
	careers     []Career
	internships []Internship
	courses     []Course
	clubs       []Club
	posts       []Post
}

// Load reads the embedded catalog data files.
func Load() (*Store, error) {
	s := &Store{}

	var err error
	if s.careers, err = decodeList[Career]("CareerData.json", "Careers", "careers"); err != nil {
		return nil, err
	}
	if s.internships, err = decodeList[Internship]("InternshipData.json", "Internships", "internships"); err != nil {
		return nil, err
	}
	if s.courses, err = decodeList[Course]("CourseData.json", "Courses", "courses"); err != nil {
		return nil, err
	}
	if s.clubs, err = decodeList[Club]("ClubData.json", "Clubs", "clubs"); err != nil {
		return nil, err
	}
	if s.posts, err = decodeList[Post]("PostData.json", "Posts", "posts"); err != nil {
		return nil, err
	}

	return s, nil
}

// decodeList accepts either a bare JSON array or an object wrapping the
// array under one of the given keys, matching the tolerance of the data
// files' original consumers.
func decodeList[T any](name string, keys ...string) ([]T, error) {
	data, err := dataFiles.ReadFile("data/" + name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	var list []T
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}
	for _, key := range keys {
		raw, ok := wrapper[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s[%s]: %w", name, key, err)
		}
		return list, nil
	}

	return nil, fmt.Errorf("%s: no recognized list key (tried %v)", name, keys)
}

// matchesQuery reports whether any field contains the query,
// case-insensitively. An empty query matches everything.
func matchesQuery(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// matchesFacet reports whether value is among the selected facet values.
// No selection means the facet is inactive and everything matches.
func matchesFacet(selected []string, value string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}
