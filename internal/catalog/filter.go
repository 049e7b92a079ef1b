package catalog

import (
	"strconv"
	"strings"
)

// Filters are linear predicate matches over the in-memory data sets,
// mirroring the facets the frontend exposes.

// CareerFilter selects careers by free-text search and facets.
type CareerFilter struct {
	Query      string
	Industries []string
	Schools    []string
	Majors     []string
}

// InternshipFilter selects internships; MinPay compares against the
// coerced numeric pay (unpaid listings coerce to zero).
type InternshipFilter struct {
	Query      string
	Industries []string
	Schools    []string
	Majors     []string
	MinPay     float64
}

// CourseFilter selects courses; Days matches any selected meeting day.
type CourseFilter struct {
	Query      string
	Industries []string
	Schools    []string
	Majors     []string
	Days       []string
}

// ClubFilter selects clubs by facets plus meeting day and time.
type ClubFilter struct {
	Query      string
	Industries []string
	Schools    []string
	Majors     []string
	Days       []string
	Times      []string
}

// PostFilter selects alumni posts by free-text search only.
type PostFilter struct {
	Query string
}

// Careers returns the careers matching the filter, in data-file order.
func (s *Store) Careers(f CareerFilter) []Career {
	out := []Career{}
	for _, c := range s.careers {
		if matchesQuery(f.Query, c.CareerName, c.CareerDesc) &&
			matchesFacet(f.Industries, c.Industry) &&
			matchesFacet(f.Schools, c.School) &&
			matchesFacet(f.Majors, c.Major) {
			out = append(out, c)
		}
	}
	return out
}

// Internships returns the internships matching the filter.
func (s *Store) Internships(f InternshipFilter) []Internship {
	out := []Internship{}
	for _, in := range s.internships {
		if matchesQuery(f.Query, in.InternshipName, in.InternshipDesc) &&
			matchesFacet(f.Industries, in.Industry) &&
			matchesFacet(f.Schools, in.School) &&
			matchesFacet(f.Majors, in.Major) &&
			ParsePay(in.Pay) >= f.MinPay {
			out = append(out, in)
		}
	}
	return out
}

// Courses returns the courses matching the filter.
func (s *Store) Courses(f CourseFilter) []Course {
	out := []Course{}
	for _, c := range s.courses {
		if matchesQuery(f.Query, c.CourseName, c.Code, c.Description) &&
			matchesFacet(f.Industries, c.Industry) &&
			matchesFacet(f.Schools, c.School) &&
			matchesFacet(f.Majors, c.Major) &&
			matchesAnyDay(f.Days, c.Days) {
			out = append(out, c)
		}
	}
	return out
}

// Clubs returns the clubs matching the filter.
func (s *Store) Clubs(f ClubFilter) []Club {
	out := []Club{}
	for _, c := range s.clubs {
		if matchesQuery(f.Query, c.ClubName, c.ClubDesc) &&
			matchesFacet(f.Industries, c.Industry) &&
			matchesFacet(f.Schools, c.School) &&
			matchesFacet(f.Majors, c.Major) &&
			matchesMeetDay(f.Days, c.MeetDay) &&
			matchesFacet(f.Times, c.MeetTime) {
			out = append(out, c)
		}
	}
	return out
}

// Posts returns the alumni posts matching the filter.
func (s *Store) Posts(f PostFilter) []Post {
	out := []Post{}
	for _, p := range s.posts {
		if matchesQuery(f.Query, p.Author, p.Description, p.AuthorTitle) {
			out = append(out, p)
		}
	}
	return out
}

// ParsePay coerces a free-form pay string to a number. "None", empty,
// and non-numeric text all coerce to zero; currency symbols and commas
// are stripped.
func ParsePay(pay string) float64 {
	if pay == "" || strings.EqualFold(pay, "none") {
		return 0
	}
	var b strings.Builder
	for _, r := range pay {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

// matchesAnyDay reports whether any selected day appears in the
// record's day list. No selection matches everything; a record with no
// days never matches an active day filter.
func matchesAnyDay(selected, days []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, want := range selected {
		for _, d := range days {
			if strings.Contains(d, want) {
				return true
			}
		}
	}
	return false
}

// matchesMeetDay matches against a single free-form meeting-day string
// (e.g. "Tuesdays and Thursdays").
func matchesMeetDay(selected []string, meetDay string) bool {
	if len(selected) == 0 {
		return true
	}
	if meetDay == "" {
		return false
	}
	for _, want := range selected {
		if strings.Contains(meetDay, want) {
			return true
		}
	}
	return false
}
