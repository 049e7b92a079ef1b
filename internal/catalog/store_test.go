package catalog

import (
	"testing"
)

func loadStore(t *testing.T) *Store {
	t.Helper()
	s, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return s
}

func TestLoad_AllDataSetsPresent(t *testing.T) {
	s := loadStore(t)

	if n := len(s.Careers(CareerFilter{})); n == 0 {
		t.Error("no careers loaded")
	}
	if n := len(s.Internships(InternshipFilter{})); n == 0 {
		t.Error("no internships loaded")
	}
	if n := len(s.Courses(CourseFilter{})); n == 0 {
		t.Error("no courses loaded")
	}
	if n := len(s.Clubs(ClubFilter{})); n == 0 {
		t.Error("no clubs loaded")
	}
	if n := len(s.Posts(PostFilter{})); n == 0 {
		t.Error("no posts loaded")
	}
}

func TestCareers_QueryMatchesNameAndDescription(t *testing.T) {
	s := loadStore(t)

	// Case-insensitive, matches name or description.
	got := s.Careers(CareerFilter{Query: "DATA"})
	if len(got) == 0 {
		t.Fatal("query matched nothing")
	}
	for _, c := range got {
		if !contains(c.CareerName, "Data") && !contains(c.CareerDesc, "data") {
			t.Errorf("career %q does not match query", c.CareerName)
		}
	}

	if got := s.Careers(CareerFilter{Query: "zzz-no-such-career"}); len(got) != 0 {
		t.Errorf("impossible query matched %d careers", len(got))
	}
}

func TestCareers_FacetsNarrow(t *testing.T) {
	s := loadStore(t)

	all := s.Careers(CareerFilter{})
	tech := s.Careers(CareerFilter{Industries: []string{"Tech"}})
	if len(tech) == 0 || len(tech) >= len(all) {
		t.Fatalf("expected industry facet to narrow results: %d of %d", len(tech), len(all))
	}
	for _, c := range tech {
		if c.Industry != "Tech" {
			t.Errorf("career %q has industry %q", c.CareerName, c.Industry)
		}
	}

	// Multiple selections within a facet are OR'ed.
	either := s.Careers(CareerFilter{Industries: []string{"Tech", "Arts"}})
	if len(either) <= len(tech) {
		t.Errorf("expected Tech+Arts to match more than Tech alone: %d vs %d", len(either), len(tech))
	}
}

func TestInternships_MinPayCoercesUnpaid(t *testing.T) {
	s := loadStore(t)

	paid := s.Internships(InternshipFilter{MinPay: 30})
	if len(paid) == 0 {
		t.Fatal("no internships matched min pay 30")
	}
	for _, in := range paid {
		if ParsePay(in.Pay) < 30 {
			t.Errorf("internship %q with pay %q matched min pay 30", in.InternshipName, in.Pay)
		}
	}

	// "None" coerces to zero and survives only with no minimum.
	all := s.Internships(InternshipFilter{})
	foundUnpaid := false
	for _, in := range all {
		if ParsePay(in.Pay) == 0 {
			foundUnpaid = true
		}
	}
	if !foundUnpaid {
		t.Error("expected at least one unpaid listing in the data set")
	}
}

func TestParsePay(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"45", 45},
		{"None", 0},
		{"none", 0},
		{"", 0},
		{"$22.50/hr", 22.50},
		{"not a number", 0},
	}
	for _, tt := range tests {
		if got := ParsePay(tt.in); got != tt.want {
			t.Errorf("ParsePay(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCourses_DayFilter(t *testing.T) {
	s := loadStore(t)

	got := s.Courses(CourseFilter{Days: []string{"Tue"}})
	if len(got) == 0 {
		t.Fatal("no courses meet on Tue")
	}
	for _, c := range got {
		if !containsDay(c.Days, "Tue") {
			t.Errorf("course %q days %v matched Tue", c.CourseName, c.Days)
		}
	}
}

func TestClubs_MeetDayAndTimeFilters(t *testing.T) {
	s := loadStore(t)

	thursdays := s.Clubs(ClubFilter{Days: []string{"Thursdays"}})
	if len(thursdays) == 0 {
		t.Fatal("no clubs meet on Thursdays")
	}
	for _, c := range thursdays {
		// Free-form meet day strings match by substring
		// ("Mondays and Thursdays" meets on Thursdays).
		if !contains(c.MeetDay, "Thursdays") {
			t.Errorf("club %q meet day %q matched Thursdays", c.ClubName, c.MeetDay)
		}
	}

	afternoon := s.Clubs(ClubFilter{Times: []string{"Afternoon"}})
	for _, c := range afternoon {
		if c.MeetTime != "Afternoon" {
			t.Errorf("club %q meet time %q matched Afternoon", c.ClubName, c.MeetTime)
		}
	}
}

func TestPosts_QuerySearchesAuthorTitleAndBody(t *testing.T) {
	s := loadStore(t)

	byTitle := s.Posts(PostFilter{Query: "consultant"})
	if len(byTitle) == 0 {
		t.Error("expected posts matching author title 'consultant'")
	}

	byAuthor := s.Posts(PostFilter{Query: "sarah"})
	if len(byAuthor) == 0 {
		t.Error("expected posts matching author 'sarah'")
	}
}

func contains(haystack, needle string) bool {
	return matchesQuery(needle, haystack)
}

func containsDay(days []string, day string) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
