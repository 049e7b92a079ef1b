package catalog

// Catalog records mirror the JSON data files. Field casing follows the
// data files themselves (mixed by origin); facet fields are optional and
// an absent value simply never matches a facet filter.

// Career is one explorable career path.
type Career struct {
	CareerID   string `json:"careerID"`
	CareerName string `json:"careerName"`
	CareerDesc string `json:"careerDesc"`
	Industry   string `json:"Industry,omitempty"`
	School     string `json:"School,omitempty"`
	Major      string `json:"Major,omitempty"`
	Image      string `json:"image,omitempty"`
}

// Internship is one internship listing. Pay is free-form text; "None"
// and non-numeric values coerce to zero when filtering.
type Internship struct {
	InternshipName string `json:"internshipName"`
	InternshipDesc string `json:"internshipDesc"`
	Industry       string `json:"Industry,omitempty"`
	School         string `json:"School,omitempty"`
	Major          string `json:"Major,omitempty"`
	Pay            string `json:"pay,omitempty"`
}

// Course is one course listing.
type Course struct {
	CourseName  string   `json:"courseName"`
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Industry    string   `json:"Industry,omitempty"`
	School      string   `json:"School,omitempty"`
	Major       string   `json:"Major,omitempty"`
	Days        []string `json:"Days,omitempty"`
}

// Club is one student club listing.
type Club struct {
	ClubName string `json:"clubName"`
	ClubDesc string `json:"clubDesc"`
	Industry string `json:"Industry,omitempty"`
	School   string `json:"School,omitempty"`
	Major    string `json:"Major,omitempty"`
	MeetDay  string `json:"MeetDay,omitempty"`
	MeetTime string `json:"MeetTime,omitempty"`
}

// Post is one alumni feed post.
type Post struct {
	Author      string `json:"author"`
	AuthorTitle string `json:"authorTitle"`
	Description string `json:"description"`
	Date        string `json:"date,omitempty"`
	Image       string `json:"image,omitempty"`
}
