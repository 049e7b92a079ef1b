package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"nextstep/internal/catalog"
	"nextstep/internal/httputil"
)

// CatalogHandler serves the browsable catalog data sets with linear
// predicate filtering driven by query parameters. Facet parameters
// (industry, school, major, day, time) repeat; q is free-text search.
type CatalogHandler struct {
	store  *catalog.Store
	logger *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(store *catalog.Store, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		store:  store,
		logger: logger,
	}
}

// ListCareers returns careers matching the query filters
// GET /api/careers
func (h *CatalogHandler) ListCareers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	httputil.RespondJSON(w, http.StatusOK, h.store.Careers(catalog.CareerFilter{
		Query:      q.Get("q"),
		Industries: q["industry"],
		Schools:    q["school"],
		Majors:     q["major"],
	}))
}

// ListInternships returns internships matching the query filters
// GET /api/internships
func (h *CatalogHandler) ListInternships(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var minPay float64
	if raw := q.Get("min_pay"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "min_pay must be a number")
			return
		}
		minPay = v
	}

	httputil.RespondJSON(w, http.StatusOK, h.store.Internships(catalog.InternshipFilter{
		Query:      q.Get("q"),
		Industries: q["industry"],
		Schools:    q["school"],
		Majors:     q["major"],
		MinPay:     minPay,
	}))
}

// ListCourses returns courses matching the query filters
// GET /api/courses
func (h *CatalogHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	httputil.RespondJSON(w, http.StatusOK, h.store.Courses(catalog.CourseFilter{
		Query:      q.Get("q"),
		Industries: q["industry"],
		Schools:    q["school"],
		Majors:     q["major"],
		Days:       q["day"],
	}))
}

// ListClubs returns clubs matching the query filters
// GET /api/clubs
func (h *CatalogHandler) ListClubs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	httputil.RespondJSON(w, http.StatusOK, h.store.Clubs(catalog.ClubFilter{
		Query:      q.Get("q"),
		Industries: q["industry"],
		Schools:    q["school"],
		Majors:     q["major"],
		Days:       q["day"],
		Times:      q["time"],
	}))
}

// ListFeed returns alumni posts matching the search query
// GET /api/feed
func (h *CatalogHandler) ListFeed(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.store.Posts(catalog.PostFilter{
		Query: r.URL.Query().Get("q"),
	}))
}
