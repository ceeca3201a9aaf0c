// Package server exposes the muse functionality over HTTP: collection
// search proxied to the Met API and poster generation rendered as PNG.
//
// The API is a thin JSON surface over pkg/met and pkg/poster:
//
//	GET /healthz                     liveness probe
//	GET /api/departments             curatorial departments
//	GET /api/search?q=...            search with client-side pagination
//	GET /api/objects/{objectID}      one object's metadata
//	GET /api/poster?seed=...         generated poster as image/png
//
// Errors are returned as {"error": ..., "code": ...} with the structured
// codes from pkg/errors.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/musecli/muse/pkg/errors"
	"github.com/musecli/muse/pkg/met"
)

// Pagination bounds for /api/search.
const (
	defaultPageSize = 24
	maxPageSize     = 100
)

// Server handles HTTP requests for search and poster generation.
type Server struct {
	met    *met.Client
	logger *log.Logger
	router chi.Router
}

// New creates a Server backed by the given Met client.
func New(metClient *met.Client, logger *log.Logger) *Server {
	s := &Server{
		met:    metClient,
		logger: logger,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	s.router.Use(requestID)
	s.router.Use(s.logRequests)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Get("/api/departments", s.handleDepartments)
	s.router.Get("/api/search", s.handleSearch)
	s.router.Get("/api/objects/{objectID}", s.handleObject)
	s.router.Get("/api/poster", s.handlePoster)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDepartments(w http.ResponseWriter, r *http.Request) {
	depts, err := s.met.Departments(r.Context(), false)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"departments": depts})
}

// searchResponse is one page of search results.
type searchResponse struct {
	Total      int   `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
	ObjectIDs  []int `json:"object_ids"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := met.SearchOptions{
		Query:           q.Get("q"),
		HasImages:       q.Get("hasImages") == "true",
		IsHighlight:     q.Get("isHighlight") == "true",
		IsOnView:        q.Get("isOnView") == "true",
		ArtistOrCulture: q.Get("artistOrCulture") == "true",
		TitleOnly:       q.Get("title") == "true",
		TagsOnly:        q.Get("tags") == "true",
		Medium:          q.Get("medium"),
		GeoLocation:     q.Get("geoLocation"),
	}
	if v, ok := intParam(q.Get("departmentId")); ok {
		opts.DepartmentID = &v
	}
	begin, okBegin := intParam(q.Get("dateBegin"))
	end, okEnd := intParam(q.Get("dateEnd"))
	if okBegin && okEnd {
		opts.DateBegin, opts.DateEnd = &begin, &end
	}

	page := 1
	if v, ok := intParam(q.Get("page")); ok && v >= 1 {
		page = v
	}
	perPage := defaultPageSize
	if v, ok := intParam(q.Get("per_page")); ok && v >= 1 {
		perPage = min(v, maxPageSize)
	}

	result, err := s.met.Search(r.Context(), opts, q.Get("refresh") == "true")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Total:      result.Total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: met.TotalPages(len(result.ObjectIDs), perPage),
		ObjectIDs:  met.Page(result.ObjectIDs, page, perPage),
	})
}

func (s *Server) handleObject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "objectID"))
	if err != nil {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "object id must be an integer"))
		return
	}
	obj, err := s.met.Object(r.Context(), id, false)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, obj)
}

// intParam parses an optional integer query parameter.
func intParam(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps structured error codes to HTTP statuses and logs
// server-side failures.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidParameter, errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeObjectNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeNetwork, errors.ErrCodeTimeout:
		status = http.StatusBadGateway
	case errors.ErrCodeRateLimited:
		status = http.StatusTooManyRequests
	}

	if status >= 500 {
		s.logger.Error("request failed", "request_id", idFromContext(r.Context()), "err", err)
	}
	writeJSON(w, status, map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(code),
	})
}
