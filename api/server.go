package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"weather-now/datasource"
	"weather-now/models"

	"github.com/gorilla/mux"
)

// Searcher resolves a place name to a current-hour report
type Searcher interface {
	Lookup(ctx context.Context, name string) (models.Report, error)
}

// Server represents the API server
type Server struct {
	searcher      Searcher
	store         *ReportStore
	metrics       *Metrics
	searchTimeout time.Duration
	router        *mux.Router
	server        *http.Server
}

// NewServer creates a new API server
func NewServer(searcher Searcher, store *ReportStore, metrics *Metrics, port int, searchTimeout time.Duration) *Server {
	router := mux.NewRouter().StrictSlash(true)

	s := &Server{
		searcher:      searcher,
		store:         store,
		metrics:       metrics,
		searchTimeout: searchTimeout,
		router:        router,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}

	router.Use(requestID, logRequests)

	router.HandleFunc("/api/weather", s.handleSearch).Methods(http.MethodGet)
	router.HandleFunc("/api/weather/last", s.handleLast).Methods(http.MethodGet)
	router.HandleFunc("/api/weather/location/{name}", s.handleSearch).Methods(http.MethodGet)

	router.HandleFunc("/api/health", s.handleHealthCheck).Methods(http.MethodGet)
	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	return s
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins the API server
func (s *Server) Start() error {
	log.Printf("Starting API server on %s", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// handleSearch runs one search for ?location= or the {name} path segment
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	name, ok := mux.Vars(r)["name"]
	if !ok {
		name = r.URL.Query().Get("location")
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.searchTimeout)
	defer cancel()

	start := time.Now()
	report, err := s.searcher.Lookup(ctx, name)
	s.metrics.Observe(err, time.Since(start))
	if err != nil {
		log.Printf("Error fetching weather for %q: %v", name, err)
		writeError(w, err)
		return
	}

	s.store.Update(report)
	writeJSON(w, http.StatusOK, report)
}

// handleLast returns the report of the latest successful search
func (s *Server) handleLast(w http.ResponseWriter, r *http.Request) {
	report, updated, ok := s.store.Last()
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error:   "no_search_yet",
			Message: "No weather has been fetched yet",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"report":  report,
		"updated": updated,
	})
}

// handleHealthCheck provides a simple health check endpoint
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// StatusFor maps a search failure to the HTTP status returned to clients
func StatusFor(err error) int {
	switch datasource.KindOf(err) {
	case datasource.KindBadInput:
		return http.StatusBadRequest
	case datasource.KindNoCandidate:
		return http.StatusNotFound
	case datasource.KindNetwork, datasource.KindHTTPStatus, datasource.KindParse:
		if errors.Is(err, context.DeadlineExceeded) {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, StatusFor(err), errorResponse{
		Error:   datasource.KindOf(err).String(),
		Message: err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
