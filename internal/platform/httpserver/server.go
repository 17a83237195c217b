package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	neoservice "neolingo/contexts/curation/neo-service"
	catalogservice "neolingo/contexts/dictionary/catalog-service"
	authorization "neolingo/contexts/identity-access/authorization-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "neolingo/internal/platform/httpserver/docs"
)

type Server struct {
	mux           *http.ServeMux
	logger        *slog.Logger
	addr          string
	authorization authorization.Module
	catalog       catalogservice.Module
	curation      neoservice.Module
}

func New(
	authorizationModule authorization.Module,
	catalogModule catalogservice.Module,
	curationModule neoservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:           http.NewServeMux(),
		logger:        logger,
		addr:          addr,
		authorization: authorizationModule,
		catalog:       catalogModule,
		curation:      curationModule,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the route table for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/authz/v1/check", s.handleAuthzCheck)
	s.mux.HandleFunc("GET /api/authz/v1/users/{user_id}/role", s.handleAuthzUserRole)
	s.mux.HandleFunc("PUT /api/authz/v1/users/{user_id}/role", s.handleAuthzAssignRole)

	s.mux.HandleFunc("POST /api/catalog/v1/requests", s.handleSubmitRequest)
	s.mux.HandleFunc("GET /api/catalog/v1/requests", s.handleListRequests)
	s.mux.HandleFunc("POST /api/catalog/v1/requests/{request_id}/review", s.handleReviewRequest)
	s.mux.HandleFunc("GET /api/catalog/v1/terms", s.handleListTerms)
	s.mux.HandleFunc("GET /api/catalog/v1/terms/{term_id}", s.handleGetTerm)

	s.mux.HandleFunc("POST /api/curation/v1/terms/{term_id}/neos", s.handleSubmitNeos)
	s.mux.HandleFunc("GET /api/curation/v1/terms/{term_id}/neos", s.handleTermNeos)
	s.mux.HandleFunc("POST /api/curation/v1/neos/{neo_id}/rate", s.handleRateNeo)
	s.mux.HandleFunc("GET /api/curation/v1/neos/rated-by-me", s.handleRatedByMe)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
