package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	catalogerrors "neolingo/contexts/dictionary/catalog-service/domain/errors"
	cataloghttp "neolingo/contexts/dictionary/catalog-service/transport/http"
	"neolingo/contexts/identity-access/authorization-service/domain/services"
)

func (s *Server) handleSubmitRequest(w http.ResponseWriter, r *http.Request) {
	grant, err := s.authorization.Handler.RequirePermission(
		r.Context(), resolveUserID(r), services.PermissionCreateRequests)
	if err != nil {
		writeAuthzDomainError(w, err)
		return
	}

	var req cataloghttp.SubmitRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCatalogError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.catalog.Handler.SubmitRequestHandler(r.Context(), grant.UserID, req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListRequests(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authorization.Handler.RequirePermission(
		r.Context(), resolveUserID(r), services.PermissionReviewRequests); err != nil {
		writeAuthzDomainError(w, err)
		return
	}

	resp, err := s.catalog.Handler.ListRequestsHandler(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReviewRequest(w http.ResponseWriter, r *http.Request) {
	grant, err := s.authorization.Handler.RequirePermission(
		r.Context(), resolveUserID(r), services.PermissionReviewRequests)
	if err != nil {
		writeAuthzDomainError(w, err)
		return
	}

	var req cataloghttp.ReviewRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCatalogError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.catalog.Handler.ReviewRequestHandler(
		r.Context(), r.PathValue("request_id"), grant.UserID, req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListTerms(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.ListTermsHandler(r.Context(), r.URL.Query().Get("language"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetTerm(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.GetTermHandler(r.Context(), r.PathValue("term_id"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeCatalogDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalogerrors.ErrRequestNotFound),
		errors.Is(err, catalogerrors.ErrTermNotFound):
		writeCatalogError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, catalogerrors.ErrAlreadyReviewed):
		writeCatalogError(w, http.StatusConflict, "already_reviewed", err.Error())
	case errors.Is(err, catalogerrors.ErrInvalidRequestInput),
		errors.Is(err, catalogerrors.ErrInvalidStatus),
		errors.Is(err, catalogerrors.ErrInvalidReviewer):
		writeCatalogError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeCatalogError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeCatalogError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, cataloghttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
