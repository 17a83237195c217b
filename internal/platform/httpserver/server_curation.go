package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	neoerrors "neolingo/contexts/curation/neo-service/domain/errors"
	neohttp "neolingo/contexts/curation/neo-service/transport/http"
	"neolingo/contexts/identity-access/authorization-service/domain/services"
)

func (s *Server) handleSubmitNeos(w http.ResponseWriter, r *http.Request) {
	grant, err := s.authorization.Handler.RequirePermission(
		r.Context(), resolveUserID(r), services.PermissionCreateNeos)
	if err != nil {
		writeAuthzDomainError(w, err)
		return
	}

	var req neohttp.SubmitNeosRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCurationError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	req.TermID = r.PathValue("term_id")

	resp, err := s.curation.Handler.SubmitNeosHandler(r.Context(), grant.UserID, req)
	if err != nil {
		writeCurationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// handleRateNeo answers with the success/message envelope on both paths:
// domain failures become a non-success envelope instead of a bare error body.
func (s *Server) handleRateNeo(w http.ResponseWriter, r *http.Request) {
	grant, err := s.authorization.Handler.RequirePermission(
		r.Context(), resolveUserID(r), services.PermissionRateNeos)
	if err != nil {
		writeAuthzDomainError(w, err)
		return
	}

	var req neohttp.RateNeoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, neohttp.RateNeoResponse{
			Success: false,
			Message: "request body must be valid JSON",
			Data:    []neohttp.RatedNeoItem{},
		})
		return
	}

	resp, err := s.curation.Handler.RateNeoHandler(r.Context(), r.PathValue("neo_id"), grant.UserID, req)
	if err != nil {
		writeJSON(w, rateStatus(err), neohttp.RateNeoResponse{
			Success: false,
			Message: rateMessage(err),
			Data:    []neohttp.RatedNeoItem{},
		})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTermNeos(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	wantRated := false
	if raw := query.Get("rated"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			writeCurationError(w, http.StatusBadRequest, "invalid_rated", "rated must be a boolean")
			return
		}
		wantRated = parsed
	}

	termID := r.PathValue("term_id")
	resp, err := s.curation.Handler.TermNeosHandler(r.Context(), termID, wantRated, resolveUserID(r))
	if err != nil {
		if errors.Is(err, neoerrors.ErrTermNotFound) {
			writeCurationError(w, http.StatusNotFound, "term_not_found", err.Error())
			return
		}
		// Listing reads degrade to an empty page rather than surfacing
		// storage detail to clients.
		s.logger.Error("term neos listing degraded",
			"event", "http_term_neos_degraded",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"term_id", termID,
			"error", err.Error(),
		)
		writeJSON(w, http.StatusOK, neohttp.TermNeosResponse{
			TermID: termID,
			Items:  []neohttp.RankedNeoItem{},
		})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRatedByMe(w http.ResponseWriter, r *http.Request) {
	userID := resolveUserID(r)
	if userID == "" {
		writeCurationError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var neoIDs []string
	for _, raw := range strings.Split(r.URL.Query().Get("neo_ids"), ",") {
		if trimmed := strings.TrimSpace(raw); trimmed != "" {
			neoIDs = append(neoIDs, trimmed)
		}
	}

	resp, err := s.curation.Handler.RatedByMeHandler(r.Context(), userID, neoIDs)
	if err != nil {
		writeCurationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func rateStatus(err error) int {
	switch {
	case errors.Is(err, neoerrors.ErrNeoNotFound):
		return http.StatusNotFound
	case errors.Is(err, neoerrors.ErrInvalidRating):
		return http.StatusBadRequest
	case errors.Is(err, neoerrors.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func rateMessage(err error) string {
	switch {
	case errors.Is(err, neoerrors.ErrNeoNotFound),
		errors.Is(err, neoerrors.ErrInvalidRating),
		errors.Is(err, neoerrors.ErrConflict):
		return err.Error()
	default:
		return "internal server error"
	}
}

func writeCurationDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, neoerrors.ErrNeoNotFound),
		errors.Is(err, neoerrors.ErrTermNotFound):
		writeCurationError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, neoerrors.ErrBatchLimitExceeded):
		writeCurationError(w, http.StatusUnprocessableEntity, "batch_limit_exceeded", err.Error())
	case errors.Is(err, neoerrors.ErrContentRejected):
		writeCurationError(w, http.StatusUnprocessableEntity, "content_rejected", err.Error())
	case errors.Is(err, neoerrors.ErrInvalidNeoInput),
		errors.Is(err, neoerrors.ErrInvalidRating):
		writeCurationError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, neoerrors.ErrConflict):
		writeCurationError(w, http.StatusConflict, "conflict", err.Error())
	default:
		writeCurationError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeCurationError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, neohttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
