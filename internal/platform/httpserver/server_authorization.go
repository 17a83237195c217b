package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	authzerrors "neolingo/contexts/identity-access/authorization-service/domain/errors"
	authzhttp "neolingo/contexts/identity-access/authorization-service/transport/http"
)

func (s *Server) handleAuthzCheck(w http.ResponseWriter, r *http.Request) {
	var req authzhttp.CheckPermissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthzError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	userID := resolveUserID(r)
	resp, err := s.authorization.Handler.CheckPermissionHandler(r.Context(), userID, req)
	if err != nil {
		writeAuthzDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAuthzUserRole(w http.ResponseWriter, r *http.Request) {
	resp, err := s.authorization.Handler.UserRoleHandler(r.Context(), r.PathValue("user_id"))
	if err != nil {
		writeAuthzDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAuthzAssignRole(w http.ResponseWriter, r *http.Request) {
	var req authzhttp.AssignRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthzError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.authorization.Handler.AssignRoleHandler(
		r.Context(),
		resolveUserID(r),
		r.PathValue("user_id"),
		req,
	)
	if err != nil {
		writeAuthzDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeAuthzDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authzerrors.ErrUnauthenticated):
		writeAuthzError(w, http.StatusUnauthorized, "unauthenticated", err.Error())
	case errors.Is(err, authzerrors.ErrForbidden):
		writeAuthzError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, authzerrors.ErrInvalidUserID),
		errors.Is(err, authzerrors.ErrInvalidRole),
		errors.Is(err, authzerrors.ErrInvalidActorID):
		writeAuthzError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeAuthzError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeAuthzError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, authzhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func resolveUserID(r *http.Request) string {
	if fromHeader := strings.TrimSpace(r.Header.Get("X-User-Id")); fromHeader != "" {
		return fromHeader
	}
	return strings.TrimSpace(r.Header.Get("X-Subject-Id"))
}
