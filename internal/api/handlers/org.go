package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/Harshitk-cp/landlord/internal/api/middleware"
	"github.com/Harshitk-cp/landlord/internal/metrics"
	"github.com/Harshitk-cp/landlord/internal/service"
)

type OrgHandler struct {
	svc *service.OrgService
}

func NewOrgHandler(svc *service.OrgService) *OrgHandler {
	return &OrgHandler{svc: svc}
}

type createOrgRequest struct {
	OrganizationName string `json:"organization_name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
}

type updateOrgRequest struct {
	OrganizationName string `json:"organization_name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
}

type deleteOrgResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// orgNameParam returns the {name} path value. Organization names may contain
// spaces and other characters chi leaves percent-encoded when the raw path
// does not round-trip.
func orgNameParam(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	return name
}

func (h *OrgHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrgRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if msg := validateOrgName(req.OrganizationName); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if msg := validateEmail(req.Email); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if msg := validatePassword(req.Password); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	org, err := h.svc.Create(r.Context(), req.OrganizationName, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateName),
			errors.Is(err, service.ErrDuplicateEmail):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to create organization")
		}
		return
	}

	metrics.OrgOperations.WithLabelValues("create").Inc()
	writeJSON(w, http.StatusCreated, org)
}

func (h *OrgHandler) Get(w http.ResponseWriter, r *http.Request) {
	org, err := h.svc.Get(r.Context(), orgNameParam(r))
	if err != nil {
		if errors.Is(err, service.ErrOrgNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get organization")
		return
	}

	metrics.OrgOperations.WithLabelValues("get").Inc()
	writeJSON(w, http.StatusOK, org)
}

func (h *OrgHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req updateOrgRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if msg := validateOrgName(req.OrganizationName); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if msg := validateEmail(req.Email); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if msg := validatePassword(req.Password); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	org, err := h.svc.Update(r.Context(), orgNameParam(r), service.UpdateParams{
		Name:     req.OrganizationName,
		Email:    req.Email,
		Password: req.Password,
	}, claims)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthorized):
			writeError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrOrgNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrDuplicateName),
			errors.Is(err, service.ErrDuplicateEmail):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to update organization")
		}
		return
	}

	metrics.OrgOperations.WithLabelValues("update").Inc()
	writeJSON(w, http.StatusOK, org)
}

func (h *OrgHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	name := orgNameParam(r)
	if err := h.svc.Delete(r.Context(), name, claims); err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthorized):
			writeError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrOrgNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to delete organization")
		}
		return
	}

	metrics.OrgOperations.WithLabelValues("delete").Inc()
	writeJSON(w, http.StatusOK, deleteOrgResponse{
		Message: fmt.Sprintf("Organization '%s' deleted successfully", name),
		Success: true,
	})
}
