package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/circlesapp/server/internal/domain"
	"github.com/circlesapp/server/internal/service"
)

type ApplicantHandler struct {
	applicants service.ApplicantService
}

func NewApplicantHandler(applicants service.ApplicantService) *ApplicantHandler {
	return &ApplicantHandler{applicants: applicants}
}

func (h *ApplicantHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Introduction string `json:"introduction"`
		Note         string `json:"note"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	app, err := h.applicants.Apply(r.Context(), userFrom(r), clubFrom(r), &domain.Applicant{
		Introduction: req.Introduction,
		Note:         req.Note,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, app)
}

func (h *ApplicantHandler) Mine(w http.ResponseWriter, r *http.Request) {
	app, err := h.applicants.Mine(r.Context(), userFrom(r), clubFrom(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, app)
}

func (h *ApplicantHandler) Modify(w http.ResponseWriter, r *http.Request) {
	var changes domain.ApplicantUpdate
	if !decodeJSON(w, r, &changes) {
		return
	}
	app, err := h.applicants.Modify(r.Context(), userFrom(r), clubFrom(r), changes)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, app)
}

func (h *ApplicantHandler) List(w http.ResponseWriter, r *http.Request) {
	apps, err := h.applicants.ListByClub(r.Context(), userFrom(r), clubFrom(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, apps)
}

func (h *ApplicantHandler) Accept(w http.ResponseWriter, r *http.Request) {
	app, err := h.applicants.Accept(r.Context(), userFrom(r), clubFrom(r), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, app)
}

func (h *ApplicantHandler) Reject(w http.ResponseWriter, r *http.Request) {
	app, err := h.applicants.Reject(r.Context(), userFrom(r), clubFrom(r), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, app)
}
