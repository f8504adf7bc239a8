package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/circlesapp/server/internal/domain"
	"github.com/circlesapp/server/internal/service"
)

type ClubHandler struct {
	clubs service.ClubService
}

func NewClubHandler(clubs service.ClubService) *ClubHandler {
	return &ClubHandler{clubs: clubs}
}

func (h *ClubHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	club, err := h.clubs.CreateClub(r.Context(), userFrom(r), req.Name, req.Description)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, club)
}

func (h *ClubHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, clubFrom(r))
}

func (h *ClubHandler) Update(w http.ResponseWriter, r *http.Request) {
	var changes domain.ClubUpdate
	if !decodeJSON(w, r, &changes) {
		return
	}
	club, err := h.clubs.UpdateClub(r.Context(), userFrom(r), clubFrom(r), changes)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, club)
}

func (h *ClubHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.clubs.DeleteClub(r.Context(), userFrom(r), clubFrom(r)); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *ClubHandler) Members(w http.ResponseWriter, r *http.Request) {
	members, err := h.clubs.Members(r.Context(), clubFrom(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, members)
}

// Expel removes another member. The admin check lives here because the
// removal itself is also reused by club closure, which has its own gate.
func (h *ClubHandler) Expel(w http.ResponseWriter, r *http.Request) {
	actor, club := userFrom(r), clubFrom(r)
	if !club.IsAdmin(actor.ID) {
		respondError(w, r, domain.Forbidden("admin rank required to expel a member"))
		return
	}
	targetID := mux.Vars(r)["userId"]
	if targetID == actor.ID {
		respondError(w, r, domain.Conflict("cannot expel yourself; leave the club instead"))
		return
	}
	if club.IsOwner(targetID) {
		respondError(w, r, domain.Forbidden("the club owner cannot be expelled"))
		return
	}
	if err := h.clubs.ExpelMember(r.Context(), club, targetID); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *ClubHandler) Leave(w http.ResponseWriter, r *http.Request) {
	actor, club := userFrom(r), clubFrom(r)
	if club.IsOwner(actor.ID) {
		respondError(w, r, domain.Conflict("the owner cannot leave; close the club instead"))
		return
	}
	if err := h.clubs.LeaveClub(r.Context(), actor, club); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
