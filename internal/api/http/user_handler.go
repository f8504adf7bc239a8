package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/circlesapp/server/internal/domain"
	"github.com/circlesapp/server/internal/service"
)

type UserHandler struct {
	users service.UserService
}

func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Profile(r.Context(), userFrom(r).ID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var changes domain.UserUpdate
	if !decodeJSON(w, r, &changes) {
		return
	}
	user, err := h.users.UpdateProfile(r.Context(), userFrom(r), changes)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.users.ChangePassword(r.Context(), userFrom(r), req.Password); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *UserHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	if err := h.users.Withdraw(r.Context(), userFrom(r)); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *UserHandler) RegisterPushToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.users.RegisterPushToken(r.Context(), userFrom(r), req.Token); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *UserHandler) Alarms(w http.ResponseWriter, r *http.Request) {
	alarms, err := h.users.Alarms(r.Context(), userFrom(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, alarms)
}

func (h *UserHandler) RemoveAlarm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid alarm id"})
		return
	}
	if err := h.users.RemoveAlarm(r.Context(), userFrom(r), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *UserHandler) ClearAlarms(w http.ResponseWriter, r *http.Request) {
	if err := h.users.ClearAlarms(r.Context(), userFrom(r)); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
