package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/circlesapp/server/internal/domain"
	"github.com/circlesapp/server/internal/service"
)

// ResourceHandler serves the capability-gated club resources. The four
// resource families share one request shape (write, list, delete by id)
// so they live together.
type ResourceHandler struct {
	posts    service.PostService
	awards   service.AwardService
	budgets  service.BudgetService
	calendar service.CalendarService
}

func NewResourceHandler(
	posts service.PostService,
	awards service.AwardService,
	budgets service.BudgetService,
	calendar service.CalendarService,
) *ResourceHandler {
	return &ResourceHandler{posts: posts, awards: awards, budgets: budgets, calendar: calendar}
}

func (h *ResourceHandler) WritePost(w http.ResponseWriter, r *http.Request) {
	var post domain.Post
	if !decodeJSON(w, r, &post) {
		return
	}
	created, err := h.posts.Write(r.Context(), userFrom(r), clubFrom(r), &post)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *ResourceHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.List(r.Context(), userFrom(r), clubFrom(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, posts)
}

// ListPublicPosts serves anonymous visitors; it is mounted outside the
// auth chain, as are the other public listings below.
func (h *ResourceHandler) ListPublicPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.ListPublic(r.Context(), clubFrom(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, posts)
}

func (h *ResourceHandler) ModifyPost(w http.ResponseWriter, r *http.Request) {
	var changes domain.PostUpdate
	if !decodeJSON(w, r, &changes) {
		return
	}
	post, err := h.posts.Modify(r.Context(), userFrom(r), clubFrom(r), mux.Vars(r)["id"], changes)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, post)
}

func (h *ResourceHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	if err := h.posts.Delete(r.Context(), userFrom(r), clubFrom(r), mux.Vars(r)["id"]); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *ResourceHandler) WriteAward(w http.ResponseWriter, r *http.Request) {
	var award domain.Award
	if !decodeJSON(w, r, &award) {
		return
	}
	created, err := h.awards.Write(r.Context(), userFrom(r), clubFrom(r), &award)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *ResourceHandler) ListAwards(w http.ResponseWriter, r *http.Request) {
	awards, err := h.awards.List(r.Context(), userFrom(r), clubFrom(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, awards)
}

func (h *ResourceHandler) ListPublicAwards(w http.ResponseWriter, r *http.Request) {
	awards, err := h.awards.ListPublic(r.Context(), clubFrom(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, awards)
}

func (h *ResourceHandler) DeleteAward(w http.ResponseWriter, r *http.Request) {
	if err := h.awards.Delete(r.Context(), userFrom(r), clubFrom(r), mux.Vars(r)["id"]); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *ResourceHandler) WriteBudget(w http.ResponseWriter, r *http.Request) {
	var budget domain.Budget
	if !decodeJSON(w, r, &budget) {
		return
	}
	created, err := h.budgets.Write(r.Context(), userFrom(r), clubFrom(r), &budget)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *ResourceHandler) ListBudgets(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.budgets.List(r.Context(), userFrom(r), clubFrom(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, budgets)
}

func (h *ResourceHandler) ListPublicBudgets(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.budgets.ListPublic(r.Context(), clubFrom(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, budgets)
}

func (h *ResourceHandler) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	if err := h.budgets.Delete(r.Context(), userFrom(r), clubFrom(r), mux.Vars(r)["id"]); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *ResourceHandler) WriteCalendarEntry(w http.ResponseWriter, r *http.Request) {
	var entry domain.CalendarEntry
	if !decodeJSON(w, r, &entry) {
		return
	}
	created, err := h.calendar.Write(r.Context(), userFrom(r), clubFrom(r), &entry)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *ResourceHandler) ListCalendarEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.calendar.List(r.Context(), userFrom(r), clubFrom(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

func (h *ResourceHandler) ListPublicCalendarEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.calendar.ListPublic(r.Context(), clubFrom(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

func (h *ResourceHandler) DeleteCalendarEntry(w http.ResponseWriter, r *http.Request) {
	if err := h.calendar.Delete(r.Context(), userFrom(r), clubFrom(r), mux.Vars(r)["id"]); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
