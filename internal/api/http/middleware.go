package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/circlesapp/server/internal/domain"
	"github.com/circlesapp/server/internal/repository"
	"github.com/circlesapp/server/internal/security"
	"github.com/circlesapp/server/internal/service"
)

type contextKey string

const (
	ctxKeyUser contextKey = "user"
	ctxKeyClub contextKey = "club"
)

func userFrom(r *http.Request) *domain.User {
	user, _ := r.Context().Value(ctxKeyUser).(*domain.User)
	return user
}

func clubFrom(r *http.Request) *domain.Club {
	club, _ := r.Context().Value(ctxKeyClub).(*domain.Club)
	return club
}

// authMiddleware validates the bearer token and loads the account into
// the request context. Withdrawn accounts are rejected even with a
// still-valid token.
func authMiddleware(tokens security.TokenManager, users repository.UserRepository) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				respondJSON(w, http.StatusUnauthorized, errorBody{Error: "missing bearer token"})
				return
			}
			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				respondJSON(w, http.StatusUnauthorized, errorBody{Error: "invalid or expired token"})
				return
			}
			if claims.Type != security.TokenTypeAccess {
				respondJSON(w, http.StatusUnauthorized, errorBody{Error: "access token required"})
				return
			}

			user, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil {
				if domain.IsKind(err, domain.KindNotFound) {
					respondJSON(w, http.StatusUnauthorized, errorBody{Error: "account no longer exists"})
					return
				}
				respondError(w, r, err)
				return
			}
			if user.IsWithdrawn {
				respondJSON(w, http.StatusUnauthorized, errorBody{Error: "account has been withdrawn"})
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// clubMiddleware resolves the {clubname} path segment into a fully
// hydrated club, so handlers downstream never see a dangling name.
func clubMiddleware(clubs service.ClubService) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			name := mux.Vars(r)["clubname"]
			club, err := clubs.GetByName(r.Context(), name)
			if err != nil {
				respondError(w, r, err)
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyClub, club)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
