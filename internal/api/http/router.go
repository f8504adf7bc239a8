package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/circlesapp/server/internal/repository"
	"github.com/circlesapp/server/internal/security"
	"github.com/circlesapp/server/internal/service"
)

// Services bundles everything the router needs.
type Services struct {
	Auth       service.AuthService
	Users      service.UserService
	Clubs      service.ClubService
	Applicants service.ApplicantService
	Posts      service.PostService
	Awards     service.AwardService
	Budgets    service.BudgetService
	Calendar   service.CalendarService
}

// NewRouter builds the full route tree. Everything except registration,
// login, token refresh and the public club listings sits behind the auth
// middleware; club-scoped routes additionally resolve {clubname} before
// the handler runs.
func NewRouter(svcs Services, tokens security.TokenManager, users repository.UserRepository) *mux.Router {
	r := mux.NewRouter()

	authHandler := NewAuthHandler(svcs.Auth)
	userHandler := NewUserHandler(svcs.Users)
	clubHandler := NewClubHandler(svcs.Clubs)
	applicantHandler := NewApplicantHandler(svcs.Applicants)
	resourceHandler := NewResourceHandler(svcs.Posts, svcs.Awards, svcs.Budgets, svcs.Calendar)

	auth := authMiddleware(tokens, users)
	clubScope := clubMiddleware(svcs.Clubs)

	r.HandleFunc("/api/v1/auth/register", authHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/auth/login", authHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)

	public := r.PathPrefix("/api/v1/club/{clubname}").Subrouter()
	public.Use(clubScope)
	public.HandleFunc("/posts/public", resourceHandler.ListPublicPosts).Methods(http.MethodGet)
	public.HandleFunc("/awards/public", resourceHandler.ListPublicAwards).Methods(http.MethodGet)
	public.HandleFunc("/budgets/public", resourceHandler.ListPublicBudgets).Methods(http.MethodGet)
	public.HandleFunc("/calendar/public", resourceHandler.ListPublicCalendarEntries).Methods(http.MethodGet)

	user := r.PathPrefix("/api/v1/user").Subrouter()
	user.Use(auth)
	user.HandleFunc("", userHandler.Profile).Methods(http.MethodGet)
	user.HandleFunc("", userHandler.Update).Methods(http.MethodPut)
	user.HandleFunc("", userHandler.Withdraw).Methods(http.MethodDelete)
	user.HandleFunc("/password", userHandler.ChangePassword).Methods(http.MethodPut)
	user.HandleFunc("/push-token", userHandler.RegisterPushToken).Methods(http.MethodPut)
	user.HandleFunc("/alarms", userHandler.Alarms).Methods(http.MethodGet)
	user.HandleFunc("/alarms", userHandler.ClearAlarms).Methods(http.MethodDelete)
	user.HandleFunc("/alarms/{id}", userHandler.RemoveAlarm).Methods(http.MethodDelete)

	clubs := r.PathPrefix("/api/v1/club").Subrouter()
	clubs.Use(auth)
	clubs.HandleFunc("/create", clubHandler.Create).Methods(http.MethodPost)

	club := clubs.PathPrefix("/{clubname}").Subrouter()
	club.Use(clubScope)
	club.HandleFunc("", clubHandler.Get).Methods(http.MethodGet)
	club.HandleFunc("", clubHandler.Update).Methods(http.MethodPut)
	club.HandleFunc("", clubHandler.Delete).Methods(http.MethodDelete)
	club.HandleFunc("/members", clubHandler.Members).Methods(http.MethodGet)
	club.HandleFunc("/members/{userId}", clubHandler.Expel).Methods(http.MethodDelete)
	club.HandleFunc("/leave", clubHandler.Leave).Methods(http.MethodPost)

	club.HandleFunc("/applicant", applicantHandler.Apply).Methods(http.MethodPost)
	club.HandleFunc("/applicant", applicantHandler.Modify).Methods(http.MethodPut)
	club.HandleFunc("/applicant/mine", applicantHandler.Mine).Methods(http.MethodGet)
	club.HandleFunc("/applicants", applicantHandler.List).Methods(http.MethodGet)
	club.HandleFunc("/applicant/{id}/accept", applicantHandler.Accept).Methods(http.MethodPost)
	club.HandleFunc("/applicant/{id}/reject", applicantHandler.Reject).Methods(http.MethodPost)

	club.HandleFunc("/post", resourceHandler.WritePost).Methods(http.MethodPost)
	club.HandleFunc("/posts", resourceHandler.ListPosts).Methods(http.MethodGet)
	club.HandleFunc("/post/{id}", resourceHandler.ModifyPost).Methods(http.MethodPut)
	club.HandleFunc("/post/{id}", resourceHandler.DeletePost).Methods(http.MethodDelete)

	club.HandleFunc("/award", resourceHandler.WriteAward).Methods(http.MethodPost)
	club.HandleFunc("/awards", resourceHandler.ListAwards).Methods(http.MethodGet)
	club.HandleFunc("/award/{id}", resourceHandler.DeleteAward).Methods(http.MethodDelete)

	club.HandleFunc("/budget", resourceHandler.WriteBudget).Methods(http.MethodPost)
	club.HandleFunc("/budgets", resourceHandler.ListBudgets).Methods(http.MethodGet)
	club.HandleFunc("/budget/{id}", resourceHandler.DeleteBudget).Methods(http.MethodDelete)

	club.HandleFunc("/calendar", resourceHandler.WriteCalendarEntry).Methods(http.MethodPost)
	club.HandleFunc("/calendar", resourceHandler.ListCalendarEntries).Methods(http.MethodGet)
	club.HandleFunc("/calendar/{id}", resourceHandler.DeleteCalendarEntry).Methods(http.MethodDelete)

	return r
}
