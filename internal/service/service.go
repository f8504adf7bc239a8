package service

import (
	"context"

	"github.com/circlesapp/server/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error) // user, access, refresh
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type UserService interface {
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User, changes domain.UserUpdate) (*domain.User, error)
	ChangePassword(ctx context.Context, user *domain.User, newPassword string) error
	Withdraw(ctx context.Context, user *domain.User) error
	RegisterPushToken(ctx context.Context, user *domain.User, token string) error
	Alarms(ctx context.Context, user *domain.User) ([]domain.Alarm, error)
	RemoveAlarm(ctx context.Context, user *domain.User, alarmID int64) error
	ClearAlarms(ctx context.Context, user *domain.User) error
}

type ClubService interface {
	CreateClub(ctx context.Context, owner *domain.User, name, description string) (*domain.Club, error)
	GetByName(ctx context.Context, name string) (*domain.Club, error)
	UpdateClub(ctx context.Context, actor *domain.User, club *domain.Club, changes domain.ClubUpdate) (*domain.Club, error)
	DeleteClub(ctx context.Context, actor *domain.User, club *domain.Club) error
	ExpelMember(ctx context.Context, club *domain.Club, targetUserID string) error
	LeaveClub(ctx context.Context, actor *domain.User, club *domain.Club) error
	Members(ctx context.Context, club *domain.Club) ([]domain.User, error)
}

type ApplicantService interface {
	Apply(ctx context.Context, actor *domain.User, club *domain.Club, app *domain.Applicant) (*domain.Applicant, error)
	Mine(ctx context.Context, actor *domain.User, club *domain.Club) (*domain.Applicant, error)
	Modify(ctx context.Context, actor *domain.User, club *domain.Club, changes domain.ApplicantUpdate) (*domain.Applicant, error)
	ListByClub(ctx context.Context, actor *domain.User, club *domain.Club) ([]domain.Applicant, error)
	Accept(ctx context.Context, actor *domain.User, club *domain.Club, applicantID string) (*domain.Applicant, error)
	Reject(ctx context.Context, actor *domain.User, club *domain.Club, applicantID string) (*domain.Applicant, error)
}

type PostService interface {
	Write(ctx context.Context, actor *domain.User, club *domain.Club, post *domain.Post) (*domain.Post, error)
	List(ctx context.Context, actor *domain.User, club *domain.Club) ([]domain.Post, error)
	ListPublic(ctx context.Context, club *domain.Club) ([]domain.Post, error)
	Modify(ctx context.Context, actor *domain.User, club *domain.Club, postID string, changes domain.PostUpdate) (*domain.Post, error)
	Delete(ctx context.Context, actor *domain.User, club *domain.Club, postID string) error
}

type AwardService interface {
	Write(ctx context.Context, actor *domain.User, club *domain.Club, award *domain.Award) (*domain.Award, error)
	List(ctx context.Context, actor *domain.User, club *domain.Club) ([]domain.Award, error)
	ListPublic(ctx context.Context, club *domain.Club) ([]domain.Award, error)
	Delete(ctx context.Context, actor *domain.User, club *domain.Club, awardID string) error
}

type BudgetService interface {
	Write(ctx context.Context, actor *domain.User, club *domain.Club, budget *domain.Budget) (*domain.Budget, error)
	List(ctx context.Context, actor *domain.User, club *domain.Club) ([]domain.Budget, error)
	ListPublic(ctx context.Context, club *domain.Club) ([]domain.Budget, error)
	Delete(ctx context.Context, actor *domain.User, club *domain.Club, budgetID string) error
}

type CalendarService interface {
	Write(ctx context.Context, actor *domain.User, club *domain.Club, entry *domain.CalendarEntry) (*domain.CalendarEntry, error)
	List(ctx context.Context, actor *domain.User, club *domain.Club) ([]domain.CalendarEntry, error)
	ListPublic(ctx context.Context, club *domain.Club) ([]domain.CalendarEntry, error)
	Delete(ctx context.Context, actor *domain.User, club *domain.Club, entryID string) error
}

// Notifier is the notification side-channel: a durable alarm append plus
// a best-effort push. It never fails the calling operation.
type Notifier interface {
	Notify(ctx context.Context, user *domain.User, message string)
}

type EmailService interface {
	SendWelcome(ctx context.Context, email, name string) error
	SendAcceptance(ctx context.Context, email, name, clubName string) error
	SendRejection(ctx context.Context, email, name, clubName string) error
}
