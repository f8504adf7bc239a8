package repository

import (
	"context"
	"time"

	"github.com/circlesapp/server/internal/domain"
)

// Implementations translate absent rows into domain.NotFound, storage
// unique-constraint violations into domain.Conflict and every other
// driver error into domain.Upstream, so services never see raw storage
// errors.

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User) error
	UpdateCredentials(ctx context.Context, id, passwordHash, salt string) error
	UpdatePushToken(ctx context.Context, id, token string) error
	UpdateLoginTime(ctx context.Context, id string) error
	Withdraw(ctx context.Context, id string) error
	ListClubIDs(ctx context.Context, userID string) ([]string, error)
}

type ClubRepository interface {
	Create(ctx context.Context, club *domain.Club) error
	GetByID(ctx context.Context, id string) (*domain.Club, error)
	GetByName(ctx context.Context, name string) (*domain.Club, error) // case-insensitive
	UpdateProfile(ctx context.Context, club *domain.Club) error
	Delete(ctx context.Context, id string) error
	AddMember(ctx context.Context, clubID, userID string, rankID int32) error
	RemoveMember(ctx context.Context, clubID, userID string) error
}

type ApplicantRepository interface {
	Create(ctx context.Context, app *domain.Applicant) error
	GetByID(ctx context.Context, id string) (*domain.Applicant, error)
	GetByClubAndOwner(ctx context.Context, clubID, ownerID string) (*domain.Applicant, error)
	ListByClub(ctx context.Context, clubID string) ([]domain.Applicant, error)
	Update(ctx context.Context, app *domain.Applicant) error
	Delete(ctx context.Context, id string) error
	DeleteByClub(ctx context.Context, clubID string) error
	DeleteOrphaned(ctx context.Context) (int64, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	ListByClub(ctx context.Context, clubID string) ([]domain.Post, error)
	ListPublicByClub(ctx context.Context, clubID string) ([]domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id string) error
	DeleteByClub(ctx context.Context, clubID string) error
	DeleteOrphaned(ctx context.Context) (int64, error)
}

type AwardRepository interface {
	Create(ctx context.Context, award *domain.Award) error
	GetByID(ctx context.Context, id string) (*domain.Award, error)
	ListByClub(ctx context.Context, clubID string) ([]domain.Award, error)
	Delete(ctx context.Context, id string) error
	DeleteByClub(ctx context.Context, clubID string) error
	DeleteOrphaned(ctx context.Context) (int64, error)
}

type BudgetRepository interface {
	Create(ctx context.Context, budget *domain.Budget) error
	GetByID(ctx context.Context, id string) (*domain.Budget, error)
	ListByClub(ctx context.Context, clubID string) ([]domain.Budget, error)
	Delete(ctx context.Context, id string) error
	DeleteByClub(ctx context.Context, clubID string) error
	DeleteOrphaned(ctx context.Context) (int64, error)
}

type CalendarRepository interface {
	Create(ctx context.Context, entry *domain.CalendarEntry) error
	GetByID(ctx context.Context, id string) (*domain.CalendarEntry, error)
	ListByClub(ctx context.Context, clubID string) ([]domain.CalendarEntry, error)
	Delete(ctx context.Context, id string) error
	DeleteByClub(ctx context.Context, clubID string) error
	DeleteOrphaned(ctx context.Context) (int64, error)
}

// AlarmRepository is the durable half of the notification side-channel:
// an append-only per-user log, listed newest first.
type AlarmRepository interface {
	Append(ctx context.Context, userID, message string) (*domain.Alarm, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Alarm, error)
	Delete(ctx context.Context, userID string, alarmID int64) error
	DeleteAll(ctx context.Context, userID string) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
