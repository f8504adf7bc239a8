package postgres

import (
	"database/sql"
	"errors"

	"github.com/circlesapp/server/internal/domain"
	"github.com/circlesapp/server/internal/repository"

	"github.com/lib/pq"
)

// Store bundles every repository over one *sql.DB.
type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ClubRepository
	repository.ApplicantRepository
	repository.PostRepository
	repository.AwardRepository
	repository.BudgetRepository
	repository.CalendarRepository
	repository.AlarmRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		UserRepository:      NewUserRepository(db),
		ClubRepository:      NewClubRepository(db),
		ApplicantRepository: NewApplicantRepository(db),
		PostRepository:      NewPostRepository(db),
		AwardRepository:     NewAwardRepository(db),
		BudgetRepository:    NewBudgetRepository(db),
		CalendarRepository:  NewCalendarRepository(db),
		AlarmRepository:     NewAlarmRepository(db),
	}
}

const uniqueViolation = "23505"

// wrapErr maps driver errors onto the domain taxonomy. The unique
// constraint mapping is what makes the storage layer the authoritative
// guard against duplicate names, memberships and applications even when
// a pre-check raced.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.Conflict("%s: already exists", op)
	}
	return domain.Upstream(op, err)
}

func notFoundOr(op, what string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFound("%s not found", what)
	}
	return wrapErr(op, err)
}
