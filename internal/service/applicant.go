package service

import (
	"context"
	"fmt"

	"github.com/circlesapp/server/internal/domain"
	"github.com/circlesapp/server/internal/logger"
	"github.com/circlesapp/server/internal/repository"
)

type applicantService struct {
	applicants repository.ApplicantRepository
	clubs      repository.ClubRepository
	users      repository.UserRepository
	notifier   Notifier
	email      EmailService
}

func NewApplicantService(
	applicants repository.ApplicantRepository,
	clubs repository.ClubRepository,
	users repository.UserRepository,
	notifier Notifier,
	email EmailService,
) ApplicantService {
	return &applicantService{
		applicants: applicants,
		clubs:      clubs,
		users:      users,
		notifier:   notifier,
		email:      email,
	}
}

// Apply opens a membership application. A user cannot apply to a club
// they already belong to, and holds at most one pending application per
// club; both checks run before the write, and the unique constraint on
// (club, owner) backstops the race.
func (s *applicantService) Apply(ctx context.Context, actor *domain.User, club *domain.Club, app *domain.Applicant) (*domain.Applicant, error) {
	if club.Member(actor.ID) != nil {
		return nil, domain.Conflict("already a member of club %s", club.Name)
	}
	if _, err := s.applicants.GetByClubAndOwner(ctx, club.ID, actor.ID); err == nil {
		return nil, domain.Conflict("an application for club %s is already pending", club.Name)
	} else if !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}

	app.ClubID = club.ID
	app.OwnerID = actor.ID
	if err := s.applicants.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *applicantService) Mine(ctx context.Context, actor *domain.User, club *domain.Club) (*domain.Applicant, error) {
	return s.applicants.GetByClubAndOwner(ctx, club.ID, actor.ID)
}

func (s *applicantService) Modify(ctx context.Context, actor *domain.User, club *domain.Club, changes domain.ApplicantUpdate) (*domain.Applicant, error) {
	app, err := s.applicants.GetByClubAndOwner(ctx, club.ID, actor.ID)
	if err != nil {
		return nil, err
	}
	changes.Apply(app)
	if err := s.applicants.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *applicantService) ListByClub(ctx context.Context, actor *domain.User, club *domain.Club) ([]domain.Applicant, error) {
	if err := s.gate(actor, club, domain.PermApplicantRead); err != nil {
		return nil, err
	}
	return s.applicants.ListByClub(ctx, club.ID)
}

// Accept turns a pending application into a membership at the default
// rank. Step order is deliberate: the applicant is notified before the
// record is removed, so a crash mid-sequence leaves the application
// visibly pending instead of silently vanished. The deleted applicant
// payload is returned for the caller's response.
func (s *applicantService) Accept(ctx context.Context, actor *domain.User, club *domain.Club, applicantID string) (*domain.Applicant, error) {
	if err := s.gate(actor, club, domain.PermApplicantAccept); err != nil {
		return nil, err
	}
	app, err := s.resolve(ctx, club, applicantID)
	if err != nil {
		return nil, err
	}
	owner, err := s.users.GetByID(ctx, app.OwnerID)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, owner, fmt.Sprintf("<b>%s</b> 동아리 가입이 승인되었습니다.", club.Name))
	if err := s.applicants.Delete(ctx, app.ID); err != nil {
		return nil, err
	}
	if err := s.clubs.AddMember(ctx, club.ID, owner.ID, domain.RankDefault); err != nil {
		return nil, err
	}
	if err := s.email.SendAcceptance(ctx, owner.Email, owner.Name, club.Name); err != nil {
		logger.Warn("acceptance mail failed", "user_id", owner.ID, "error", err)
	}
	return app, nil
}

// Reject closes a pending application without creating a membership.
func (s *applicantService) Reject(ctx context.Context, actor *domain.User, club *domain.Club, applicantID string) (*domain.Applicant, error) {
	if err := s.gate(actor, club, domain.PermApplicantAccept); err != nil {
		return nil, err
	}
	app, err := s.resolve(ctx, club, applicantID)
	if err != nil {
		return nil, err
	}
	owner, err := s.users.GetByID(ctx, app.OwnerID)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, owner, fmt.Sprintf("<b>%s</b> 동아리 가입이 거절되었습니다.", club.Name))
	if err := s.applicants.Delete(ctx, app.ID); err != nil {
		return nil, err
	}
	if err := s.email.SendRejection(ctx, owner.Email, owner.Name, club.Name); err != nil {
		logger.Warn("rejection mail failed", "user_id", owner.ID, "error", err)
	}
	return app, nil
}

// gate admits the club owner outright and otherwise requires the
// capability through the actor's rank. An unresolved rank is surfaced,
// not treated as a deny.
func (s *applicantService) gate(actor *domain.User, club *domain.Club, p domain.Permission) error {
	if club.IsOwner(actor.ID) {
		return nil
	}
	ok, err := club.HasCapability(actor.ID, p)
	if err != nil {
		logger.Error("rank resolution failed", "club_id", club.ID, "user_id", actor.ID, "error", err)
		return err
	}
	if !ok {
		return domain.Forbidden("missing %s capability in club %s", p, club.Name)
	}
	return nil
}

func (s *applicantService) resolve(ctx context.Context, club *domain.Club, applicantID string) (*domain.Applicant, error) {
	app, err := s.applicants.GetByID(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	if app.ClubID != club.ID {
		return nil, domain.NotFound("applicant not found")
	}
	return app, nil
}
