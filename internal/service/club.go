package service

import (
	"context"
	"fmt"

	"github.com/circlesapp/server/internal/domain"
	"github.com/circlesapp/server/internal/logger"
	"github.com/circlesapp/server/internal/repository"
)

type clubService struct {
	clubs      repository.ClubRepository
	users      repository.UserRepository
	applicants repository.ApplicantRepository
	posts      repository.PostRepository
	awards     repository.AwardRepository
	budgets    repository.BudgetRepository
	calendar   repository.CalendarRepository
	notifier   Notifier
}

func NewClubService(
	clubs repository.ClubRepository,
	users repository.UserRepository,
	applicants repository.ApplicantRepository,
	posts repository.PostRepository,
	awards repository.AwardRepository,
	budgets repository.BudgetRepository,
	calendar repository.CalendarRepository,
	notifier Notifier,
) ClubService {
	return &clubService{
		clubs:      clubs,
		users:      users,
		applicants: applicants,
		posts:      posts,
		awards:     awards,
		budgets:    budgets,
		calendar:   calendar,
		notifier:   notifier,
	}
}

// CreateClub persists a new club seeded with the default ranks and
// inserts the owner as its first admin member. The name pre-check and
// the insert are not atomic against concurrent creators; the unique
// index underneath reports the race as the same Conflict.
func (s *clubService) CreateClub(ctx context.Context, owner *domain.User, name, description string) (*domain.Club, error) {
	if name == "" {
		return nil, domain.Conflict("club name is required")
	}
	if _, err := s.clubs.GetByName(ctx, name); err == nil {
		return nil, domain.Conflict("club name %q is already taken", name)
	} else if !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}

	club := &domain.Club{
		Name:        name,
		Description: description,
		OwnerID:     owner.ID,
		Ranks:       domain.DefaultRanks(),
	}
	if err := s.clubs.Create(ctx, club); err != nil {
		return nil, err
	}
	if err := s.clubs.AddMember(ctx, club.ID, owner.ID, domain.RankAdmin); err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, owner, fmt.Sprintf("<b>%s</b> 동아리를 생성했습니다.", club.Name))
	return s.clubs.GetByID(ctx, club.ID)
}

func (s *clubService) GetByName(ctx context.Context, name string) (*domain.Club, error) {
	return s.clubs.GetByName(ctx, name)
}

// UpdateClub patches the club profile through the field allowlist.
// Gated on admin rank: a plain member may not touch the club profile.
func (s *clubService) UpdateClub(ctx context.Context, actor *domain.User, club *domain.Club, changes domain.ClubUpdate) (*domain.Club, error) {
	if !club.IsAdmin(actor.ID) {
		return nil, domain.Forbidden("admin rank required to change club information")
	}
	changes.Apply(club)
	if err := s.clubs.UpdateProfile(ctx, club); err != nil {
		return nil, err
	}
	return club, nil
}

// DeleteClub dissolves a club. Only the owner may do this; a delegated
// admin cannot. Steps run in a fixed order: detach and notify every
// affected user first, then purge dependent resources by club id, then
// drop the club itself. A failure aborts the remaining steps without
// rollback; every step is filter-based, so re-running the operation
// completes the cascade without erroring on already-detached users.
func (s *clubService) DeleteClub(ctx context.Context, actor *domain.User, club *domain.Club) error {
	if !club.IsOwner(actor.ID) {
		return domain.Forbidden("only the club owner may close the club")
	}

	affected := make([]string, 0, len(club.Members)+1)
	seen := make(map[string]bool, len(club.Members)+1)
	for _, m := range club.Members {
		if !seen[m.UserID] {
			seen[m.UserID] = true
			affected = append(affected, m.UserID)
		}
	}
	if !seen[club.OwnerID] {
		affected = append(affected, club.OwnerID)
	}

	for _, userID := range affected {
		if err := s.clubs.RemoveMember(ctx, club.ID, userID); err != nil {
			return err
		}
		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			if domain.IsKind(err, domain.KindNotFound) {
				continue
			}
			return err
		}
		s.notifier.Notify(ctx, user, fmt.Sprintf("<b>%s</b> 동아리가 폐쇄되었습니다.", club.Name))
	}

	if err := s.posts.DeleteByClub(ctx, club.ID); err != nil {
		return err
	}
	if err := s.budgets.DeleteByClub(ctx, club.ID); err != nil {
		return err
	}
	if err := s.awards.DeleteByClub(ctx, club.ID); err != nil {
		return err
	}
	if err := s.applicants.DeleteByClub(ctx, club.ID); err != nil {
		return err
	}
	if err := s.calendar.DeleteByClub(ctx, club.ID); err != nil {
		return err
	}

	if err := s.clubs.Delete(ctx, club.ID); err != nil {
		return err
	}
	logger.Info("club closed", "club_id", club.ID, "name", club.Name, "affected_users", len(affected))
	return nil
}

// ExpelMember is the mechanical removal; the admin gate sits with the
// caller. The expelled user keeps their account, loses the membership
// row, and is told why.
func (s *clubService) ExpelMember(ctx context.Context, club *domain.Club, targetUserID string) error {
	target, err := s.users.GetByID(ctx, targetUserID)
	if err != nil {
		return err
	}
	if club.Member(target.ID) == nil {
		return domain.Conflict("user %s is not a member of club %s", target.ID, club.ID)
	}
	if err := s.clubs.RemoveMember(ctx, club.ID, target.ID); err != nil {
		return err
	}
	s.notifier.Notify(ctx, target, fmt.Sprintf("<b>%s</b> 동아리에서 퇴출되었습니다.", club.Name))
	return nil
}

func (s *clubService) LeaveClub(ctx context.Context, actor *domain.User, club *domain.Club) error {
	if club.Member(actor.ID) == nil {
		return domain.Conflict("not a member of club %s", club.ID)
	}
	if err := s.clubs.RemoveMember(ctx, club.ID, actor.ID); err != nil {
		return err
	}
	s.notifier.Notify(ctx, actor, fmt.Sprintf("<b>%s</b> 동아리를 탈퇴했습니다.", club.Name))
	return nil
}

func (s *clubService) Members(ctx context.Context, club *domain.Club) ([]domain.User, error) {
	users := make([]domain.User, 0, len(club.Members))
	for _, m := range club.Members {
		user, err := s.users.GetByID(ctx, m.UserID)
		if err != nil {
			if domain.IsKind(err, domain.KindNotFound) {
				continue
			}
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}
