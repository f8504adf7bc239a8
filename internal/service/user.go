package service

import (
	"context"

	"github.com/circlesapp/server/internal/domain"
	"github.com/circlesapp/server/internal/repository"
	"github.com/circlesapp/server/internal/security"
)

type userService struct {
	users  repository.UserRepository
	alarms repository.AlarmRepository
}

func NewUserService(users repository.UserRepository, alarms repository.AlarmRepository) UserService {
	return &userService{users: users, alarms: alarms}
}

func (s *userService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	clubIDs, err := s.users.ListClubIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.ClubIDs = clubIDs
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, user *domain.User, changes domain.UserUpdate) (*domain.User, error) {
	changes.Apply(user)
	if err := s.users.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, user *domain.User, newPassword string) error {
	if newPassword == "" {
		return domain.Conflict("new password is required")
	}
	hash, salt, err := security.HashPassword(newPassword)
	if err != nil {
		return domain.Upstream("hash password", err)
	}
	return s.users.UpdateCredentials(ctx, user.ID, hash, salt)
}

// Withdraw flags the account. Memberships and club resources stay put;
// the flag only blocks future logins.
func (s *userService) Withdraw(ctx context.Context, user *domain.User) error {
	return s.users.Withdraw(ctx, user.ID)
}

func (s *userService) RegisterPushToken(ctx context.Context, user *domain.User, token string) error {
	return s.users.UpdatePushToken(ctx, user.ID, token)
}

func (s *userService) Alarms(ctx context.Context, user *domain.User) ([]domain.Alarm, error) {
	return s.alarms.ListByUser(ctx, user.ID)
}

func (s *userService) RemoveAlarm(ctx context.Context, user *domain.User, alarmID int64) error {
	return s.alarms.Delete(ctx, user.ID, alarmID)
}

func (s *userService) ClearAlarms(ctx context.Context, user *domain.User) error {
	return s.alarms.DeleteAll(ctx, user.ID)
}
