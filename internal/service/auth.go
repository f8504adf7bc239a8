package service

import (
	"context"

	"github.com/circlesapp/server/internal/domain"
	"github.com/circlesapp/server/internal/logger"
	"github.com/circlesapp/server/internal/repository"
	"github.com/circlesapp/server/internal/security"
)

type authService struct {
	users  repository.UserRepository
	tokens security.TokenManager
	email  EmailService
}

func NewAuthService(users repository.UserRepository, tokens security.TokenManager, email EmailService) AuthService {
	return &authService{users: users, tokens: tokens, email: email}
}

func (s *authService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.Conflict("email and password are required")
	}
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, domain.Conflict("email %s is already registered", email)
	} else if !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}

	hash, salt, err := security.HashPassword(password)
	if err != nil {
		return nil, domain.Upstream("hash password", err)
	}
	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Salt:         salt,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.email.SendWelcome(ctx, user.Email, user.Name); err != nil {
		logger.Warn("welcome mail failed", "user_id", user.ID, "error", err)
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return nil, "", "", domain.Forbidden("invalid email or password")
		}
		return nil, "", "", err
	}
	if user.IsWithdrawn {
		return nil, "", "", domain.Forbidden("account has been withdrawn")
	}
	if !security.VerifyPassword(password, user.PasswordHash, user.Salt) {
		return nil, "", "", domain.Forbidden("invalid email or password")
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, "", "", domain.Upstream("sign access token", err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, "", "", domain.Upstream("sign refresh token", err)
	}

	if err := s.users.UpdateLoginTime(ctx, user.ID); err != nil {
		logger.Warn("record login time failed", "user_id", user.ID, "error", err)
	}
	return user, access, refresh, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return "", "", domain.Forbidden("invalid refresh token")
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", domain.Forbidden("access tokens cannot be exchanged")
	}
	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		// A token naming a vanished account answers like any other bad
		// token so the endpoint does not leak account existence.
		if domain.IsKind(err, domain.KindNotFound) {
			return "", "", domain.Forbidden("invalid refresh token")
		}
		return "", "", err
	}
	if user.IsWithdrawn {
		return "", "", domain.Forbidden("account has been withdrawn")
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return "", "", domain.Upstream("sign access token", err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", domain.Upstream("sign refresh token", err)
	}
	return access, refresh, nil
}
