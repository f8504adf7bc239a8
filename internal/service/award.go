package service

import (
	"context"

	"github.com/circlesapp/server/internal/domain"
	"github.com/circlesapp/server/internal/repository"
)

type awardService struct {
	awards repository.AwardRepository
}

func NewAwardService(awards repository.AwardRepository) AwardService {
	return &awardService{awards: awards}
}

func (s *awardService) Write(ctx context.Context, actor *domain.User, club *domain.Club, award *domain.Award) (*domain.Award, error) {
	if err := requireCapability(actor, club, domain.PermAwardCreate); err != nil {
		return nil, err
	}
	award.ClubID = club.ID
	if err := s.awards.Create(ctx, award); err != nil {
		return nil, err
	}
	return award, nil
}

func (s *awardService) List(ctx context.Context, actor *domain.User, club *domain.Club) ([]domain.Award, error) {
	if err := requireCapability(actor, club, domain.PermAwardRead); err != nil {
		return nil, err
	}
	return s.awards.ListByClub(ctx, club.ID)
}

// ListPublic returns the club's awards without a membership or
// capability check; the award roll is part of the club's public face.
func (s *awardService) ListPublic(ctx context.Context, club *domain.Club) ([]domain.Award, error) {
	return s.awards.ListByClub(ctx, club.ID)
}

func (s *awardService) Delete(ctx context.Context, actor *domain.User, club *domain.Club, awardID string) error {
	if err := requireCapability(actor, club, domain.PermAwardDelete); err != nil {
		return err
	}
	award, err := s.awards.GetByID(ctx, awardID)
	if err != nil {
		return err
	}
	if award.ClubID != club.ID {
		return domain.NotFound("award not found")
	}
	return s.awards.Delete(ctx, award.ID)
}
