package service

import (
	"context"

	"github.com/circlesapp/server/internal/domain"
	"github.com/circlesapp/server/internal/repository"
)

type budgetService struct {
	budgets repository.BudgetRepository
}

func NewBudgetService(budgets repository.BudgetRepository) BudgetService {
	return &budgetService{budgets: budgets}
}

func (s *budgetService) Write(ctx context.Context, actor *domain.User, club *domain.Club, budget *domain.Budget) (*domain.Budget, error) {
	if err := requireCapability(actor, club, domain.PermBudgetCreate); err != nil {
		return nil, err
	}
	budget.ClubID = club.ID
	if err := s.budgets.Create(ctx, budget); err != nil {
		return nil, err
	}
	return budget, nil
}

func (s *budgetService) List(ctx context.Context, actor *domain.User, club *domain.Club) ([]domain.Budget, error) {
	if err := requireCapability(actor, club, domain.PermBudgetRead); err != nil {
		return nil, err
	}
	return s.budgets.ListByClub(ctx, club.ID)
}

// ListPublic returns the club's budget entries with no membership or
// capability check.
func (s *budgetService) ListPublic(ctx context.Context, club *domain.Club) ([]domain.Budget, error) {
	return s.budgets.ListByClub(ctx, club.ID)
}

func (s *budgetService) Delete(ctx context.Context, actor *domain.User, club *domain.Club, budgetID string) error {
	if err := requireCapability(actor, club, domain.PermBudgetDelete); err != nil {
		return err
	}
	budget, err := s.budgets.GetByID(ctx, budgetID)
	if err != nil {
		return err
	}
	if budget.ClubID != club.ID {
		return domain.NotFound("budget not found")
	}
	return s.budgets.Delete(ctx, budget.ID)
}
