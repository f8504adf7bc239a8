package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/circlesapp/server/internal/domain"
	"github.com/circlesapp/server/internal/repository"

	"github.com/google/uuid"
)

type budgetRepository struct {
	db *sql.DB
}

func NewBudgetRepository(db *sql.DB) repository.BudgetRepository {
	return &budgetRepository{db: db}
}

const budgetColumns = `id, club_id, item, size, price, quantity, shipping, url, created_at`

func (r *budgetRepository) Create(ctx context.Context, budget *domain.Budget) error {
	if budget.ID == "" {
		budget.ID = uuid.NewString()
	}
	budget.CreatedAt = time.Now()
	query := `INSERT INTO budgets (id, club_id, item, size, price, quantity, shipping, url, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query,
		budget.ID, budget.ClubID, budget.Item, budget.Size, budget.Price, budget.Quantity,
		budget.Shipping, budget.URL, budget.CreatedAt)
	return wrapErr("create budget", err)
}

func (r *budgetRepository) GetByID(ctx context.Context, id string) (*domain.Budget, error) {
	budget := &domain.Budget{}
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&budget.ID, &budget.ClubID, &budget.Item, &budget.Size, &budget.Price,
			&budget.Quantity, &budget.Shipping, &budget.URL, &budget.CreatedAt)
	if err != nil {
		return nil, notFoundOr("get budget", "budget", err)
	}
	return budget, nil
}

func (r *budgetRepository) ListByClub(ctx context.Context, clubID string) ([]domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE club_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, clubID)
	if err != nil {
		return nil, wrapErr("list budgets", err)
	}
	defer rows.Close()

	var budgets []domain.Budget
	for rows.Next() {
		var budget domain.Budget
		if err := rows.Scan(&budget.ID, &budget.ClubID, &budget.Item, &budget.Size, &budget.Price,
			&budget.Quantity, &budget.Shipping, &budget.URL, &budget.CreatedAt); err != nil {
			return nil, wrapErr("list budgets", err)
		}
		budgets = append(budgets, budget)
	}
	return budgets, wrapErr("list budgets", rows.Err())
}

func (r *budgetRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = $1`, id)
	return wrapErr("delete budget", err)
}

func (r *budgetRepository) DeleteByClub(ctx context.Context, clubID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM budgets WHERE club_id = $1`, clubID)
	return wrapErr("delete club budgets", err)
}

func (r *budgetRepository) DeleteOrphaned(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM budgets WHERE club_id NOT IN (SELECT id FROM clubs)`)
	if err != nil {
		return 0, wrapErr("delete orphaned budgets", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
