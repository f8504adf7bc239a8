package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/circlesapp/server/internal/domain"
	"github.com/circlesapp/server/internal/repository"

	"github.com/google/uuid"
)

type awardRepository struct {
	db *sql.DB
}

func NewAwardRepository(db *sql.DB) repository.AwardRepository {
	return &awardRepository{db: db}
}

func (r *awardRepository) Create(ctx context.Context, award *domain.Award) error {
	if award.ID == "" {
		award.ID = uuid.NewString()
	}
	if award.Date.IsZero() {
		award.Date = time.Now()
	}
	query := `INSERT INTO awards (id, club_id, title, subtitle, level, date) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query,
		award.ID, award.ClubID, award.Title, award.Subtitle, award.Level, award.Date)
	return wrapErr("create award", err)
}

func (r *awardRepository) GetByID(ctx context.Context, id string) (*domain.Award, error) {
	award := &domain.Award{}
	query := `SELECT id, club_id, title, subtitle, level, date FROM awards WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&award.ID, &award.ClubID, &award.Title, &award.Subtitle, &award.Level, &award.Date)
	if err != nil {
		return nil, notFoundOr("get award", "award", err)
	}
	return award, nil
}

func (r *awardRepository) ListByClub(ctx context.Context, clubID string) ([]domain.Award, error) {
	query := `SELECT id, club_id, title, subtitle, level, date FROM awards WHERE club_id = $1 ORDER BY date DESC`
	rows, err := r.db.QueryContext(ctx, query, clubID)
	if err != nil {
		return nil, wrapErr("list awards", err)
	}
	defer rows.Close()

	var awards []domain.Award
	for rows.Next() {
		var award domain.Award
		if err := rows.Scan(&award.ID, &award.ClubID, &award.Title, &award.Subtitle, &award.Level, &award.Date); err != nil {
			return nil, wrapErr("list awards", err)
		}
		awards = append(awards, award)
	}
	return awards, wrapErr("list awards", rows.Err())
}

func (r *awardRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM awards WHERE id = $1`, id)
	return wrapErr("delete award", err)
}

func (r *awardRepository) DeleteByClub(ctx context.Context, clubID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM awards WHERE club_id = $1`, clubID)
	return wrapErr("delete club awards", err)
}

func (r *awardRepository) DeleteOrphaned(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM awards WHERE club_id NOT IN (SELECT id FROM clubs)`)
	if err != nil {
		return 0, wrapErr("delete orphaned awards", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
