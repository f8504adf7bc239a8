package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/circlesapp/server/internal/domain"
	"github.com/circlesapp/server/internal/repository"

	"github.com/google/uuid"
)

type applicantRepository struct {
	db *sql.DB
}

func NewApplicantRepository(db *sql.DB) repository.ApplicantRepository {
	return &applicantRepository{db: db}
}

const applicantColumns = `id, club_id, owner_id, introduction, note, created_at`

func (r *applicantRepository) Create(ctx context.Context, app *domain.Applicant) error {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	app.CreatedAt = time.Now()
	query := `INSERT INTO applicants (id, club_id, owner_id, introduction, note, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query,
		app.ID, app.ClubID, app.OwnerID, app.Introduction, app.Note, app.CreatedAt)
	return wrapErr("create applicant", err)
}

func (r *applicantRepository) scanApplicant(row *sql.Row) (*domain.Applicant, error) {
	app := &domain.Applicant{}
	err := row.Scan(&app.ID, &app.ClubID, &app.OwnerID, &app.Introduction, &app.Note, &app.CreatedAt)
	if err != nil {
		return nil, notFoundOr("get applicant", "applicant", err)
	}
	return app, nil
}

func (r *applicantRepository) GetByID(ctx context.Context, id string) (*domain.Applicant, error) {
	query := `SELECT ` + applicantColumns + ` FROM applicants WHERE id = $1`
	return r.scanApplicant(r.db.QueryRowContext(ctx, query, id))
}

func (r *applicantRepository) GetByClubAndOwner(ctx context.Context, clubID, ownerID string) (*domain.Applicant, error) {
	query := `SELECT ` + applicantColumns + ` FROM applicants WHERE club_id = $1 AND owner_id = $2`
	return r.scanApplicant(r.db.QueryRowContext(ctx, query, clubID, ownerID))
}

func (r *applicantRepository) ListByClub(ctx context.Context, clubID string) ([]domain.Applicant, error) {
	query := `SELECT ` + applicantColumns + ` FROM applicants WHERE club_id = $1 ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, clubID)
	if err != nil {
		return nil, wrapErr("list applicants", err)
	}
	defer rows.Close()

	var apps []domain.Applicant
	for rows.Next() {
		var app domain.Applicant
		if err := rows.Scan(&app.ID, &app.ClubID, &app.OwnerID, &app.Introduction, &app.Note, &app.CreatedAt); err != nil {
			return nil, wrapErr("list applicants", err)
		}
		apps = append(apps, app)
	}
	return apps, wrapErr("list applicants", rows.Err())
}

func (r *applicantRepository) Update(ctx context.Context, app *domain.Applicant) error {
	query := `UPDATE applicants SET introduction = $1, note = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, app.Introduction, app.Note, app.ID)
	return wrapErr("update applicant", err)
}

func (r *applicantRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM applicants WHERE id = $1`, id)
	return wrapErr("delete applicant", err)
}

func (r *applicantRepository) DeleteByClub(ctx context.Context, clubID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM applicants WHERE club_id = $1`, clubID)
	return wrapErr("delete club applicants", err)
}

func (r *applicantRepository) DeleteOrphaned(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM applicants WHERE club_id NOT IN (SELECT id FROM clubs)`)
	if err != nil {
		return 0, wrapErr("delete orphaned applicants", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
