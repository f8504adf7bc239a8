package postgres

import (
	"context"
	"database/sql"

	"github.com/circlesapp/server/internal/domain"
	"github.com/circlesapp/server/internal/repository"

	"github.com/google/uuid"
)

type calendarRepository struct {
	db *sql.DB
}

func NewCalendarRepository(db *sql.DB) repository.CalendarRepository {
	return &calendarRepository{db: db}
}

func (r *calendarRepository) Create(ctx context.Context, entry *domain.CalendarEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	query := `INSERT INTO calendar_entries (id, club_id, content, start_at, end_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, entry.ID, entry.ClubID, entry.Content, entry.Start, entry.End)
	return wrapErr("create calendar entry", err)
}

func (r *calendarRepository) GetByID(ctx context.Context, id string) (*domain.CalendarEntry, error) {
	entry := &domain.CalendarEntry{}
	query := `SELECT id, club_id, content, start_at, end_at FROM calendar_entries WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&entry.ID, &entry.ClubID, &entry.Content, &entry.Start, &entry.End)
	if err != nil {
		return nil, notFoundOr("get calendar entry", "calendar entry", err)
	}
	return entry, nil
}

func (r *calendarRepository) ListByClub(ctx context.Context, clubID string) ([]domain.CalendarEntry, error) {
	query := `SELECT id, club_id, content, start_at, end_at FROM calendar_entries WHERE club_id = $1 ORDER BY start_at`
	rows, err := r.db.QueryContext(ctx, query, clubID)
	if err != nil {
		return nil, wrapErr("list calendar entries", err)
	}
	defer rows.Close()

	var entries []domain.CalendarEntry
	for rows.Next() {
		var entry domain.CalendarEntry
		if err := rows.Scan(&entry.ID, &entry.ClubID, &entry.Content, &entry.Start, &entry.End); err != nil {
			return nil, wrapErr("list calendar entries", err)
		}
		entries = append(entries, entry)
	}
	return entries, wrapErr("list calendar entries", rows.Err())
}

func (r *calendarRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM calendar_entries WHERE id = $1`, id)
	return wrapErr("delete calendar entry", err)
}

func (r *calendarRepository) DeleteByClub(ctx context.Context, clubID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM calendar_entries WHERE club_id = $1`, clubID)
	return wrapErr("delete club calendar entries", err)
}

func (r *calendarRepository) DeleteOrphaned(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM calendar_entries WHERE club_id NOT IN (SELECT id FROM clubs)`)
	if err != nil {
		return 0, wrapErr("delete orphaned calendar entries", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
