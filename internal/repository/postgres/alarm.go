package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/circlesapp/server/internal/domain"
	"github.com/circlesapp/server/internal/repository"
)

type alarmRepository struct {
	db *sql.DB
}

func NewAlarmRepository(db *sql.DB) repository.AlarmRepository {
	return &alarmRepository{db: db}
}

func (r *alarmRepository) Append(ctx context.Context, userID, message string) (*domain.Alarm, error) {
	alarm := &domain.Alarm{Message: message, CreatedAt: time.Now()}
	query := `INSERT INTO alarms (user_id, message, created_at) VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, userID, message, alarm.CreatedAt).Scan(&alarm.ID); err != nil {
		return nil, wrapErr("append alarm", err)
	}
	return alarm, nil
}

func (r *alarmRepository) ListByUser(ctx context.Context, userID string) ([]domain.Alarm, error) {
	query := `SELECT id, message, created_at FROM alarms WHERE user_id = $1 ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, wrapErr("list alarms", err)
	}
	defer rows.Close()

	var alarms []domain.Alarm
	for rows.Next() {
		var alarm domain.Alarm
		if err := rows.Scan(&alarm.ID, &alarm.Message, &alarm.CreatedAt); err != nil {
			return nil, wrapErr("list alarms", err)
		}
		alarms = append(alarms, alarm)
	}
	return alarms, wrapErr("list alarms", rows.Err())
}

func (r *alarmRepository) Delete(ctx context.Context, userID string, alarmID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM alarms WHERE id = $1 AND user_id = $2`, alarmID, userID)
	return wrapErr("delete alarm", err)
}

func (r *alarmRepository) DeleteAll(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM alarms WHERE user_id = $1`, userID)
	return wrapErr("delete alarms", err)
}

func (r *alarmRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM alarms WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, wrapErr("prune alarms", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
