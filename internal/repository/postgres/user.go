package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/circlesapp/server/internal/domain"
	"github.com/circlesapp/server/internal/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, name, message, img_path, password_hash, salt, push_token, last_login, created_at, is_withdrawn`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now()
	user.CreatedAt = now
	user.LastLogin = now
	query := `INSERT INTO users (id, email, name, message, img_path, password_hash, salt, push_token, last_login, created_at, is_withdrawn)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.Name, user.Message, user.ImgPath,
		user.PasswordHash, user.Salt, user.PushToken, user.LastLogin, user.CreatedAt, user.IsWithdrawn)
	return wrapErr("create user", err)
}

func (r *userRepository) scanUser(row *sql.Row) (*domain.User, error) {
	user := &domain.User{}
	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.Message, &user.ImgPath,
		&user.PasswordHash, &user.Salt, &user.PushToken, &user.LastLogin, &user.CreatedAt, &user.IsWithdrawn)
	if err != nil {
		return nil, notFoundOr("get user", "user", err)
	}
	return user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) UpdateProfile(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET name = $1, message = $2, img_path = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, query, user.Name, user.Message, user.ImgPath, user.ID)
	return wrapErr("update user profile", err)
}

func (r *userRepository) UpdateCredentials(ctx context.Context, id, passwordHash, salt string) error {
	query := `UPDATE users SET password_hash = $1, salt = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, passwordHash, salt, id)
	return wrapErr("update user credentials", err)
}

func (r *userRepository) UpdatePushToken(ctx context.Context, id, token string) error {
	query := `UPDATE users SET push_token = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, token, id)
	return wrapErr("update push token", err)
}

func (r *userRepository) UpdateLoginTime(ctx context.Context, id string) error {
	query := `UPDATE users SET last_login = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, time.Now(), id)
	return wrapErr("update login time", err)
}

func (r *userRepository) Withdraw(ctx context.Context, id string) error {
	query := `UPDATE users SET is_withdrawn = TRUE WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return wrapErr("withdraw user", err)
}

func (r *userRepository) ListClubIDs(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT club_id FROM members WHERE user_id = $1 ORDER BY joined_at`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, wrapErr("list user clubs", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, wrapErr("list user clubs", err)
		}
		ids = append(ids, id)
	}
	return ids, wrapErr("list user clubs", rows.Err())
}
