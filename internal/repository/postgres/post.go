package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/circlesapp/server/internal/domain"
	"github.com/circlesapp/server/internal/repository"

	"github.com/google/uuid"
)

type postRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) repository.PostRepository {
	return &postRepository{db: db}
}

const postColumns = `id, club_id, owner_id, title, content, is_public, created_at`

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	post.CreatedAt = time.Now()
	query := `INSERT INTO posts (id, club_id, owner_id, title, content, is_public, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.ClubID, post.OwnerID, post.Title, post.Content, post.IsPublic, post.CreatedAt)
	return wrapErr("create post", err)
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	post := &domain.Post{}
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&post.ID, &post.ClubID, &post.OwnerID, &post.Title, &post.Content, &post.IsPublic, &post.CreatedAt)
	if err != nil {
		return nil, notFoundOr("get post", "post", err)
	}
	return post, nil
}

func (r *postRepository) list(ctx context.Context, query string, args ...any) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("list posts", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(&post.ID, &post.ClubID, &post.OwnerID, &post.Title, &post.Content, &post.IsPublic, &post.CreatedAt); err != nil {
			return nil, wrapErr("list posts", err)
		}
		posts = append(posts, post)
	}
	return posts, wrapErr("list posts", rows.Err())
}

func (r *postRepository) ListByClub(ctx context.Context, clubID string) ([]domain.Post, error) {
	return r.list(ctx, `SELECT `+postColumns+` FROM posts WHERE club_id = $1 ORDER BY created_at DESC`, clubID)
}

func (r *postRepository) ListPublicByClub(ctx context.Context, clubID string) ([]domain.Post, error) {
	return r.list(ctx, `SELECT `+postColumns+` FROM posts WHERE club_id = $1 AND is_public ORDER BY created_at DESC`, clubID)
}

func (r *postRepository) Update(ctx context.Context, post *domain.Post) error {
	query := `UPDATE posts SET title = $1, content = $2, is_public = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, query, post.Title, post.Content, post.IsPublic, post.ID)
	return wrapErr("update post", err)
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	return wrapErr("delete post", err)
}

func (r *postRepository) DeleteByClub(ctx context.Context, clubID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE club_id = $1`, clubID)
	return wrapErr("delete club posts", err)
}

func (r *postRepository) DeleteOrphaned(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE club_id NOT IN (SELECT id FROM clubs)`)
	if err != nil {
		return 0, wrapErr("delete orphaned posts", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
