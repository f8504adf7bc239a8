package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/circlesapp/server/internal/domain"
	"github.com/circlesapp/server/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type clubRepository struct {
	db *sql.DB
}

func NewClubRepository(db *sql.DB) repository.ClubRepository {
	return &clubRepository{db: db}
}

// Create persists the club row together with its seed ranks in one
// transaction. The unique index on LOWER(name) is the authoritative
// duplicate-name guard; a race past the service pre-check lands here
// and is reported as Conflict.
func (r *clubRepository) Create(ctx context.Context, club *domain.Club) error {
	if club.ID == "" {
		club.ID = uuid.NewString()
	}
	club.CreatedAt = time.Now()
	if len(club.Ranks) == 0 {
		club.Ranks = domain.DefaultRanks()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapErr("create club", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO clubs (id, name, description, img_path, owner_id, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := tx.ExecContext(ctx, query,
		club.ID, club.Name, club.Description, club.ImgPath, club.OwnerID, club.CreatedAt); err != nil {
		return wrapErr("create club", err)
	}

	rankQuery := `INSERT INTO ranks (club_id, id, name, is_admin, capabilities) VALUES ($1, $2, $3, $4, $5)`
	for _, rank := range club.Ranks {
		caps := make([]string, len(rank.Capabilities))
		for i, c := range rank.Capabilities {
			caps[i] = string(c)
		}
		if _, err := tx.ExecContext(ctx, rankQuery,
			club.ID, rank.ID, rank.Name, rank.IsAdmin, pq.Array(caps)); err != nil {
			return wrapErr("create club ranks", err)
		}
	}

	return wrapErr("create club", tx.Commit())
}

func (r *clubRepository) GetByID(ctx context.Context, id string) (*domain.Club, error) {
	query := `SELECT id, name, description, img_path, owner_id, created_at FROM clubs WHERE id = $1`
	return r.loadClub(ctx, r.db.QueryRowContext(ctx, query, id))
}

func (r *clubRepository) GetByName(ctx context.Context, name string) (*domain.Club, error) {
	query := `SELECT id, name, description, img_path, owner_id, created_at FROM clubs WHERE LOWER(name) = LOWER($1)`
	return r.loadClub(ctx, r.db.QueryRowContext(ctx, query, name))
}

// loadClub hydrates the club document: the row, its rank set and its
// member set. Callers always see membership as of this read.
func (r *clubRepository) loadClub(ctx context.Context, row *sql.Row) (*domain.Club, error) {
	club := &domain.Club{}
	err := row.Scan(&club.ID, &club.Name, &club.Description, &club.ImgPath, &club.OwnerID, &club.CreatedAt)
	if err != nil {
		return nil, notFoundOr("get club", "club", err)
	}

	ranks, err := r.loadRanks(ctx, club.ID)
	if err != nil {
		return nil, err
	}
	club.Ranks = ranks

	members, err := r.loadMembers(ctx, club.ID)
	if err != nil {
		return nil, err
	}
	club.Members = members
	return club, nil
}

func (r *clubRepository) loadRanks(ctx context.Context, clubID string) ([]domain.Rank, error) {
	query := `SELECT id, name, is_admin, capabilities FROM ranks WHERE club_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, clubID)
	if err != nil {
		return nil, wrapErr("load club ranks", err)
	}
	defer rows.Close()

	var ranks []domain.Rank
	for rows.Next() {
		var rank domain.Rank
		var caps pq.StringArray
		if err := rows.Scan(&rank.ID, &rank.Name, &rank.IsAdmin, &caps); err != nil {
			return nil, wrapErr("load club ranks", err)
		}
		for _, c := range caps {
			rank.Capabilities = append(rank.Capabilities, domain.Permission(c))
		}
		ranks = append(ranks, rank)
	}
	return ranks, wrapErr("load club ranks", rows.Err())
}

func (r *clubRepository) loadMembers(ctx context.Context, clubID string) ([]domain.Member, error) {
	query := `SELECT user_id, rank_id, joined_at FROM members WHERE club_id = $1 ORDER BY joined_at`
	rows, err := r.db.QueryContext(ctx, query, clubID)
	if err != nil {
		return nil, wrapErr("load club members", err)
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.UserID, &m.RankID, &m.JoinedAt); err != nil {
			return nil, wrapErr("load club members", err)
		}
		members = append(members, m)
	}
	return members, wrapErr("load club members", rows.Err())
}

func (r *clubRepository) UpdateProfile(ctx context.Context, club *domain.Club) error {
	query := `UPDATE clubs SET description = $1, img_path = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, club.Description, club.ImgPath, club.ID)
	return wrapErr("update club profile", err)
}

// Delete removes the club row and its rank rows. Member rows are
// detached one by one before this step by the lifecycle manager.
func (r *clubRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapErr("delete club", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM members WHERE club_id = $1`, id); err != nil {
		return wrapErr("delete club members", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM ranks WHERE club_id = $1`, id); err != nil {
		return wrapErr("delete club ranks", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM clubs WHERE id = $1`, id); err != nil {
		return wrapErr("delete club", err)
	}
	return wrapErr("delete club", tx.Commit())
}

func (r *clubRepository) AddMember(ctx context.Context, clubID, userID string, rankID int32) error {
	query := `INSERT INTO members (club_id, user_id, rank_id, joined_at) VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, clubID, userID, rankID, time.Now())
	return wrapErr("add member", err)
}

// RemoveMember is a no-op when the row is already gone, so lifecycle
// steps can be re-run after a partial failure.
func (r *clubRepository) RemoveMember(ctx context.Context, clubID, userID string) error {
	query := `DELETE FROM members WHERE club_id = $1 AND user_id = $2`
	_, err := r.db.ExecContext(ctx, query, clubID, userID)
	return wrapErr("remove member", err)
}
