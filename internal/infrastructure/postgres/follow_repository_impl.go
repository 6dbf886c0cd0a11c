package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-blogfeed/internal/domain/repository"
)

type FollowRepository struct {
	pool *pgxpool.Pool
}

func NewFollowRepository(pool *pgxpool.Pool) *FollowRepository {
	return &FollowRepository{pool: pool}
}

// Upsert creates the edge if absent. ON CONFLICT DO NOTHING makes the
// get-or-create race-safe: two concurrent calls leave exactly one row.
func (r *FollowRepository) Upsert(ctx context.Context, userID, authorID int64) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO follows (user_id, author_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, author_id) DO NOTHING
	`, userID, authorID)
	return err
}

// Delete removes the edge if present. Deleting an absent edge is a no-op.
func (r *FollowRepository) Delete(ctx context.Context, userID, authorID int64) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM follows
		WHERE user_id = $1 AND author_id = $2
	`, userID, authorID)
	return err
}

func (r *FollowRepository) Exists(ctx context.Context, userID, authorID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM follows
			WHERE user_id = $1 AND author_id = $2
		)
	`, userID, authorID).Scan(&exists)
	return exists, err
}

func (r *FollowRepository) AuthorIDs(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT author_id FROM follows WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

var _ repository.FollowRepository = (*FollowRepository)(nil)
