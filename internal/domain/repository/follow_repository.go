package repository

import "context"

// FollowRepository defines the interface for follow-edge operations.
// Upsert must be a get-or-create: concurrent calls for the same
// (user, author) pair leave exactly one edge behind.
type FollowRepository interface {
	Upsert(ctx context.Context, userID, authorID int64) error
	Delete(ctx context.Context, userID, authorID int64) error
	Exists(ctx context.Context, userID, authorID int64) (bool, error)
	AuthorIDs(ctx context.Context, userID int64) ([]int64, error)
}
