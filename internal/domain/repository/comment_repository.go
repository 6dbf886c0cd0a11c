package repository

import (
	"context"

	"github.com/oksasatya/go-blogfeed/internal/domain/entity"
)

// CommentRepository defines the interface for comment-related database
// operations. Comments are append-only.
type CommentRepository interface {
	Create(ctx context.Context, c *entity.Comment) error
	ListByPost(ctx context.Context, postID int64) ([]entity.Comment, error)
	CountByPost(ctx context.Context, postID int64) (int, error)
}
