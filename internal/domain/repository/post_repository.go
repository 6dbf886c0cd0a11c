package repository

import (
	"context"

	"github.com/oksasatya/go-blogfeed/internal/domain/entity"
)

// PostFilter narrows the post set a feed query runs over. Zero value
// means "all posts". AuthorIn takes precedence for follow feeds; an
// empty non-nil AuthorIn matches nothing.
type PostFilter struct {
	AuthorID *int64
	GroupID  *int64
	AuthorIn []int64
}

// PostRepository defines the interface for post-related database operations.
// List and Count run over the same filter so a page and its total always
// agree on the matching set.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id int64) (*entity.Post, error)
	Update(ctx context.Context, p *entity.Post) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f PostFilter, limit, offset int) ([]entity.Post, error)
	Count(ctx context.Context, f PostFilter) (int, error)
}
