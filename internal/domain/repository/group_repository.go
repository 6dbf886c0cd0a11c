package repository

import (
	"context"

	"github.com/oksasatya/go-blogfeed/internal/domain/entity"
)

// GroupRepository defines the interface for group lookups. Groups are
// created by the seed CLI only, so there is no update or delete.
type GroupRepository interface {
	Create(ctx context.Context, g *entity.Group) error
	GetBySlug(ctx context.Context, slug string) (*entity.Group, error)
}
