package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/go-blogfeed/internal/domain/entity"
)

// ErrNotFound is returned by every repository when the requested row
// does not exist. Services translate it into their own sentinels.
var ErrNotFound = errors.New("not found")

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
