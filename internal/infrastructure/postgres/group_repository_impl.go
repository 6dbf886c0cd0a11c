package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-blogfeed/internal/domain/entity"
	"github.com/oksasatya/go-blogfeed/internal/domain/repository"
)

type GroupRepository struct {
	pool *pgxpool.Pool
}

func NewGroupRepository(pool *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{pool: pool}
}

func (r *GroupRepository) Create(ctx context.Context, g *entity.Group) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO groups (slug, title, description)
		VALUES ($1, $2, $3)
		ON CONFLICT (slug) DO UPDATE SET title = EXCLUDED.title, description = EXCLUDED.description
		RETURNING id
	`, g.Slug, g.Title, g.Description)

	return row.Scan(&g.ID)
}

func (r *GroupRepository) GetBySlug(ctx context.Context, slug string) (*entity.Group, error) {
	g := &entity.Group{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, slug, title, description
		FROM groups
		WHERE slug = $1
	`, slug)

	if err := row.Scan(&g.ID, &g.Slug, &g.Title, &g.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return g, nil
}

var _ repository.GroupRepository = (*GroupRepository)(nil)
