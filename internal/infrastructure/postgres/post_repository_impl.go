package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-blogfeed/internal/domain/entity"
	"github.com/oksasatya/go-blogfeed/internal/domain/repository"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

const postColumns = `
	p.id, p.text, p.author_id, u.username, p.group_id, g.slug, COALESCE(p.image_url, ''), p.created_at
`

const postJoins = `
	FROM posts p
	JOIN users u ON u.id = p.author_id
	LEFT JOIN groups g ON g.id = p.group_id
`

// filterClause renders a PostFilter into a WHERE clause and its args.
// Args are numbered from $1.
func filterClause(f repository.PostFilter) (string, []any) {
	var conds []string
	var args []any

	if f.AuthorIn != nil {
		args = append(args, f.AuthorIn)
		conds = append(conds, fmt.Sprintf("p.author_id = ANY($%d)", len(args)))
	} else if f.AuthorID != nil {
		args = append(args, *f.AuthorID)
		conds = append(conds, fmt.Sprintf("p.author_id = $%d", len(args)))
	}
	if f.GroupID != nil {
		args = append(args, *f.GroupID)
		conds = append(conds, fmt.Sprintf("p.group_id = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanPost(row pgx.Row, p *entity.Post) error {
	return row.Scan(&p.ID, &p.Text, &p.AuthorID, &p.Author, &p.GroupID, &p.GroupSlug, &p.ImageURL, &p.CreatedAt)
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	var img any
	if p.ImageURL != "" {
		img = p.ImageURL
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (text, author_id, group_id, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, p.Text, p.AuthorID, p.GroupID, img)

	return row.Scan(&p.ID, &p.CreatedAt)
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	p := &entity.Post{}

	row := r.pool.QueryRow(ctx, `SELECT`+postColumns+postJoins+`WHERE p.id = $1`, id)

	if err := scanPost(row, p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return p, nil
}

// Update rewrites the mutable columns. Author and creation time are
// immutable and never touched.
func (r *PostRepository) Update(ctx context.Context, p *entity.Post) error {
	var img any
	if p.ImageURL != "" {
		img = p.ImageURL
	}
	res, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET text = $1, group_id = $2, image_url = $3
		WHERE id = $4
	`, p.Text, p.GroupID, img, p.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// List returns one page of posts matching the filter, newest first.
// Ties on created_at break on id so pages stay stable.
func (r *PostRepository) List(ctx context.Context, f repository.PostFilter, limit, offset int) ([]entity.Post, error) {
	where, args := filterClause(f)
	args = append(args, limit, offset)
	q := `SELECT` + postColumns + postJoins + where +
		fmt.Sprintf(` ORDER BY p.created_at DESC, p.id DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []entity.Post
	for rows.Next() {
		var p entity.Post
		if err := scanPost(rows, &p); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) Count(ctx context.Context, f repository.PostFilter) (int, error) {
	where, args := filterClause(f)

	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM posts p`+where, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
