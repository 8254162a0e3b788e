package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devaldi/portfolio-api/internal/domain/entity"
	"github.com/devaldi/portfolio-api/internal/domain/repository"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) Create(ctx context.Context, p *entity.BlogPost) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (title, content, author_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, p.Title, p.Content, p.AuthorID)

	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*entity.BlogPost, error) {
	p := &entity.BlogPost{}
	row := r.pool.QueryRow(ctx, `
		SELECT p.id, p.title, p.content, p.author_id, u.username, p.created_at, p.updated_at
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`, id)

	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID, &p.AuthorUsername,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PostRepository) List(ctx context.Context) ([]entity.BlogPost, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.title, p.content, p.author_id, u.username, p.created_at, p.updated_at
		FROM posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]entity.BlogPost, 0)
	for rows.Next() {
		var p entity.BlogPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID, &p.AuthorUsername,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// Update persists title and content. author_id is deliberately absent from
// the SET list; ownership never transfers.
func (r *PostRepository) Update(ctx context.Context, p *entity.BlogPost) error {
	p.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET title = $1, content = $2, updated_at = $3
		WHERE id = $4
	`, p.Title, p.Content, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteWithComments removes a post and its comments in one transaction,
// comments first. If the transaction aborts after the comment delete, the
// rollback restores both; on stores without transactions the same statement
// order would leave at worst a comment-free post, never dangling comments.
func (r *PostRepository) DeleteWithComments(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE post_id = $1`, id); err != nil {
		return err
	}
	res, err := tx.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return tx.Commit(ctx)
}

var _ repository.PostRepository = (*PostRepository)(nil)
