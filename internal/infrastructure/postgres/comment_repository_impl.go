package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devaldi/portfolio-api/internal/domain/entity"
	"github.com/devaldi/portfolio-api/internal/domain/repository"
)

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) Create(ctx context.Context, c *entity.Comment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO comments (post_id, body, author_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, c.PostID, c.Body, c.AuthorID)

	return row.Scan(&c.ID, &c.CreatedAt)
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	c := &entity.Comment{}
	row := r.pool.QueryRow(ctx, `
		SELECT c.id, c.post_id, c.body, c.author_id, u.username, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.id = $1
	`, id)

	if err := row.Scan(&c.ID, &c.PostID, &c.Body, &c.AuthorID, &c.AuthorUsername, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID string) ([]entity.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.post_id, c.body, c.author_id, u.username, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at DESC
	`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]entity.Comment, 0)
	for rows.Next() {
		var c entity.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.Body, &c.AuthorID, &c.AuthorUsername, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
