package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devaldi/portfolio-api/internal/domain/entity"
	"github.com/devaldi/portfolio-api/internal/domain/repository"
)

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) Create(ctx context.Context, m *entity.ContactMessage) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO contact_messages (name, email, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, m.Name, m.Email, m.Message)

	return row.Scan(&m.ID, &m.CreatedAt)
}

func (r *ContactRepository) List(ctx context.Context) ([]entity.ContactMessage, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]entity.ContactMessage, 0)
	for rows.Next() {
		var m entity.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

var _ repository.ContactRepository = (*ContactRepository)(nil)
