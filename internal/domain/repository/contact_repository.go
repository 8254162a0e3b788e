package repository

import (
	"context"

	"github.com/devaldi/portfolio-api/internal/domain/entity"
)

// ContactRepository defines the interface for the contact inbox.
type ContactRepository interface {
	Create(ctx context.Context, m *entity.ContactMessage) error
	List(ctx context.Context) ([]entity.ContactMessage, error)
}
