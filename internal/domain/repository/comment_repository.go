package repository

import (
	"context"

	"github.com/devaldi/portfolio-api/internal/domain/entity"
)

// CommentRepository defines the interface for comment persistence.
// Comments have no update or direct delete; the only removal path is the
// cascade in PostRepository.DeleteWithComments.
type CommentRepository interface {
	Create(ctx context.Context, c *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]entity.Comment, error)
}
