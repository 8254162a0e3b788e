package repository

import (
	"context"

	"github.com/devaldi/portfolio-api/internal/domain/entity"
)

// PostRepository defines the interface for blog post persistence.
//
// DeleteWithComments removes the post's comments before the post itself,
// inside one transaction when the store supports it. The comments-first
// order is load-bearing: a failure half way leaves a comment-free post,
// never comments pointing at a missing post.
type PostRepository interface {
	Create(ctx context.Context, p *entity.BlogPost) error
	GetByID(ctx context.Context, id string) (*entity.BlogPost, error)
	List(ctx context.Context) ([]entity.BlogPost, error)
	Update(ctx context.Context, p *entity.BlogPost) error
	DeleteWithComments(ctx context.Context, id string) error
}
