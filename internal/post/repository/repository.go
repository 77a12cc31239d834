package repository

import (
	"context"
	"errors"

	"github.com/blogforge/blog-service/internal/post"
)

var (
	ErrNotFound = errors.New("post not found")
)

// Repository abstracts the document store so the service layer can run
// against MongoDB in deployment and the in-memory store in unit tests.
// UpdateFields applies only the non-nil fields so partial updates leave the
// rest of the document untouched. Delete is idempotent: removing an id that
// does not exist is not an error.
type Repository interface {
	Insert(ctx context.Context, p *post.BlogPost) (string, error)
	InsertMany(ctx context.Context, posts []*post.BlogPost) error
	FindByID(ctx context.Context, id string) (*post.BlogPost, error)
	FindAll(ctx context.Context) ([]*post.BlogPost, error)
	UpdateFields(ctx context.Context, id string, title, content *string) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}
