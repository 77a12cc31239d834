package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blogforge/blog-service/internal/post"
	"github.com/blogforge/blog-service/internal/post/repository"
)

var (
	ErrNotFound = errors.New("not found")
	ErrInvalid  = errors.New("invalid post")
)

// Service defines the blog-post business operations used by the handler layer.
type Service interface {
	Create(ctx context.Context, p *post.BlogPost) (string, error)
	Get(ctx context.Context, id string) (*post.BlogPost, error)
	List(ctx context.Context) ([]*post.BlogPost, error)
	Update(ctx context.Context, id string, title, content *string) error
	Delete(ctx context.Context, id string) error
}

// New returns a Service over the given repository. Caller picks the backing
// store (Mongo in deployment, memory in unit tests).
func New(repo repository.Repository) Service {
	return &svc{repo: repo}
}

type svc struct {
	repo repository.Repository
}

// Create validates the candidate and persists it; the store assigns id and
// created. No partial record survives a failed validation.
func (s *svc) Create(ctx context.Context, p *post.BlogPost) (string, error) {
	if err := validate(p); err != nil {
		return "", err
	}
	return s.repo.Insert(ctx, p)
}

func (s *svc) Get(ctx context.Context, id string) (*post.BlogPost, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *svc) List(ctx context.Context) ([]*post.BlogPost, error) {
	return s.repo.FindAll(ctx)
}

// Update mutates title and/or content; a field absent from the request is
// left as stored. Supplying a field blank would break the all-fields-populated
// invariant, so that is rejected. Author and created stay as written at
// create time regardless of what the caller supplies.
func (s *svc) Update(ctx context.Context, id string, title, content *string) error {
	if title != nil && strings.TrimSpace(*title) == "" {
		return fmt.Errorf("%w: title must not be empty", ErrInvalid)
	}
	if content != nil && strings.TrimSpace(*content) == "" {
		return fmt.Errorf("%w: content must not be empty", ErrInvalid)
	}
	err := s.repo.UpdateFields(ctx, id, title, content)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// Delete is idempotent: a missing id is success, not an error.
func (s *svc) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validate(p *post.BlogPost) error {
	for _, f := range []struct{ name, val string }{
		{"author.firstName", p.Author.FirstName},
		{"author.lastName", p.Author.LastName},
		{"title", p.Title},
		{"content", p.Content},
	} {
		if strings.TrimSpace(f.val) == "" {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalid, f.name)
		}
	}
	return nil
}
