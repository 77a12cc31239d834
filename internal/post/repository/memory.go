package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/blogforge/blog-service/internal/post"
)

// MemoryRepo is the in-memory stand-in used by unit tests; it mirrors the
// Mongo repo's semantics, including idempotent Delete.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*post.BlogPost
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*post.BlogPost)}
}

func (m *MemoryRepo) Insert(ctx context.Context, p *post.BlogPost) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = primitive.NewObjectID()
	if p.Created.IsZero() {
		p.Created = time.Now().UTC()
	}
	cp := *p
	m.store[p.ID.Hex()] = &cp
	return p.ID.Hex(), nil
}

func (m *MemoryRepo) InsertMany(ctx context.Context, posts []*post.BlogPost) error {
	for _, p := range posts {
		if _, err := m.Insert(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (m *MemoryRepo) FindByID(ctx context.Context, id string) (*post.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.store[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) FindAll(ctx context.Context) ([]*post.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*post.BlogPost, 0, len(m.store))
	for _, p := range m.store {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Created.Before(out[j].Created) })
	return out, nil
}

func (m *MemoryRepo) UpdateFields(ctx context.Context, id string, title, content *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.store[id]
	if !ok {
		return ErrNotFound
	}
	if title != nil {
		p.Title = *title
	}
	if content != nil {
		p.Content = *content
	}
	return nil
}

func (m *MemoryRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, id)
	return nil
}

func (m *MemoryRepo) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store = make(map[string]*post.BlogPost)
	return nil
}

func (m *MemoryRepo) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.store)), nil
}
