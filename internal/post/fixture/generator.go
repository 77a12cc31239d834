// Package fixture produces well-formed synthetic blog posts for seeding
// test databases. The generator is pluggable so suites that need stable
// values can swap in a deterministic seed.
package fixture

import (
	"github.com/brianvoe/gofakeit/v7"

	"github.com/blogforge/blog-service/internal/post"
)

// Generator produces candidate posts that pass create-validation: every
// field non-empty, id and created left for the store to assign.
type Generator interface {
	Post() *post.BlogPost
	Batch(n int) []*post.BlogPost
}

type fakeitGenerator struct {
	f *gofakeit.Faker
}

// NewGenerator returns a randomized generator.
func NewGenerator() Generator {
	return &fakeitGenerator{f: gofakeit.New(0)}
}

// NewSeededGenerator returns a generator producing the same sequence for the
// same seed.
func NewSeededGenerator(seed uint64) Generator {
	return &fakeitGenerator{f: gofakeit.New(seed)}
}

func (g *fakeitGenerator) Post() *post.BlogPost {
	return &post.BlogPost{
		Author: post.Author{
			FirstName: g.f.FirstName(),
			LastName:  g.f.LastName(),
		},
		Title:   g.f.Sentence(4),
		Content: g.f.Paragraph(1, 3, 12, " "),
	}
}

func (g *fakeitGenerator) Batch(n int) []*post.BlogPost {
	out := make([]*post.BlogPost, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.Post())
	}
	return out
}
