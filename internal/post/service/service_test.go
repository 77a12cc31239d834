package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blogforge/blog-service/internal/post"
	"github.com/blogforge/blog-service/internal/post/repository"
)

func newSvc() Service {
	return New(repository.NewMemoryRepo())
}

func strp(s string) *string { return &s }

func candidate() *post.BlogPost {
	return &post.BlogPost{
		Author:  post.Author{FirstName: "Jane", LastName: "Doe"},
		Title:   "Hello",
		Content: "World",
	}
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := newSvc()

	id, err := s.Create(ctx, candidate())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Hello", got.Title)
	require.Equal(t, "World", got.Content)
	require.Equal(t, "Jane", got.Author.FirstName)
	require.Equal(t, "Doe", got.Author.LastName)
	require.False(t, got.Created.IsZero())
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	s := newSvc()

	cases := map[string]*post.BlogPost{
		"missing firstName": {Author: post.Author{LastName: "Doe"}, Title: "t", Content: "c"},
		"missing lastName":  {Author: post.Author{FirstName: "Jane"}, Title: "t", Content: "c"},
		"missing title":     {Author: post.Author{FirstName: "Jane", LastName: "Doe"}, Content: "c"},
		"missing content":   {Author: post.Author{FirstName: "Jane", LastName: "Doe"}, Title: "t"},
		"blank title":       {Author: post.Author{FirstName: "Jane", LastName: "Doe"}, Title: "   ", Content: "c"},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := s.Create(ctx, p)
			require.ErrorIs(t, err, ErrInvalid)
		})
	}

	// nothing was persisted by the failed creates
	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestUpdateMutatesOnlyTitleAndContent(t *testing.T) {
	ctx := context.Background()
	s := newSvc()

	id, err := s.Create(ctx, candidate())
	require.NoError(t, err)
	before, err := s.Get(ctx, id)
	require.NoError(t, err)

	require.NoError(t, s.Update(ctx, id, strp("fofofofofofofof"), strp("futuristic fusion")))

	after, err := s.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "fofofofofofofof", after.Title)
	require.Equal(t, "futuristic fusion", after.Content)
	require.Equal(t, before.Author, after.Author)
	require.Equal(t, before.Created, after.Created)
	require.Equal(t, before.ID, after.ID)
}

func TestUpdatePartialBody(t *testing.T) {
	ctx := context.Background()
	s := newSvc()

	id, err := s.Create(ctx, candidate())
	require.NoError(t, err)

	// title only: content stays as stored
	require.NoError(t, s.Update(ctx, id, strp("new title"), nil))
	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "new title", got.Title)
	require.Equal(t, "World", got.Content)

	// content only: title stays as stored
	require.NoError(t, s.Update(ctx, id, nil, strp("new content")))
	got, err = s.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "new title", got.Title)
	require.Equal(t, "new content", got.Content)

	// no mutable fields at all: success against an existing id
	require.NoError(t, s.Update(ctx, id, nil, nil))
	// but still not-found for a missing one
	require.ErrorIs(t, s.Update(ctx, "64b000000000000000000000", nil, nil), ErrNotFound)
}

func TestUpdateMissingPost(t *testing.T) {
	s := newSvc()
	err := s.Update(context.Background(), "64b000000000000000000000", strp("t"), strp("c"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateRejectsBlankFields(t *testing.T) {
	ctx := context.Background()
	s := newSvc()
	id, err := s.Create(ctx, candidate())
	require.NoError(t, err)

	// a supplied-but-blank field would leave a partial record behind
	require.ErrorIs(t, s.Update(ctx, id, strp(""), strp("c")), ErrInvalid)
	require.ErrorIs(t, s.Update(ctx, id, strp("t"), strp("   ")), ErrInvalid)
}

func TestDeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newSvc()
	id, err := s.Create(ctx, candidate())
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, id))
	require.NoError(t, s.Delete(ctx, id))

	_, err = s.Get(ctx, id)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListReturnsAll(t *testing.T) {
	ctx := context.Background()
	s := newSvc()
	for i := 0; i < 3; i++ {
		_, err := s.Create(ctx, candidate())
		require.NoError(t, err)
	}
	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
}
