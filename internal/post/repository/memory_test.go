package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/blogforge/blog-service/internal/post"
)

func strp(s string) *string { return &s }

func TestMemoryRepoCRUD(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()

	p := &post.BlogPost{
		Author:  post.Author{FirstName: "Jane", LastName: "Doe"},
		Title:   "hello",
		Content: "world",
	}
	id, err := r.Insert(ctx, p)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.False(t, p.Created.IsZero())

	got, err := r.FindByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "hello", got.Title)
	require.Equal(t, "Jane", got.Author.FirstName)

	list, err := r.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, r.UpdateFields(ctx, id, strp("new title"), strp("new content")))
	got2, err := r.FindByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "new title", got2.Title)
	require.Equal(t, "new content", got2.Content)
	// author and created survive updates untouched
	require.Equal(t, got.Author, got2.Author)
	require.Equal(t, got.Created, got2.Created)

	require.NoError(t, r.Delete(ctx, id))
	_, err = r.FindByID(ctx, id)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepoDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()

	id, err := r.Insert(ctx, &post.BlogPost{
		Author: post.Author{FirstName: "A", LastName: "B"}, Title: "t", Content: "c",
	})
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, id))
	require.NoError(t, r.Delete(ctx, id))
	require.NoError(t, r.Delete(ctx, "never-existed"))

	n, err := r.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestMemoryRepoUpdateMissing(t *testing.T) {
	r := NewMemoryRepo()
	err := r.UpdateFields(context.Background(), "missing", strp("t"), strp("c"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepoUpdatePartial(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()

	id, err := r.Insert(ctx, &post.BlogPost{
		Author: post.Author{FirstName: "Jane", LastName: "Doe"}, Title: "hello", Content: "world",
	})
	require.NoError(t, err)

	require.NoError(t, r.UpdateFields(ctx, id, strp("changed"), nil))
	got, err := r.FindByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "changed", got.Title)
	require.Equal(t, "world", got.Content)

	require.NoError(t, r.UpdateFields(ctx, id, nil, strp("altered")))
	got, err = r.FindByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "changed", got.Title)
	require.Equal(t, "altered", got.Content)

	// no fields: existing id succeeds, missing id does not
	require.NoError(t, r.UpdateFields(ctx, id, nil, nil))
	require.ErrorIs(t, r.UpdateFields(ctx, "missing", nil, nil), ErrNotFound)
}

func TestMemoryRepoFindAllSortedByCreated(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()

	now := time.Now().UTC()
	// insert out of order; Insert keeps a caller-supplied Created
	for _, p := range []*post.BlogPost{
		{Author: post.Author{FirstName: "A", LastName: "B"}, Title: "second", Content: "x", Created: now.Add(-time.Hour)},
		{Author: post.Author{FirstName: "C", LastName: "D"}, Title: "third", Content: "y", Created: now},
		{Author: post.Author{FirstName: "E", LastName: "F"}, Title: "first", Content: "z", Created: now.Add(-2 * time.Hour)},
	} {
		_, err := r.Insert(ctx, p)
		require.NoError(t, err)
	}

	list, err := r.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	titles := []string{list[0].Title, list[1].Title, list[2].Title}
	require.Equal(t, []string{"first", "second", "third"}, titles)
}

func TestMemoryRepoInsertManyAndDeleteAll(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()

	batch := []*post.BlogPost{
		{Author: post.Author{FirstName: "A", LastName: "B"}, Title: "1", Content: "x"},
		{Author: post.Author{FirstName: "C", LastName: "D"}, Title: "2", Content: "y"},
		{Author: post.Author{FirstName: "E", LastName: "F"}, Title: "3", Content: "z"},
	}
	require.NoError(t, r.InsertMany(ctx, batch))

	n, err := r.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, n)

	require.NoError(t, r.DeleteAll(ctx))
	n, err = r.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}
