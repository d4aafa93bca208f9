package repository

import (
	"context"
	"testing"
	"time"

	"transferhub/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPost(slug string, published bool) *domain.Post {
	now := time.Now().UTC()
	return &domain.Post{
		ID:        uuid.NewString(),
		Title:     "Title " + slug,
		Slug:      slug,
		Body:      "body",
		Published: published,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestPostRepository_DuplicateSlug(t *testing.T) {
	repo := NewPostRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newPost("hello", true)))

	err := repo.Create(ctx, newPost("hello", false))
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestPostRepository_ListPublishedOnly(t *testing.T) {
	repo := NewPostRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newPost("live", true)))
	require.NoError(t, repo.Create(ctx, newPost("draft", false)))

	posts, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "live", posts[0].Slug)

	posts, err = repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestPostRepository_UpdateAndDelete(t *testing.T) {
	repo := NewPostRepository(setupDB(t))
	ctx := context.Background()

	p := newPost("hello", false)
	require.NoError(t, repo.Create(ctx, p))

	p.Published = true
	p.Title = "Updated"
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetBySlug(ctx, "hello")
	require.NoError(t, err)
	assert.True(t, got.Published)
	assert.Equal(t, "Updated", got.Title)

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = repo.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPriceRepository_FindRoute(t *testing.T) {
	repo := NewPriceRepository(setupDB(t))
	ctx := context.Background()

	now := time.Now().UTC()
	p := &domain.RoutePrice{
		Pickup:      "airport",
		Dropoff:     "cbd",
		VehicleType: "sedan",
		PriceCents:  9500,
		Currency:    "AUD",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, repo.Create(ctx, p))
	assert.NotZero(t, p.ID)

	got, err := repo.Find(ctx, "airport", "cbd", "sedan")
	require.NoError(t, err)
	assert.Equal(t, int64(9500), got.PriceCents)

	_, err = repo.Find(ctx, "airport", "hills", "sedan")
	assert.ErrorIs(t, err, ErrNotFound)
}
