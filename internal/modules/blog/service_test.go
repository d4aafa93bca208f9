package blog

import (
	"context"
	"testing"

	"transferhub/internal/domain"
	"transferhub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, p *domain.Post) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *MockPostRepository) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, p *domain.Post) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) List(ctx context.Context, publishedOnly bool) ([]domain.Post, error) {
	args := m.Called(ctx, publishedOnly)
	return args.Get(0).([]domain.Post), args.Error(1)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "airport-transfer-tips", Slugify("Airport Transfer Tips"))
	assert.Equal(t, "whats-new-in-2025", Slugify("  What's New in 2025! "))
	assert.Equal(t, "a-b", Slugify("a---b"))
}

func TestService_CreatePost_DefaultsSlugFromTitle(t *testing.T) {
	repo := new(MockPostRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Post) bool {
		return p.Slug == "hello-world" && p.ID != ""
	})).Return(nil)

	p, err := svc.CreatePost(context.Background(), CreatePostRequest{
		Title: "Hello World",
		Body:  "body",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello-world", p.Slug)
	repo.AssertExpectations(t)
}

func TestService_CreatePost_DuplicateSlug(t *testing.T) {
	repo := new(MockPostRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateSlug)

	_, err := svc.CreatePost(context.Background(), CreatePostRequest{
		Title: "Hello World",
		Body:  "body",
	})
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestService_GetPublished_HidesDrafts(t *testing.T) {
	repo := new(MockPostRepository)
	svc := NewService(repo)

	repo.On("GetBySlug", mock.Anything, "draft-post").Return(&domain.Post{
		ID:        "p1",
		Slug:      "draft-post",
		Published: false,
	}, nil)

	_, err := svc.GetPublished(context.Background(), "draft-post")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestService_UpdatePost_PartialFields(t *testing.T) {
	repo := new(MockPostRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, "p1").Return(&domain.Post{
		ID:    "p1",
		Title: "Old title",
		Slug:  "old-title",
		Body:  "old body",
	}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Post) bool {
		return p.Title == "New title" && p.Slug == "old-title" && p.Body == "old body"
	})).Return(nil)

	title := "New title"
	p, err := svc.UpdatePost(context.Background(), "p1", UpdatePostRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "New title", p.Title)
	repo.AssertExpectations(t)
}
