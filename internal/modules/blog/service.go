package blog

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"transferhub/internal/domain"
	"transferhub/internal/repository"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *domain.Post) error
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Post, error)
	Update(ctx context.Context, p *domain.Post) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, publishedOnly bool) ([]domain.Post, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a title into a url-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugStrip.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func (s *Service) CreatePost(ctx context.Context, req CreatePostRequest) (*domain.Post, error) {
	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Title)
	}

	now := time.Now().UTC()
	p := &domain.Post{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Slug:      slug,
		Excerpt:   req.Excerpt,
		Body:      req.Body,
		Published: req.Published,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.repo.Create(ctx, p)
	if errors.Is(err, repository.ErrDuplicateSlug) {
		return nil, ErrSlugTaken
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) UpdatePost(ctx context.Context, id string, req UpdatePostRequest) (*domain.Post, error) {
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Slug != nil {
		p.Slug = *req.Slug
	}
	if req.Excerpt != nil {
		p.Excerpt = *req.Excerpt
	}
	if req.Body != nil {
		p.Body = *req.Body
	}
	if req.Published != nil {
		p.Published = *req.Published
	}

	err = s.repo.Update(ctx, p)
	if errors.Is(err, repository.ErrDuplicateSlug) {
		return nil, ErrSlugTaken
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) DeletePost(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPostNotFound
	}
	return err
}

// GetPublished serves the public site: drafts read as not found.
func (s *Service) GetPublished(ctx context.Context, slug string) (*domain.Post, error) {
	p, err := s.repo.GetBySlug(ctx, slug)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	if !p.Published {
		return nil, ErrPostNotFound
	}
	return p, nil
}

func (s *Service) ListPublished(ctx context.Context) ([]domain.Post, error) {
	return s.repo.List(ctx, true)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Post, error) {
	return s.repo.List(ctx, false)
}
