package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"transferhub/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateSlug is returned when a post insert or update hits the
// unique index on slug.
var ErrDuplicateSlug = errors.New("slug already in use")

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

type postModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Title     string    `gorm:"column:title"`
	Slug      string    `gorm:"column:slug;uniqueIndex"`
	Excerpt   string    `gorm:"column:excerpt"`
	Body      string    `gorm:"column:body;type:text"`
	Published bool      `gorm:"column:published"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (postModel) TableName() string { return "posts" }

func toDomainPost(m postModel) *domain.Post {
	return &domain.Post{
		ID:        m.ID,
		Title:     m.Title,
		Slug:      m.Slug,
		Excerpt:   m.Excerpt,
		Body:      m.Body,
		Published: m.Published,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toPostModel(p *domain.Post) postModel {
	return postModel{
		ID:        p.ID,
		Title:     p.Title,
		Slug:      p.Slug,
		Excerpt:   p.Excerpt,
		Body:      p.Body,
		Published: p.Published,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// isUniqueViolation covers both backends: pgconn error code 23505 for
// PostgreSQL, message sniffing for SQLite.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (r *PostRepository) Create(ctx context.Context, p *domain.Post) error {
	m := toPostModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if isUniqueViolation(tx.Error) {
		return ErrDuplicateSlug
	}
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPost(m)
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	var m postModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPost(m), nil
}

func (r *PostRepository) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	var m postModel
	tx := r.db.WithContext(ctx).First(&m, "slug = ?", slug)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPost(m), nil
}

func (r *PostRepository) Update(ctx context.Context, p *domain.Post) error {
	m := toPostModel(p)
	tx := r.db.WithContext(ctx).Model(&postModel{}).Where("id = ?", m.ID).Updates(map[string]interface{}{
		"title":      m.Title,
		"slug":       m.Slug,
		"excerpt":    m.Excerpt,
		"body":       m.Body,
		"published":  m.Published,
		"updated_at": time.Now().UTC(),
	})
	if isUniqueViolation(tx.Error) {
		return ErrDuplicateSlug
	}
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&postModel{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns posts newest first. publishedOnly hides drafts from the
// public site; the CMS passes false to see everything.
func (r *PostRepository) List(ctx context.Context, publishedOnly bool) ([]domain.Post, error) {
	q := r.db.WithContext(ctx).Model(&postModel{})
	if publishedOnly {
		q = q.Where("published = ?", true)
	}

	var models []postModel
	tx := q.Order("created_at DESC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	posts := make([]domain.Post, 0, len(models))
	for _, m := range models {
		posts = append(posts, *toDomainPost(m))
	}
	return posts, nil
}
