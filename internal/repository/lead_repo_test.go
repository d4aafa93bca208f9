package repository

import (
	"context"
	"testing"
	"time"

	"transferhub/internal/database"
	"transferhub/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func newDraftLead(email string, createdAt time.Time) *domain.Lead {
	google := "google"
	captured := createdAt
	return &domain.Lead{
		ID:               uuid.NewString(),
		BookingType:      domain.BookingStandard,
		PickupLocation:   "Sydney Airport",
		DropoffLocation:  "CBD",
		PickupDate:       "2025-07-01",
		PickupTime:       "10:30",
		Passengers:       2,
		FullName:         "Alice",
		Email:            email,
		QuotedPriceCents: 16000,
		Currency:         "AUD",
		UTMSource:        &google,
		UTMCapturedAt:    &captured,
		Status:           domain.LeadDraft,
		CreatedAt:        createdAt,
		UpdatedAt:        createdAt,
	}
}

func TestLeadRepository_CreateAndGet(t *testing.T) {
	repo := NewLeadRepository(setupDB(t))
	ctx := context.Background()

	l := newDraftLead("a@x.com", time.Now().UTC())
	require.NoError(t, repo.Create(ctx, l))

	got, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, int64(16000), got.QuotedPriceCents)
	require.NotNil(t, got.UTMSource)
	assert.Equal(t, "google", *got.UTMSource)
	assert.NotNil(t, got.UTMCapturedAt)
	assert.Equal(t, domain.LeadDraft, got.Status)
}

func TestLeadRepository_GetByID_NotFound(t *testing.T) {
	repo := NewLeadRepository(setupDB(t))

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLeadRepository_Update_PartialPatch(t *testing.T) {
	repo := NewLeadRepository(setupDB(t))
	ctx := context.Background()

	l := newDraftLead("a@x.com", time.Now().UTC().Add(-time.Hour))
	require.NoError(t, repo.Create(ctx, l))

	passengers := 3
	got, err := repo.Update(ctx, l.ID, LeadPatch{Passengers: &passengers})
	require.NoError(t, err)

	assert.Equal(t, 3, got.Passengers)
	// everything else untouched
	assert.Equal(t, "Sydney Airport", got.PickupLocation)
	assert.Equal(t, int64(16000), got.QuotedPriceCents)
	require.NotNil(t, got.UTMSource)
	assert.Equal(t, "google", *got.UTMSource, "patch type cannot carry utm columns")
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func TestLeadRepository_Update_NotFound(t *testing.T) {
	repo := NewLeadRepository(setupDB(t))

	passengers := 3
	_, err := repo.Update(context.Background(), "nope", LeadPatch{Passengers: &passengers})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLeadRepository_MarkConvertedByEmail(t *testing.T) {
	repo := NewLeadRepository(setupDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	first := newDraftLead("a@x.com", now.Add(-48*time.Hour))
	second := newDraftLead("a@x.com", now.Add(-time.Hour))
	other := newDraftLead("b@y.com", now.Add(-time.Hour))
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, other))

	n, err := repo.MarkConvertedByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n, "all draft rows for the email convert together")

	n, err = repo.MarkConvertedByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Zero(t, n, "idempotent: no draft rows left")

	got, err := repo.GetByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LeadDraft, got.Status, "other emails untouched")
}

func TestLeadRepository_FindAbandoned(t *testing.T) {
	repo := NewLeadRepository(setupDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	stale := newDraftLead("old@x.com", now.Add(-30*time.Hour))
	staler := newDraftLead("older@x.com", now.Add(-72*time.Hour))
	fresh := newDraftLead("new@x.com", now.Add(-time.Hour))
	converted := newDraftLead("paid@x.com", now.Add(-30*time.Hour))
	converted.Status = domain.LeadConverted

	for _, l := range []*domain.Lead{stale, staler, fresh, converted} {
		require.NoError(t, repo.Create(ctx, l))
	}

	got, err := repo.FindAbandoned(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, stale.ID, got[0].ID, "newest first")
	assert.Equal(t, staler.ID, got[1].ID)
}

func TestLeadRepository_FindAbandoned_ExcludesAfterConversion(t *testing.T) {
	repo := NewLeadRepository(setupDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	l := newDraftLead("a@x.com", now.Add(-25*time.Hour))
	require.NoError(t, repo.Create(ctx, l))

	got, err := repo.FindAbandoned(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)

	_, err = repo.MarkConvertedByEmail(ctx, "a@x.com")
	require.NoError(t, err)

	got, err = repo.FindAbandoned(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLeadRepository_List_StatusFilter(t *testing.T) {
	repo := NewLeadRepository(setupDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	draft := newDraftLead("a@x.com", now.Add(-time.Hour))
	converted := newDraftLead("b@y.com", now)
	converted.Status = domain.LeadConverted
	require.NoError(t, repo.Create(ctx, draft))
	require.NoError(t, repo.Create(ctx, converted))

	status := domain.LeadDraft
	leads, total, err := repo.List(ctx, &status, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, leads, 1)
	assert.Equal(t, draft.ID, leads[0].ID)

	leads, total, err = repo.List(ctx, nil, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, leads, 2)
}
