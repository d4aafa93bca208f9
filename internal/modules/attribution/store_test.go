package attribution

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Capture_FirstClickWins(t *testing.T) {
	store := NewStore(NewMemoryStorage())

	first, _ := url.ParseQuery("utm_source=google&utm_campaign=summer")
	store.Capture(first)

	second, _ := url.ParseQuery("utm_source=facebook&utm_medium=cpc")
	store.Capture(second)

	rec, ok := store.Read()
	require.True(t, ok)
	assert.Equal(t, "google", rec.Params["utm_source"])
	assert.Equal(t, "summer", rec.Params["utm_campaign"])
	_, hasMedium := rec.Params["utm_medium"]
	assert.False(t, hasMedium, "second capture must not add fields")
}

func TestStore_Capture_NoRecognizedParams(t *testing.T) {
	store := NewStore(NewMemoryStorage())

	q, _ := url.ParseQuery("page=2&ref=footer")
	store.Capture(q)

	_, ok := store.Read()
	assert.False(t, ok, "no empty record should be written")
}

func TestStore_Capture_OmitsUnsetParams(t *testing.T) {
	store := NewStore(NewMemoryStorage())

	q, _ := url.ParseQuery("utm_source=google&utm_term=")
	store.Capture(q)

	rec, ok := store.Read()
	require.True(t, ok)
	assert.Equal(t, map[string]string{"utm_source": "google"}, rec.Params)
	assert.False(t, rec.CapturedAt.IsZero())
	assert.WithinDuration(t, time.Now(), rec.CapturedAt, time.Minute)
}

func TestStore_Read_CorruptContent(t *testing.T) {
	storage := NewMemoryStorage()
	storage.Set(recordKey, "{not json")

	store := NewStore(storage)
	rec, ok := store.Read()
	assert.False(t, ok)
	assert.Nil(t, rec)
}

func TestStore_Read_EmptyStorage(t *testing.T) {
	store := NewStore(NewMemoryStorage())
	rec, ok := store.Read()
	assert.False(t, ok)
	assert.Nil(t, rec)
}

func TestStore_Clear(t *testing.T) {
	store := NewStore(NewMemoryStorage())

	q, _ := url.ParseQuery("utm_source=google")
	store.Capture(q)
	_, ok := store.Read()
	require.True(t, ok)

	store.Clear()
	_, ok = store.Read()
	assert.False(t, ok)

	// a cleared context can capture again
	q2, _ := url.ParseQuery("utm_source=facebook")
	store.Capture(q2)
	rec, ok := store.Read()
	require.True(t, ok)
	assert.Equal(t, "facebook", rec.Params["utm_source"])
}
