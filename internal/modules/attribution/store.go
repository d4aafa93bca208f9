package attribution

import (
	"encoding/json"
	"net/url"
	"time"
)

// The two logical storage keys: the JSON-encoded parameter map and the
// capture timestamp.
const (
	recordKey     = "th_attribution"
	capturedAtKey = "th_attribution_at"
)

// ParamNames is the fixed set of recognized marketing parameters.
var ParamNames = []string{
	"utm_source",
	"utm_medium",
	"utm_campaign",
	"utm_term",
	"utm_content",
}

// Record is the stored first-touch attribution: only the parameters that
// were actually present in the captured URL, plus when they were seen.
type Record struct {
	Params     map[string]string `json:"params"`
	CapturedAt time.Time         `json:"captured_at"`
}

// Storage is the persistent key/value surface the store writes through.
// Implementations must be origin-scoped and survive page reloads; Get
// reports absence rather than failing when storage is unavailable.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}

// Store captures first-click marketing attribution. A record is written at
// most once per client context and never overwritten until Clear.
type Store struct {
	storage Storage
	now     func() time.Time
}

func NewStore(storage Storage) *Store {
	return &Store{
		storage: storage,
		now:     time.Now,
	}
}

// Capture stores the recognized parameters from the query string. It is a
// no-op when a record already exists (earliest touch wins) or when none of
// the recognized parameters are present (no empty records).
func (s *Store) Capture(query url.Values) {
	if _, ok := s.storage.Get(recordKey); ok {
		return
	}

	params := map[string]string{}
	for _, name := range ParamNames {
		if v := query.Get(name); v != "" {
			params[name] = v
		}
	}
	if len(params) == 0 {
		return
	}

	raw, err := json.Marshal(params)
	if err != nil {
		return
	}

	s.storage.Set(recordKey, string(raw))
	s.storage.Set(capturedAtKey, s.now().UTC().Format(time.RFC3339))
}

// Read returns the stored record. Absent storage, a missing record and
// corrupt content all read as "no record"; Read never fails.
func (s *Store) Read() (*Record, bool) {
	raw, ok := s.storage.Get(recordKey)
	if !ok {
		return nil, false
	}

	var params map[string]string
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		return nil, false
	}

	rec := &Record{Params: params}
	if ts, ok := s.storage.Get(capturedAtKey); ok {
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			rec.CapturedAt = t
		}
	}
	return rec, true
}

// Clear removes the record and its timestamp unconditionally.
func (s *Store) Clear() {
	s.storage.Remove(recordKey)
	s.storage.Remove(capturedAtKey)
}
