package attribution

import (
	"github.com/gin-gonic/gin"
)

// Cookies live for a year; attribution is only dropped by an explicit Clear.
const cookieMaxAge = 365 * 24 * 60 * 60

// CookieStorage persists attribution in origin-scoped HTTP cookies on a
// single request/response pair. Writes issued in the current request are
// visible to later requests, not to this one; first-click capture only
// needs the pre-existing cookie either way.
type CookieStorage struct {
	c      *gin.Context
	path   string
	secure bool
}

func NewCookieStorage(c *gin.Context, path string, secure bool) *CookieStorage {
	if path == "" {
		path = "/"
	}
	return &CookieStorage{c: c, path: path, secure: secure}
}

func (s *CookieStorage) Get(key string) (string, bool) {
	v, err := s.c.Cookie(key)
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}

func (s *CookieStorage) Set(key, value string) {
	s.c.SetCookie(key, value, cookieMaxAge, s.path, "", s.secure, true)
}

func (s *CookieStorage) Remove(key string) {
	s.c.SetCookie(key, "", -1, s.path, "", s.secure, true)
}

// MemoryStorage is an in-process Storage for tests and non-HTTP callers.
type MemoryStorage struct {
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: map[string]string{}}
}

func (s *MemoryStorage) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStorage) Set(key, value string) {
	s.values[key] = value
}

func (s *MemoryStorage) Remove(key string) {
	delete(s.values, key)
}
