package console

import (
	"crypto/subtle"
	"errors"
	"strings"

	"transferhub/internal/pkg/session"

	"golang.org/x/crypto/bcrypt"
)

var ErrBadCredentials = errors.New("bad credentials")

// Service authenticates the two password-gated consoles. There are no user
// accounts: each console has one shared password from the environment, and
// a successful login is an opaque scoped session cookie.
type Service struct {
	sessions      *session.Service
	adminPassword string
	cmsPassword   string
}

func NewService(sessions *session.Service, adminPassword, cmsPassword string) *Service {
	return &Service{
		sessions:      sessions,
		adminPassword: adminPassword,
		cmsPassword:   cmsPassword,
	}
}

func (s *Service) Login(console session.Console, password string) (string, error) {
	var expected string
	switch console {
	case session.ConsoleAdmin:
		expected = s.adminPassword
	case session.ConsoleCMS:
		expected = s.cmsPassword
	default:
		return "", ErrBadCredentials
	}

	if expected == "" || !passwordMatches(expected, password) {
		return "", ErrBadCredentials
	}

	return s.sessions.Issue(console)
}

// passwordMatches accepts either a bcrypt hash ("$2..." values) or a plain
// value compared in constant time.
func passwordMatches(expected, given string) bool {
	if strings.HasPrefix(expected, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(expected), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(given)) == 1
}
