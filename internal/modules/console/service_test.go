package console

import (
	"testing"
	"time"

	"transferhub/internal/pkg/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(adminPassword, cmsPassword string) (*Service, *session.Service) {
	sessions := session.New("test-secret", time.Hour)
	return NewService(sessions, adminPassword, cmsPassword), sessions
}

func TestService_Login_PlainPassword(t *testing.T) {
	svc, sessions := newTestService("hunter2", "cms-pass")

	token, err := svc.Login(session.ConsoleAdmin, "hunter2")
	require.NoError(t, err)

	claims, err := sessions.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, session.ConsoleAdmin, claims.Console)
}

func TestService_Login_WrongPassword(t *testing.T) {
	svc, _ := newTestService("hunter2", "cms-pass")

	_, err := svc.Login(session.ConsoleAdmin, "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestService_Login_BcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	svc, _ := newTestService(string(hash), "cms-pass")

	_, err = svc.Login(session.ConsoleAdmin, "hunter2")
	assert.NoError(t, err)

	_, err = svc.Login(session.ConsoleAdmin, "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestService_Login_ScopesAreSeparate(t *testing.T) {
	svc, sessions := newTestService("admin-pass", "cms-pass")

	// cms password must not open the admin console
	_, err := svc.Login(session.ConsoleAdmin, "cms-pass")
	assert.ErrorIs(t, err, ErrBadCredentials)

	token, err := svc.Login(session.ConsoleCMS, "cms-pass")
	require.NoError(t, err)
	claims, err := sessions.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, session.ConsoleCMS, claims.Console)
}

func TestService_Login_EmptyConfiguredPassword(t *testing.T) {
	svc, _ := newTestService("", "")

	_, err := svc.Login(session.ConsoleAdmin, "")
	assert.ErrorIs(t, err, ErrBadCredentials)
}
