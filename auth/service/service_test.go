package service

import (
	"context"
	"sync"
	"testing"

	"github.com/debduthira/valorant-prs/auth/storage"
	"github.com/debduthira/valorant-prs/auth/users"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memUser struct {
	user users.User
	hash []byte
}

type memStorage struct {
	mu    sync.Mutex
	users map[string]memUser
}

func newMemStorage() *memStorage {
	return &memStorage{users: make(map[string]memUser)}
}

func (m *memStorage) GetUser(_ context.Context, id uuid.UUID) (users.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.user.ID == id {
			return u.user, nil
		}
	}
	return users.User{}, storage.ErrUserNotFound
}

func (m *memStorage) GetUserByName(_ context.Context, name string) (users.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[name]
	if !ok {
		return users.User{}, storage.ErrUserNotFound
	}
	return u.user, nil
}

func (m *memStorage) GetUserSecret(_ context.Context, name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[name]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return u.hash, nil
}

func (m *memStorage) CreateUser(_ context.Context, user users.User, passwordHash []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.Name]; ok {
		return storage.ErrUserExists
	}
	m.users[user.Name] = memUser{user: user, hash: passwordHash}
	return nil
}

var _ storage.AuthStorage = (*memStorage)(nil)

func newTestService(st storage.AuthStorage) *Service {
	return New(Config{BcryptCost: bcrypt.MinCost, Expiration: "1h", Token: "test-token"}, st)
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	st := newMemStorage()
	s := newTestService(st)

	err := s.Register(ctx, "jett_main", "hunter2", "hunter2")
	require.NoError(t, err)

	u, err := st.GetUserByName(ctx, "jett_main")
	require.NoError(t, err)
	require.Equal(t, users.RolePlayer, u.Role)
	require.NotEqual(t, uuid.Nil, u.ID)
}

func TestService_Register_passwordMismatch(t *testing.T) {
	ctx := context.Background()
	st := newMemStorage()
	s := newTestService(st)

	err := s.Register(ctx, "jett_main", "hunter2", "hunter3")
	require.ErrorIs(t, err, ErrPasswordMismatch)
	require.Empty(t, st.users)
}

func TestService_Register_duplicate(t *testing.T) {
	ctx := context.Background()
	st := newMemStorage()
	s := newTestService(st)

	require.NoError(t, s.Register(ctx, "jett_main", "hunter2", "hunter2"))
	err := s.Register(ctx, "jett_main", "other", "other")
	require.ErrorIs(t, err, ErrUsernameTaken)
	require.Len(t, st.users, 1)
}

func TestService_Register_raceLoserGetsUsernameTaken(t *testing.T) {
	// The unique constraint fires when a second registration slips past
	// the pre-check, the loser still sees ErrUsernameTaken.
	ctx := context.Background()
	st := &racingStorage{memStorage: newMemStorage()}
	s := newTestService(st)

	err := s.Register(ctx, "jett_main", "hunter2", "hunter2")
	require.ErrorIs(t, err, ErrUsernameTaken)
}

type racingStorage struct {
	*memStorage
}

func (r *racingStorage) CreateUser(context.Context, users.User, []byte) error {
	return storage.ErrUserExists
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	st := newMemStorage()
	s := newTestService(st)
	require.NoError(t, s.Register(ctx, "jett_main", "hunter2", "hunter2"))

	u, err := s.Login(ctx, "jett_main", "hunter2")
	require.NoError(t, err)
	require.Equal(t, "jett_main", u.Name)
	require.Equal(t, users.RolePlayer, u.Role)
}

func TestService_Login_failuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	st := newMemStorage()
	s := newTestService(st)
	require.NoError(t, s.Register(ctx, "jett_main", "hunter2", "hunter2"))

	_, errWrongPass := s.Login(ctx, "jett_main", "wrong")
	_, errNoUser := s.Login(ctx, "nobody", "hunter2")
	require.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	require.ErrorIs(t, errNoUser, ErrInvalidCredentials)
	require.Equal(t, errWrongPass.Error(), errNoUser.Error())
}

func TestService_Login_caseSensitiveUsername(t *testing.T) {
	ctx := context.Background()
	st := newMemStorage()
	s := newTestService(st)
	require.NoError(t, s.Register(ctx, "JettMain", "hunter2", "hunter2"))

	_, err := s.Login(ctx, "jettmain", "hunter2")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_CreateAdmin(t *testing.T) {
	ctx := context.Background()
	st := newMemStorage()
	s := newTestService(st)

	require.NoError(t, s.CreateAdmin(ctx, "ops", "sup3rsecret"))
	u, err := s.Login(ctx, "ops", "sup3rsecret")
	require.NoError(t, err)
	require.Equal(t, users.RoleAdmin, u.Role)
	require.True(t, u.Role.CanModerate())
}

func TestService_Register_hashIsNotPlaintext(t *testing.T) {
	ctx := context.Background()
	st := newMemStorage()
	s := newTestService(st)
	require.NoError(t, s.Register(ctx, "jett_main", "hunter2", "hunter2"))

	hash, err := st.GetUserSecret(ctx, "jett_main")
	require.NoError(t, err)
	require.NotContains(t, string(hash), "hunter2")
	require.NoError(t, bcrypt.CompareHashAndPassword(hash, []byte("hunter2")))
}

func TestService_Auth_rules(t *testing.T) {
	ctx := context.Background()
	st := newMemStorage()
	cfg := Config{
		BcryptCost: bcrypt.MinCost,
		Expiration: "1h",
		Token:      "test-token",
		Rules: []Rule{
			{Name: "public pages", Path: "^/api/?$", Method: []string{"GET"}, Allow: []string{"*"}},
			{Name: "match entry", Path: "^/api/matches", Method: []string{"*"}, Allow: []string{"player", "admin"}},
		},
	}
	s := New(cfg, st)
	require.NoError(t, s.Register(ctx, "jett_main", "hunter2", "hunter2"))
	u, err := s.Login(ctx, "jett_main", "hunter2")
	require.NoError(t, err)
	cookie, err := s.GenerateJWTCookie(u.ID, "127.0.0.1")
	require.NoError(t, err)

	// guest on a public page
	_, err = s.Auth(ctx, "", "GET", "/api")
	require.NoError(t, err)

	// guest on a protected page
	_, err = s.Auth(ctx, "", "POST", "/api/matches")
	require.ErrorIs(t, err, ErrNotAuthorized)

	// player on a protected page
	got, err := s.Auth(ctx, cookie.Value, "POST", "/api/matches")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	// no rule matches
	_, err = s.Auth(ctx, cookie.Value, "GET", "/internal/debug")
	require.ErrorIs(t, err, ErrForbidden)
}
