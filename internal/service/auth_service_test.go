package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/employee-service/internal/config"
	"github.com/spec-kit/employee-service/internal/domain"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := f.users[user.Username]; exists {
		return apperrors.NewConflict("username already taken", map[string]any{"username": user.Username})
	}
	user.ID = "user-" + user.Username
	user.CreatedAt = time.Now()
	stored := *user
	f.users[user.Username] = &stored
	return nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func newAuthService(repo *fakeUserRepo) *AuthService {
	cfg := config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.TokenTTLMinutes = 15
	cfg.Auth.BcryptCost = bcrypt.MinCost
	return NewAuthService(cfg, repo, nil)
}

func requireDomainError(t *testing.T, err error, code string, status int) {
	t.Helper()
	domainErr := apperrors.ToDomainError(err)
	require.NotNil(t, domainErr)
	require.Equal(t, code, domainErr.Code)
	require.Equal(t, status, domainErr.HTTPStatus)
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	t.Parallel()

	svc := newAuthService(newFakeUserRepo())
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "secret123")
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
	require.NotEqual(t, "secret123", user.PasswordHash)

	token, exp, err := svc.Login(ctx, "alice", "secret123")
	require.NoError(t, err)
	require.True(t, exp.After(time.Now()))

	subject, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, "alice", subject)
}

func TestAuthService_RegisterDuplicateUsername(t *testing.T) {
	t.Parallel()

	svc := newAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other")
	requireDomainError(t, err, "CONFLICT", http.StatusConflict)
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	svc := newAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret123")
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login(ctx, "alice", "wrong")
	requireDomainError(t, wrongPassword, "INVALID_CREDENTIALS", http.StatusUnauthorized)

	_, _, unknownUser := svc.Login(ctx, "nobody", "secret123")
	requireDomainError(t, unknownUser, "INVALID_CREDENTIALS", http.StatusUnauthorized)

	require.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestAuthService_ResolveIdentity(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret123")
	require.NoError(t, err)

	token, _, err := svc.Login(ctx, "alice", "secret123")
	require.NoError(t, err)

	user, err := svc.ResolveIdentity(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
}

func TestAuthService_ResolveIdentity_GarbageToken(t *testing.T) {
	t.Parallel()

	svc := newAuthService(newFakeUserRepo())

	_, err := svc.ResolveIdentity(context.Background(), "not.a.token")
	requireDomainError(t, err, "UNAUTHORIZED", http.StatusUnauthorized)
}

func TestAuthService_ResolveIdentity_ExpiredToken(t *testing.T) {
	t.Parallel()

	svc := newAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret123")
	require.NoError(t, err)

	token, _, err := svc.TokenManager().GenerateTokenWithTTL("alice", -1*time.Second)
	require.NoError(t, err)

	_, err = svc.ResolveIdentity(ctx, token)
	requireDomainError(t, err, "UNAUTHORIZED", http.StatusUnauthorized)
}

func TestAuthService_ResolveIdentity_DeletedAccount(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret123")
	require.NoError(t, err)

	token, _, err := svc.Login(ctx, "alice", "secret123")
	require.NoError(t, err)

	// Account vanishes while the token is still unexpired.
	delete(repo.users, "alice")

	_, err = svc.ResolveIdentity(ctx, token)
	requireDomainError(t, err, "UNAUTHORIZED", http.StatusUnauthorized)
}
