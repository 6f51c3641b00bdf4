package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"budget/config"
	"budget/internal/domain/entity"
	"budget/internal/domain/repository"
	"budget/internal/domain/service"
	"budget/internal/infra/auth"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "impl_test_access_secret_that_is_long_enough"
	cfg.ApplyDefaults()
	cfg.Auth.BcryptCost = bcrypt.MinCost

	return cfg
}

// fakeUserRepo keeps users in memory and enforces case-insensitive email uniqueness.
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return repository.ErrEmailTaken
		}
	}

	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone

	return nil
}

func (r *fakeUserRepo) UpdateName(_ context.Context, id int64, firstName, lastName string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	user.FirstName = firstName
	user.LastName = lastName
	clone := *user

	return &clone, nil
}

func (r *fakeUserRepo) UpdatePasswordHash(_ context.Context, id int64, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.PasswordHash = passwordHash

	return nil
}

func (r *fakeUserRepo) passwordHash(id int64) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.users[id].PasswordHash
}

// fakeRefreshTokenRepo keys rows by hash, like the unique index does.
type fakeRefreshTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*entity.RefreshToken
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: make(map[string]*entity.RefreshToken)}
}

func (r *fakeRefreshTokenRepo) Create(_ context.Context, token *entity.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *token
	r.tokens[token.TokenHash] = &clone

	return nil
}

func (r *fakeRefreshTokenRepo) FindByHash(_ context.Context, tokenHash string) (*entity.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.tokens[tokenHash]
	if !ok {
		return nil, repository.ErrRefreshTokenNotFound
	}
	clone := *token

	return &clone, nil
}

func (r *fakeRefreshTokenRepo) DeleteByHash(_ context.Context, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tokens[tokenHash]; !ok {
		return repository.ErrRefreshTokenNotFound
	}
	delete(r.tokens, tokenHash)

	return nil
}

func (r *fakeRefreshTokenRepo) DeleteByUserID(_ context.Context, userID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for hash, token := range r.tokens {
		if token.UserID == userID {
			delete(r.tokens, hash)
			deleted++
		}
	}

	return deleted, nil
}

func (r *fakeRefreshTokenRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for hash, token := range r.tokens {
		if token.IsExpired(now) {
			delete(r.tokens, hash)
			deleted++
		}
	}

	return deleted, nil
}

func (r *fakeRefreshTokenRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.tokens)
}

// fakeTxManager runs fn against the same in-memory repositories.
type fakeTxManager struct {
	users   *fakeUserRepo
	refresh *fakeRefreshTokenRepo
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m)
}

func (m *fakeTxManager) UserRepo() repository.UserRepository                 { return m.users }
func (m *fakeTxManager) RefreshTokenRepo() repository.RefreshTokenRepository { return m.refresh }
func (m *fakeTxManager) CategoryRepo() repository.CategoryRepository         { return nil }
func (m *fakeTxManager) LedgerRepo() repository.LedgerRepository             { return nil }

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*entity.AuthEvent
}

func (p *recordingPublisher) PublishAuthEvent(_ context.Context, event *entity.AuthEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error {
	return nil
}

func (p *recordingPublisher) has(eventType entity.AuthEventType) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, event := range p.events {
		if event.Type == eventType {
			return true
		}
	}

	return false
}

type authFixture struct {
	service   *authService
	users     *fakeUserRepo
	refresh   *fakeRefreshTokenRepo
	publisher *recordingPublisher
	hasher    service.PasswordHasher
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	cfg := newTestConfig()
	hasher, err := auth.NewBcryptHasher(cfg)
	require.NoError(t, err)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	users := newFakeUserRepo()
	refresh := newFakeRefreshTokenRepo()
	publisher := &recordingPublisher{}

	srv := NewAuthService(AuthServiceParams{
		TxManager:        &fakeTxManager{users: users, refresh: refresh},
		UserRepo:         users,
		RefreshTokenRepo: refresh,
		Hasher:           hasher,
		TokenService:     tokens,
		Publisher:        publisher,
		Logger:           newDiscardLogger(),
	})

	return &authFixture{
		service:   srv.(*authService),
		users:     users,
		refresh:   refresh,
		publisher: publisher,
		hasher:    hasher,
	}
}
