package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"budget/internal/domain/entity"
	domainerrors "budget/internal/domain/errors"
	"budget/internal/domain/repository"
	mockRepo "budget/internal/mocks/repository"
	"budget/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPassword = "Secret#123"

func registerInput(email string) usecase.RegisterInput {
	return usecase.RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     email,
		Password:  testPassword,
	}
}

func TestAuthService_Register_NormalizesEmail(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	user, err := f.service.Register(ctx, registerInput("  Ada@Example.COM "))

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEqual(t, testPassword, user.PasswordHash)
	assert.True(t, f.hasher.Check(testPassword, user.PasswordHash))
	assert.Eventually(t, func() bool { return f.publisher.has(entity.AuthEventUserRegistered) },
		time.Second, 10*time.Millisecond)
}

func TestAuthService_Register_RejectsCaseVariantOfExistingEmail(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.service.Register(ctx, registerInput("ada@example.com"))
	require.NoError(t, err)

	_, err = f.service.Register(ctx, registerInput("ADA@example.com"))

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_ValidationRunsBeforeRepository(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	f := newAuthFixture(t)
	f.service.userRepo = userRepo

	cases := map[string]usecase.RegisterInput{
		"missing field":  {FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"},
		"short name":     {FirstName: "A", LastName: "Lovelace", Email: "ada@example.com", Password: testPassword},
		"symbol in name": {FirstName: "Ada1", LastName: "Lovelace", Email: "ada@example.com", Password: testPassword},
		"bad email":      {FirstName: "Ada", LastName: "Lovelace", Email: "not-an-email", Password: testPassword},
		"weak password":  {FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "password"},
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.service.Register(context.Background(), input)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 400, appErr.HTTPCode())
		})
	}
}

func TestAuthService_Register_UniqueViolationIsConflict(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	f := newAuthFixture(t)
	f.service.userRepo = userRepo
	ctx := context.Background()

	userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrUserNotFound)
	userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrEmailTaken)

	_, err := f.service.Register(ctx, registerInput("ada@example.com"))

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.service.Register(ctx, registerInput("ada@example.com"))
	require.NoError(t, err)

	_, unknownErr := f.service.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: testPassword})
	_, wrongErr := f.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "Wrong#123"})

	require.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	require.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	assert.Zero(t, f.refresh.count())
	assert.Eventually(t, func() bool { return f.publisher.has(entity.AuthEventLoginFailed) },
		time.Second, 10*time.Millisecond)
}

func TestAuthService_Login_IssuesUsableSession(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	user, err := f.service.Register(ctx, registerInput("ada@example.com"))
	require.NoError(t, err)

	session, err := f.service.Login(ctx, usecase.LoginInput{Email: "ADA@example.com ", Password: testPassword})
	require.NoError(t, err)

	assert.Equal(t, user.ID, session.UserID)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Equal(t, 15*time.Minute, session.AccessTokenTTL)
	assert.Equal(t, 1, f.refresh.count())

	userID, err := f.service.Authenticate(ctx, session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestAuthService_RefreshSession_RotatesAndRejectsReplay(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.service.Register(ctx, registerInput("ada@example.com"))
	require.NoError(t, err)
	first, err := f.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: testPassword})
	require.NoError(t, err)

	second, err := f.service.RefreshSession(ctx, first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.Equal(t, 1, f.refresh.count())

	_, err = f.service.RefreshSession(ctx, first.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)

	third, err := f.service.RefreshSession(ctx, second.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, third.AccessToken)
}

func TestAuthService_RefreshSession_ConcurrentRedemptionHasOneWinner(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.service.Register(ctx, registerInput("ada@example.com"))
	require.NoError(t, err)
	session, err := f.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: testPassword})
	require.NoError(t, err)

	const attempts = 32
	var (
		wins, rejected atomic.Int32
		wg             sync.WaitGroup
	)
	start := make(chan struct{})
	unexpected := make(chan error, attempts)

	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start

			_, err := f.service.RefreshSession(ctx, session.RefreshToken)
			switch {
			case err == nil:
				wins.Add(1)
			case errors.Is(err, domainerrors.ErrRefreshTokenInvalid):
				rejected.Add(1)
			default:
				unexpected <- err
			}
		}()
	}
	close(start)
	wg.Wait()
	close(unexpected)

	for err := range unexpected {
		t.Errorf("unexpected refresh error: %v", err)
	}
	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, int32(attempts-1), rejected.Load())
	assert.Equal(t, 1, f.refresh.count())
}

func TestAuthService_RefreshSession_Missing(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.RefreshSession(context.Background(), "")

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenMissing)
}

func TestAuthService_RefreshSession_ExpiredTokenIsDeleted(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.service.Register(ctx, registerInput("ada@example.com"))
	require.NoError(t, err)
	session, err := f.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: testPassword})
	require.NoError(t, err)

	later := time.Now().Add(8 * 24 * time.Hour)
	f.service.now = func() time.Time { return later }

	_, err = f.service.RefreshSession(ctx, session.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenExpired)
	assert.Zero(t, f.refresh.count())

	_, err = f.service.RefreshSession(ctx, session.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Logout(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.service.Register(ctx, registerInput("ada@example.com"))
	require.NoError(t, err)
	session, err := f.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: testPassword})
	require.NoError(t, err)

	require.NoError(t, f.service.Logout(ctx, session.RefreshToken))
	assert.Zero(t, f.refresh.count())

	_, err = f.service.RefreshSession(ctx, session.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)

	assert.NoError(t, f.service.Logout(ctx, session.RefreshToken))
	assert.NoError(t, f.service.Logout(ctx, ""))
}

func TestAuthService_Authenticate(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.service.Authenticate(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrAccessTokenMissing)

	_, err = f.service.Authenticate(ctx, "not.a.jwt")
	assert.ErrorIs(t, err, domainerrors.ErrAccessTokenInvalid)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	user, err := f.service.Register(ctx, registerInput("ada@example.com"))
	require.NoError(t, err)

	updated, err := f.service.UpdateProfile(ctx, user.ID, usecase.UpdateProfileInput{FirstName: " Grace ", LastName: "Hopper"})
	require.NoError(t, err)
	assert.Equal(t, "Grace", updated.FirstName)
	assert.Equal(t, "Hopper", updated.LastName)

	_, err = f.service.UpdateProfile(ctx, user.ID, usecase.UpdateProfileInput{FirstName: "G", LastName: "Hopper"})
	assert.Error(t, err)

	_, err = f.service.UpdateProfile(ctx, user.ID+100, usecase.UpdateProfileInput{FirstName: "Grace", LastName: "Hopper"})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_ChangePassword(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	user, err := f.service.Register(ctx, registerInput("ada@example.com"))
	require.NoError(t, err)
	original := f.users.passwordHash(user.ID)

	err = f.service.ChangePassword(ctx, user.ID, usecase.ChangePasswordInput{CurrentPassword: "Wrong#123", NewPassword: "Better#456"})
	assert.ErrorIs(t, err, domainerrors.ErrCurrentPasswordIncorrect)
	assert.Equal(t, original, f.users.passwordHash(user.ID))

	err = f.service.ChangePassword(ctx, user.ID, usecase.ChangePasswordInput{CurrentPassword: testPassword, NewPassword: testPassword})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordUnchanged)
	assert.Equal(t, original, f.users.passwordHash(user.ID))

	err = f.service.ChangePassword(ctx, user.ID, usecase.ChangePasswordInput{CurrentPassword: testPassword, NewPassword: "weak"})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	assert.Equal(t, original, f.users.passwordHash(user.ID))

	err = f.service.ChangePassword(ctx, user.ID, usecase.ChangePasswordInput{CurrentPassword: testPassword, NewPassword: "Better#456"})
	require.NoError(t, err)

	_, err = f.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: testPassword})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	_, err = f.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "Better#456"})
	assert.NoError(t, err)
}

func TestAuthService_ChangePassword_UserMissing(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	f := newAuthFixture(t)
	f.service.txManager = txManager
	ctx := context.Background()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, int64(42)).Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	err := f.service.ChangePassword(ctx, 42, usecase.ChangePasswordInput{CurrentPassword: testPassword, NewPassword: "Better#456"})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
