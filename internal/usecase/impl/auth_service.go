// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "budget/internal/delivery/context"
	"budget/internal/domain/entity"
	domainerrors "budget/internal/domain/errors"
	"budget/internal/domain/repository"
	"budget/internal/domain/service"
	"budget/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements usecase.AuthUsecase.
type authService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	events           *eventEmitter
	validate         *validator.Validate
	logger           *slog.Logger
	now              func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Publisher        service.EventPublisher
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		events:           &eventEmitter{publisher: params.Publisher, logger: params.Logger, now: time.Now},
		validate:         validator.New(),
		logger:           params.Logger,
		now:              time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	if input.FirstName == "" || input.LastName == "" || input.Email == "" || input.Password == "" {
		return nil, domainerrors.Validation("First name, last name, email and password are required!")
	}

	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	email := entity.NormalizeEmail(input.Email)

	if !entity.ValidPersonName(firstName) {
		return nil, domainerrors.Validation("First name is invalid! Must be at least 2 characters long and has no symbols!")
	}
	if !entity.ValidPersonName(lastName) {
		return nil, domainerrors.Validation("Last name is invalid! Must be at least 2 characters long and has no symbols!")
	}
	if !srv.validEmail(email) {
		return nil, domainerrors.Validation("Email format is invalid!")
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	// Advisory only; the LOWER(email) unique index decides races.
	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing email")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user := &entity.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.Int64("user_id", user.ID))
	srv.events.emit(ctx, entity.AuthEventUserRegistered, userRef(user.ID), "")

	return user, nil
}

func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*entity.IssuedSession, error) {
	email := entity.NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.Validation("Email and password are required!")
	}
	if !srv.validEmail(email) {
		return nil, domainerrors.Validation("Email format is invalid!")
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// Exactly one bcrypt comparison runs whether or not the account exists.
	hash := srv.hasher.DummyHash()
	if user != nil {
		hash = user.PasswordHash
	}
	matched := srv.hasher.Check(input.Password, hash)

	if user == nil || !matched {
		srv.events.emit(ctx, entity.AuthEventLoginFailed, nil, "invalid_credentials")

		return nil, domainerrors.ErrInvalidCredentials
	}

	session, err := srv.issueSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User logged in", slog.Int64("user_id", user.ID))
	srv.events.emit(ctx, entity.AuthEventLoginSucceeded, userRef(user.ID), "")

	return session, nil
}

func (srv *authService) RefreshSession(ctx context.Context, rawRefreshToken string) (*entity.IssuedSession, error) {
	if rawRefreshToken == "" {
		srv.events.emit(ctx, entity.AuthEventRefreshRejected, nil, "missing")

		return nil, domainerrors.ErrRefreshTokenMissing
	}

	tokenHash := srv.tokenService.HashToken(rawRefreshToken)

	stored, err := srv.refreshTokenRepo.FindByHash(ctx, tokenHash)
	if errors.Is(err, repository.ErrRefreshTokenNotFound) {
		srv.events.emit(ctx, entity.AuthEventRefreshRejected, nil, "unknown")

		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up refresh token")
	}

	if stored.IsExpired(srv.now()) {
		if err := srv.refreshTokenRepo.DeleteByHash(ctx, tokenHash); err != nil &&
			!errors.Is(err, repository.ErrRefreshTokenNotFound) {
			srv.log(ctx).Warn("Failed to delete expired refresh token", slog.Any("error", err))
		}
		srv.events.emit(ctx, entity.AuthEventRefreshRejected, userRef(stored.UserID), "expired")

		return nil, domainerrors.ErrRefreshTokenExpired
	}

	// Redeem first. Of two concurrent redemptions only one sees a deleted row.
	if err := srv.refreshTokenRepo.DeleteByHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			srv.events.emit(ctx, entity.AuthEventRefreshRejected, userRef(stored.UserID), "replayed")

			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to redeem refresh token")
	}

	session, err := srv.issueSession(ctx, stored.UserID)
	if err != nil {
		srv.log(ctx).Error("Refresh token redeemed but new session not issued",
			slog.Int64("user_id", stored.UserID),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.events.emit(ctx, entity.AuthEventSessionRefreshed, userRef(stored.UserID), "")

	return session, nil
}

func (srv *authService) Logout(ctx context.Context, rawRefreshToken string) error {
	if rawRefreshToken == "" {
		srv.events.emit(ctx, entity.AuthEventLoggedOut, nil, "no_token")

		return nil
	}

	tokenHash := srv.tokenService.HashToken(rawRefreshToken)

	var userID *int64
	if stored, err := srv.refreshTokenRepo.FindByHash(ctx, tokenHash); err == nil {
		userID = userRef(stored.UserID)
	}

	if err := srv.refreshTokenRepo.DeleteByHash(ctx, tokenHash); err != nil &&
		!errors.Is(err, repository.ErrRefreshTokenNotFound) {
		srv.log(ctx).Warn("Failed to delete refresh token on logout", slog.Any("error", err))
	}

	srv.events.emit(ctx, entity.AuthEventLoggedOut, userID, "")

	return nil
}

func (srv *authService) Authenticate(_ context.Context, accessToken string) (int64, error) {
	if accessToken == "" {
		return 0, domainerrors.ErrAccessTokenMissing
	}

	claims, err := srv.tokenService.ValidateAccessToken(accessToken)
	if err != nil || claims.UserID <= 0 {
		return 0, domainerrors.ErrAccessTokenInvalid
	}

	return claims.UserID, nil
}

func (srv *authService) GetMe(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}

func (srv *authService) UpdateProfile(ctx context.Context, userID int64, input usecase.UpdateProfileInput) (*entity.User, error) {
	if input.FirstName == "" || input.LastName == "" {
		return nil, domainerrors.Validation("First and last name are required.")
	}

	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	if !entity.ValidPersonName(firstName) {
		return nil, domainerrors.Validation("Invalid first name.")
	}
	if !entity.ValidPersonName(lastName) {
		return nil, domainerrors.Validation("Invalid last name.")
	}

	user, err := srv.userRepo.UpdateName(ctx, userID, firstName, lastName)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.events.emit(ctx, entity.AuthEventProfileUpdated, userRef(userID), "")

	return user, nil
}

// ChangePassword leaves outstanding refresh tokens alone; other sessions
// survive until they expire or log out.
func (srv *authService) ChangePassword(ctx context.Context, userID int64, input usecase.ChangePasswordInput) error {
	if input.CurrentPassword == "" || input.NewPassword == "" {
		return domainerrors.Validation("Current and new passwords are required.")
	}
	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return domainerrors.ErrPasswordStrength.WithMessage("New password is not strong enough.")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		users := repoFactory.UserRepo()

		user, err := users.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to load user")
		}

		if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
			return domainerrors.ErrCurrentPasswordIncorrect
		}
		if srv.hasher.Check(input.NewPassword, user.PasswordHash) {
			return domainerrors.ErrPasswordUnchanged
		}

		hash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return errors.Wrap(err, "failed to hash new password")
		}

		return users.UpdatePasswordHash(ctx, userID, hash)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Password changed", slog.Int64("user_id", userID))
	srv.events.emit(ctx, entity.AuthEventPasswordChanged, userRef(userID), "")

	return nil
}

// issueSession mints an access token and persists a fresh refresh token hash.
func (srv *authService) issueSession(ctx context.Context, userID int64) (*entity.IssuedSession, error) {
	accessToken, err := srv.tokenService.GenerateAccessToken(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	rawRefresh, refreshHash, err := srv.tokenService.GenerateRefreshToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate refresh token")
	}

	token := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: refreshHash,
		ExpiresAt: srv.now().Add(srv.tokenService.RefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.Create(ctx, token); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &entity.IssuedSession{
		UserID:          userID,
		AccessToken:     accessToken,
		RefreshToken:    rawRefresh,
		AccessTokenTTL:  srv.tokenService.AccessTokenDuration(),
		RefreshTokenTTL: srv.tokenService.RefreshTokenDuration(),
	}, nil
}

func (srv *authService) validEmail(email string) bool {
	return srv.validate.Var(email, "required,email,max=254") == nil
}
