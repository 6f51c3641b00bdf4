package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"budget/config"
	"budget/internal/delivery/api/middleware"
	"budget/internal/delivery/api/router"
	"budget/internal/delivery/api/router/handler"
	"budget/internal/domain/constants"
	"budget/internal/domain/entity"
	domainerrors "budget/internal/domain/errors"
	"budget/internal/infra/ratelimit"
	"budget/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testOrigin   = "https://app.example.com"
	testEmail    = "ada@example.com"
	testPassword = "Secret#123"
	testUserID   = int64(42)
)

// stubAuth keeps sessions in maps so cookie handling can be exercised end to end.
type stubAuth struct {
	issued  int
	access  map[string]int64
	refresh map[string]int64
}

func newStubAuth() *stubAuth {
	return &stubAuth{access: map[string]int64{}, refresh: map[string]int64{}}
}

func (s *stubAuth) user() *entity.User {
	return &entity.User{ID: testUserID, FirstName: "Ada", LastName: "Lovelace", Email: testEmail}
}

func (s *stubAuth) issue(userID int64) *entity.IssuedSession {
	s.issued++
	session := &entity.IssuedSession{
		UserID:          userID,
		AccessToken:     "access-" + strconv.Itoa(s.issued),
		RefreshToken:    "refresh-" + strconv.Itoa(s.issued),
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
	s.access[session.AccessToken] = userID
	s.refresh[session.RefreshToken] = userID

	return session
}

func (s *stubAuth) Register(_ context.Context, input usecase.RegisterInput) (*entity.User, error) {
	if entity.NormalizeEmail(input.Email) == testEmail {
		return nil, domainerrors.ErrUserAlreadyExists
	}

	return &entity.User{ID: 7, FirstName: input.FirstName, LastName: input.LastName, Email: input.Email}, nil
}

func (s *stubAuth) Login(_ context.Context, input usecase.LoginInput) (*entity.IssuedSession, error) {
	if entity.NormalizeEmail(input.Email) != testEmail || input.Password != testPassword {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return s.issue(testUserID), nil
}

func (s *stubAuth) RefreshSession(_ context.Context, raw string) (*entity.IssuedSession, error) {
	if raw == "" {
		return nil, domainerrors.ErrRefreshTokenMissing
	}
	userID, ok := s.refresh[raw]
	if !ok {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	delete(s.refresh, raw)

	return s.issue(userID), nil
}

func (s *stubAuth) Logout(_ context.Context, raw string) error {
	delete(s.refresh, raw)

	return nil
}

func (s *stubAuth) Authenticate(_ context.Context, accessToken string) (int64, error) {
	if accessToken == "" {
		return 0, domainerrors.ErrAccessTokenMissing
	}
	userID, ok := s.access[accessToken]
	if !ok {
		return 0, domainerrors.ErrAccessTokenInvalid
	}

	return userID, nil
}

func (s *stubAuth) GetMe(_ context.Context, userID int64) (*entity.User, error) {
	if userID != testUserID {
		return nil, domainerrors.ErrUserNotFound
	}

	return s.user(), nil
}

func (s *stubAuth) UpdateProfile(_ context.Context, _ int64, input usecase.UpdateProfileInput) (*entity.User, error) {
	user := s.user()
	user.FirstName = input.FirstName
	user.LastName = input.LastName

	return user, nil
}

func (s *stubAuth) ChangePassword(_ context.Context, _ int64, input usecase.ChangePasswordInput) error {
	if input.CurrentPassword != testPassword {
		return domainerrors.ErrCurrentPasswordIncorrect
	}

	return nil
}

// stubLedger records what the handlers decoded.
type stubLedger struct {
	filter entity.TransactionFilter
	create usecase.CreateTransactionInput
	patch  entity.TransactionPatch
	userID int64
}

func (s *stubLedger) txn() *entity.Transaction {
	return &entity.Transaction{
		ID:     7,
		UserID: testUserID,
		Title:  "Groceries",
		Amount: decimal.RequireFromString("12.50"),
		Type:   entity.TransactionTypeExpense,
		Date:   time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	}
}

func (s *stubLedger) ListTransactions(_ context.Context, userID int64, filter entity.TransactionFilter) (*usecase.TransactionPage, error) {
	s.userID = userID
	s.filter = filter

	return &usecase.TransactionPage{Items: []*entity.Transaction{s.txn()}, Page: 2, Limit: 100, Total: 101, Pages: 2}, nil
}

func (s *stubLedger) CreateTransaction(_ context.Context, userID int64, input usecase.CreateTransactionInput) (*entity.Transaction, error) {
	s.userID = userID
	s.create = input

	return s.txn(), nil
}

func (s *stubLedger) UpdateTransaction(_ context.Context, userID, id int64, patch entity.TransactionPatch) (*entity.Transaction, error) {
	s.userID = userID
	s.patch = patch
	if id != 7 {
		return nil, domainerrors.ErrTransactionNotFound
	}

	return s.txn(), nil
}

func (s *stubLedger) DeleteTransaction(_ context.Context, _, id int64) error {
	if id != 7 {
		return domainerrors.ErrTransactionNotFound
	}

	return nil
}

func (s *stubLedger) GetSummary(_ context.Context, _ int64, _, _ *time.Time) (*entity.Summary, error) {
	return &entity.Summary{
		TotalIncome:  decimal.NewFromInt(100),
		TotalExpense: decimal.RequireFromString("12.5"),
		Net:          decimal.RequireFromString("87.5"),
	}, nil
}

type stubCategories struct{}

func (stubCategories) ListCategories(context.Context, int64) ([]*entity.Category, error) {
	return []*entity.Category{{ID: 1, Name: "Food"}}, nil
}

func (stubCategories) CreateCategory(_ context.Context, userID int64, name string) (*entity.Category, error) {
	if name == "Food" {
		return nil, domainerrors.ErrCategoryAlreadyExists
	}

	return &entity.Category{ID: 9, Name: name, UserID: &userID}, nil
}

type testServer struct {
	echo   *echo.Echo
	auth   *stubAuth
	ledger *stubLedger
}

func newTestServer(t *testing.T, mutate ...func(*config.Config)) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Auth.AllowedOrigin = testOrigin
	for _, fn := range mutate {
		fn(cfg)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	auth := newStubAuth()
	ledger := &stubLedger{}

	routerParams := router.RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: auth, Config: cfg, Logger: logger}),
		TransactionHandler: handler.NewTransactionHandler(handler.TransactionHandlerParams{
			LedgerUC: ledger,
			Logger:   logger,
		}),
		CategoryHandler: handler.NewCategoryHandler(handler.CategoryHandlerParams{
			CategoryUC: stubCategories{},
			Logger:     logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{AuthUC: auth}),
		OriginGuard:    middleware.NewOriginGuard(cfg),
		RateLimiter: middleware.NewRateLimiter(middleware.RateLimiterParams{
			Store:  ratelimit.NewMemoryStore(),
			Logger: logger,
		}),
		Config: cfg,
	}

	return &testServer{
		echo:   newEcho(cfg, logger, routerParams),
		auth:   auth,
		ledger: ledger,
	}
}

func (s *testServer) do(method, target, body string, decorate ...func(*http.Request)) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, fn := range decorate {
		fn(req)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func (s *testServer) login(t *testing.T) (access, refresh *http.Cookie) {
	t.Helper()

	rec := s.do(http.MethodPost, "/api/auth/login", `{"email":"`+testEmail+`","password":"`+testPassword+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	access = findCookie(rec, constants.AccessTokenCookie)
	refresh = findCookie(rec, constants.RefreshTokenCookie)
	require.NotNil(t, access)
	require.NotNil(t, refresh)

	return access, refresh
}

func withCookie(cookie *http.Cookie) func(*http.Request) {
	return func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	}
}

func withHeader(key, value string) func(*http.Request) {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()

	var envelope errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func TestServer_LoginThenMe(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodPost, "/api/auth/login", `{"email":"  ADA@example.com ","password":"`+testPassword+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Login successful"}`, rec.Body.String())

	access := findCookie(rec, constants.AccessTokenCookie)
	refresh := findCookie(rec, constants.RefreshTokenCookie)
	require.NotNil(t, access)
	require.NotNil(t, refresh)

	assert.Equal(t, "/", access.Path)
	assert.Equal(t, constants.RefreshCookiePath, refresh.Path)
	for _, cookie := range []*http.Cookie{access, refresh} {
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
		assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
	}
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), refresh.MaxAge)
	assert.NotContains(t, rec.Body.String(), access.Value, "tokens travel only in cookies")

	t.Run("cookie", func(t *testing.T) {
		rec := srv.do(http.MethodGet, "/api/auth/me", "", withCookie(access))
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, testEmail, body["email"])
		assert.EqualValues(t, testUserID, body["id"])
		assert.NotContains(t, body, "passwordHash")
	})

	t.Run("bearer header", func(t *testing.T) {
		rec := srv.do(http.MethodGet, "/api/auth/me", "", withHeader(echo.HeaderAuthorization, "bearer "+access.Value))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestServer_AccessTokenErrors(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodGet, "/api/auth/me", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	envelope := decodeError(t, rec)
	assert.Equal(t, "UNAUTHORIZED", envelope.Error.Code)
	assert.Nil(t, envelope.Error.Details)
	assert.NotEmpty(t, envelope.Meta.RequestID)
	assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), envelope.Meta.RequestID)

	rec = srv.do(http.MethodGet, "/api/auth/me", "", withHeader(echo.HeaderAuthorization, "Bearer forged"))
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", decodeError(t, rec).Error.Code)
}

func TestServer_RequestIDIsEchoed(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodGet, "/healthz", "", withHeader(echo.HeaderXRequestID, "req-123"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Equal(t, "req-123", rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_DoubleRefresh(t *testing.T) {
	srv := newTestServer(t)
	_, refresh := srv.login(t)

	first := srv.do(http.MethodPost, "/api/auth/refresh", "", withCookie(refresh), withHeader(echo.HeaderOrigin, testOrigin))
	require.Equal(t, http.StatusOK, first.Code)

	var body struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &body))
	assert.NotEmpty(t, body.AccessToken)

	rotated := findCookie(first, constants.RefreshTokenCookie)
	require.NotNil(t, rotated)
	assert.NotEqual(t, refresh.Value, rotated.Value)

	replay := srv.do(http.MethodPost, "/api/auth/refresh", "", withCookie(refresh), withHeader(echo.HeaderOrigin, testOrigin))
	require.Equal(t, http.StatusForbidden, replay.Code)
	assert.Equal(t, domainerrors.ErrRefreshTokenInvalid.ErrorCode(), decodeError(t, replay).Error.Code)

	cleared := findCookie(replay, constants.RefreshTokenCookie)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)

	again := srv.do(http.MethodPost, "/api/auth/refresh", "", withCookie(rotated), withHeader(echo.HeaderOrigin, testOrigin))
	assert.Equal(t, http.StatusOK, again.Code)
}

func TestServer_RefreshWithoutCookie(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodPost, "/api/auth/refresh", "")
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, domainerrors.ErrRefreshTokenMissing.ErrorCode(), decodeError(t, rec).Error.Code)
}

func TestServer_OriginGuard(t *testing.T) {
	srv := newTestServer(t)
	_, refresh := srv.login(t)

	tests := []struct {
		name   string
		header string
		value  string
		want   int
	}{
		{name: "foreign origin", header: echo.HeaderOrigin, value: "https://evil.example", want: http.StatusForbidden},
		{name: "foreign referer", header: "Referer", value: "https://evil.example/page", want: http.StatusForbidden},
		{name: "lookalike origin host", header: echo.HeaderOrigin, value: testOrigin + ".evil.com", want: http.StatusForbidden},
		{name: "origin on another port", header: echo.HeaderOrigin, value: testOrigin + ":8443", want: http.StatusForbidden},
		{name: "lookalike referer host", header: "Referer", value: testOrigin + ".evil.com/settings", want: http.StatusForbidden},
		{name: "allowed origin", header: echo.HeaderOrigin, value: testOrigin, want: http.StatusOK},
		{name: "allowed referer", header: "Referer", value: testOrigin + "/settings", want: http.StatusOK},
		{name: "allowed bare referer", header: "Referer", value: testOrigin, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := srv.do(http.MethodPost, "/api/auth/logout", "", withCookie(refresh), withHeader(tt.header, tt.value))
			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusForbidden {
				assert.Equal(t, domainerrors.ErrForbiddenOrigin.ErrorCode(), decodeError(t, rec).Error.Code)
			}
		})
	}
}

func TestServer_RefreshRejectsLookalikeOrigin(t *testing.T) {
	srv := newTestServer(t)
	_, refresh := srv.login(t)

	rec := srv.do(http.MethodPost, "/api/auth/refresh", "", withCookie(refresh), withHeader(echo.HeaderOrigin, testOrigin+".evil.com"))

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, domainerrors.ErrForbiddenOrigin.ErrorCode(), decodeError(t, rec).Error.Code)
}

func TestServer_LogoutClearsCookies(t *testing.T) {
	srv := newTestServer(t)
	_, refresh := srv.login(t)

	rec := srv.do(http.MethodPost, "/api/auth/logout", "", withCookie(refresh))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Logged out."}`, rec.Body.String())

	for _, name := range []string{constants.AccessTokenCookie, constants.RefreshTokenCookie} {
		cookie := findCookie(rec, name)
		require.NotNil(t, cookie, name)
		assert.Negative(t, cookie.MaxAge, name)
	}
	assert.NotContains(t, srv.auth.refresh, refresh.Value)
}

func TestServer_LoginFailureLimit(t *testing.T) {
	srv := newTestServer(t, func(cfg *config.Config) {
		cfg.RateLimit.LoginEmail = config.LimitRule{Limit: 2, Window: time.Minute}
	})

	wrong := `{"email":"` + testEmail + `","password":"nope"}`
	for range 2 {
		rec := srv.do(http.MethodPost, "/api/auth/login", wrong)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	rec := srv.do(http.MethodPost, "/api/auth/login", strings.ToUpper(wrong))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("RateLimit-Limit"))
	assert.Equal(t, "0", rec.Header().Get("RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("RateLimit-Reset"))
	assert.Equal(t, domainerrors.ErrTooManyRequests.ErrorCode(), decodeError(t, rec).Error.Code)

	other := srv.do(http.MethodPost, "/api/auth/login", `{"email":"bob@example.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, other.Code, "budgets are per email")
}

func TestServer_SuccessfulLoginsAreForgiven(t *testing.T) {
	srv := newTestServer(t, func(cfg *config.Config) {
		cfg.RateLimit.LoginEmail = config.LimitRule{Limit: 1, Window: time.Minute}
	})

	for range 3 {
		srv.login(t)
	}
}

func TestServer_RegisterConflict(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodPost, "/api/auth/register",
		`{"firstName":"Ada","lastName":"Lovelace","email":"`+testEmail+`","password":"`+testPassword+`"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Email already exists!", decodeError(t, rec).Error.Message)

	rec = srv.do(http.MethodPost, "/api/auth/register", `{"email":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Error.Code)
}

func TestServer_Transactions(t *testing.T) {
	srv := newTestServer(t)
	access, _ := srv.login(t)
	auth := withCookie(access)

	t.Run("list passes filters through", func(t *testing.T) {
		rec := srv.do(http.MethodGet, "/api/transactions?page=2&limit=500&type=expense&categoryId=3&from=2024-03-01", "", auth)
		require.Equal(t, http.StatusOK, rec.Code)

		filter := srv.ledger.filter
		assert.Equal(t, testUserID, srv.ledger.userID)
		assert.Equal(t, 2, filter.Page)
		assert.Equal(t, 500, filter.Limit)
		require.NotNil(t, filter.Type)
		assert.Equal(t, entity.TransactionTypeExpense, *filter.Type)
		require.NotNil(t, filter.CategoryID)
		assert.Equal(t, int64(3), *filter.CategoryID)
		require.NotNil(t, filter.From)
		assert.Nil(t, filter.To)

		var body struct {
			Data []struct {
				Amount float64 `json:"amount"`
				Date   string  `json:"date"`
			} `json:"data"`
			Pagination struct {
				Pages int   `json:"pages"`
				Total int64 `json:"total"`
			} `json:"pagination"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Data, 1)
		assert.InDelta(t, 12.5, body.Data[0].Amount, 0.0001)
		assert.Equal(t, "2024-03-05", body.Data[0].Date)
		assert.Equal(t, 2, body.Pagination.Pages)
		assert.Equal(t, int64(101), body.Pagination.Total)
	})

	t.Run("invalid list filters", func(t *testing.T) {
		tests := []struct {
			query   string
			message string
		}{
			{query: "from=yesterday", message: "Invalid 'from' date."},
			{query: "to=2024-13-01", message: "Invalid 'to' date."},
			{query: "categoryId=abc", message: "Invalid 'categoryId'."},
			{query: "type=transfer", message: "Invalid 'type'."},
		}

		for _, tt := range tests {
			rec := srv.do(http.MethodGet, "/api/transactions?"+tt.query, "", auth)
			require.Equal(t, http.StatusBadRequest, rec.Code, tt.query)
			assert.Equal(t, tt.message, decodeError(t, rec).Error.Message, tt.query)
		}
	})

	t.Run("summary is not an id", func(t *testing.T) {
		rec := srv.do(http.MethodGet, "/api/transactions/summary", "", auth)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"net":87.5`)
	})

	t.Run("create accepts string amounts", func(t *testing.T) {
		rec := srv.do(http.MethodPost, "/api/transactions",
			`{"title":"Groceries","amount":"12.50","type":"expense","date":"2024-03-05T10:00:00Z","categoryId":"3"}`, auth)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"message":"Transaction created successfully."`)

		input := srv.ledger.create
		assert.True(t, input.Amount.Equal(decimal.RequireFromString("12.5")))
		assert.Equal(t, entity.TransactionTypeExpense, input.Type)
		require.NotNil(t, input.CategoryID)
		assert.Equal(t, int64(3), *input.CategoryID)
	})

	t.Run("create rejects bad amounts", func(t *testing.T) {
		for _, amount := range []string{`0`, `-4`, `0.004`, `"0.004"`, `"abc"`, `null`} {
			rec := srv.do(http.MethodPost, "/api/transactions",
				`{"title":"Groceries","amount":`+amount+`,"type":"expense","date":"2024-03-05"}`, auth)
			require.Equal(t, http.StatusBadRequest, rec.Code, amount)
			assert.Equal(t, "Amount must be > 0.", decodeError(t, rec).Error.Message, amount)
		}
	})

	t.Run("patch null clears category", func(t *testing.T) {
		rec := srv.do(http.MethodPatch, "/api/transactions/7", `{"categoryId":null,"type":" Income ","note":null}`, auth)
		require.Equal(t, http.StatusOK, rec.Code)

		patch := srv.ledger.patch
		assert.True(t, patch.ClearCategory)
		assert.Nil(t, patch.CategoryID)
		require.NotNil(t, patch.Type)
		assert.Equal(t, entity.TransactionTypeIncome, *patch.Type)
		require.NotNil(t, patch.Note)
		assert.Empty(t, *patch.Note)
		assert.Nil(t, patch.Title)
	})

	t.Run("patch validation", func(t *testing.T) {
		tests := []struct {
			body    string
			message string
		}{
			{body: `{"title":"   "}`, message: "Title cannot be empty."},
			{body: `{"amount":-1}`, message: "Amount must be > 0."},
			{body: `{"type":"transfer"}`, message: "Invalid type."},
			{body: `{"date":"soon"}`, message: "Invalid date."},
			{body: `{"categoryId":"x"}`, message: "Valid categoryId required."},
		}

		for _, tt := range tests {
			rec := srv.do(http.MethodPatch, "/api/transactions/7", tt.body, auth)
			require.Equal(t, http.StatusBadRequest, rec.Code, tt.body)
			assert.Equal(t, tt.message, decodeError(t, rec).Error.Message, tt.body)
		}
	})

	t.Run("patch unknown id", func(t *testing.T) {
		rec := srv.do(http.MethodPatch, "/api/transactions/8", `{"title":"Rent"}`, auth)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rec := srv.do(http.MethodDelete, "/api/transactions/7", "", auth)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":7}`, rec.Body.String())

		rec = srv.do(http.MethodDelete, "/api/transactions/abc", "", auth)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid id.", decodeError(t, rec).Error.Message)
	})

	t.Run("requires a session", func(t *testing.T) {
		rec := srv.do(http.MethodGet, "/api/transactions", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestServer_Categories(t *testing.T) {
	srv := newTestServer(t)
	access, _ := srv.login(t)

	rec := srv.do(http.MethodGet, "/api/categories", "", withCookie(access))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Categories fetched successfully","data":[{"id":1,"name":"Food","userId":null}]}`, rec.Body.String())

	rec = srv.do(http.MethodPost, "/api/categories", `{"name":"Travel"}`, withCookie(access))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"message":"Category created successfully.","data":{"id":9,"name":"Travel","userId":42}}`,
		rec.Body.String())

	rec = srv.do(http.MethodPost, "/api/categories", `{"name":"Food"}`, withCookie(access))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestServer_UnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodGet, "/api/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Error.Code)
}
