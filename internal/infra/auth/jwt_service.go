package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"time"

	"budget/config"
	"budget/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// refreshTokenBytes is the entropy of a raw refresh secret (64 base64url chars).
const refreshTokenBytes = 48

type jwtService struct {
	accessSecret []byte
	issuer       string
	audience     string
	accessTTL    time.Duration
	refreshTTL   time.Duration
	now          func() time.Time
}

// NewJWTService builds the token service from the auth section of config.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}
	if cfg.Auth == nil {
		return nil, errors.New("auth config must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		issuer:       cfg.Auth.Issuer,
		audience:     cfg.Auth.Audience,
		accessTTL:    cfg.Auth.AccessTokenTTL,
		refreshTTL:   cfg.Auth.RefreshTokenTTL,
		now:          time.Now,
	}, nil
}

// GenerateAccessToken signs an HS256 token carrying the user ID as subject.
func (s *jwtService) GenerateAccessToken(userID int64) (string, error) {
	now := s.now()
	claims := service.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateAccessToken checks the HS256 signature and the registered claims before returning them.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse access token")
	}
	if !token.Valid {
		return nil, errors.New("access token is not valid")
	}

	// sub and userId are written together; a mismatch means the token was not minted here.
	if claims.Subject != strconv.FormatInt(claims.UserID, 10) {
		return nil, errors.New("access token subject mismatch")
	}

	return claims, nil
}

// GenerateRefreshToken returns a random opaque token and the hash that gets stored.
func (s *jwtService) GenerateRefreshToken() (string, string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", errors.Wrap(err, "failed to read random bytes")
	}

	raw := base64.RawURLEncoding.EncodeToString(buf)

	return raw, s.HashToken(raw), nil
}

// HashToken returns the base64url SHA-256 digest stored in refresh_tokens.token_hash.
func (s *jwtService) HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return base64.RawURLEncoding.EncodeToString(sum[:])
}

func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}
