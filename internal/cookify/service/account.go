package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/aussiebroadwan/cookify/internal/cookify/domain"
	"github.com/aussiebroadwan/cookify/internal/cookify/store"
	"github.com/aussiebroadwan/cookify/pkg/cryptox"
	"github.com/aussiebroadwan/cookify/pkg/idx"
	"github.com/aussiebroadwan/cookify/pkg/jwtx"
	"github.com/aussiebroadwan/cookify/pkg/slogx"
)

// TokenType is the only token type handed out.
const TokenType = "Bearer"

// AccountService registers users and exchanges credentials for tokens.
type AccountService struct {
	Store    store.Store
	Hasher   *cryptox.Hasher
	Tokens   jwtx.Issuer
	TokenTTL time.Duration
	Clock    Clock
}

// NormalizeEmail is applied before every store access so lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateEmail accepts a bare addr-spec with a dotted domain.
func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}

	_, host, _ := strings.Cut(email, "@")
	if !strings.Contains(host, ".") || strings.HasPrefix(host, ".") || strings.HasSuffix(host, ".") {
		return fmt.Errorf("%w: invalid email domain", ErrInvalidInput)
	}
	return nil
}

func validatePassword(password string) error {
	switch {
	case password == "":
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	case len(password) > cryptox.MaxPasswordBytes:
		return fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidInput, cryptox.MaxPasswordBytes)
	}
	return nil
}

// Register creates a new user.
func (s *AccountService) Register(ctx context.Context, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	email = NormalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return domain.User{}, err
	}
	if err := validatePassword(password); err != nil {
		return domain.User{}, err
	}

	// 2. Hash the password
	hash, err := s.Hasher.Hash(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	// 3. Create the user, the unique index decides duplicates
	now := s.Clock.Now()
	u := domain.User{
		ID:           idx.NewAt(now).String(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Info("registration for existing email")
			return domain.User{}, ErrDuplicateEmail
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	log.Info("user registered", slog.String("user_id", u.ID))
	return u, nil
}

// Login verifies credentials and mints an access token. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, email, password string) (domain.AccessToken, error) {
	log := slogx.FromContext(ctx)

	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return domain.AccessToken{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	// 1. Look the user up, burning a verification on a miss
	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.Hasher.VerifyDummy(password)
			return domain.AccessToken{}, ErrInvalidCredentials
		}
		log.Error("failed to load user", slog.Any("error", err))
		return domain.AccessToken{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	// 2. Verify the password
	if !s.Hasher.Verify(password, u.PasswordHash) {
		log.Info("login with wrong password", slog.String("user_id", u.ID))
		return domain.AccessToken{}, ErrInvalidCredentials
	}

	// 3. Upgrade stale hashes while we still hold the plaintext
	if s.Hasher.NeedsRehash(u.PasswordHash) {
		s.rehash(ctx, u.ID, password)
	}

	// 4. Mint the token
	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}
	now := s.Clock.Now()
	token, err := s.Tokens.Issue(u.ID, now, ttl)
	if err != nil {
		log.Error("failed to issue token", slog.Any("error", err))
		return domain.AccessToken{}, fmt.Errorf("issue token: %w", err)
	}

	log.Info("user logged in", slog.String("user_id", u.ID))
	return domain.AccessToken{
		Token:     token,
		TokenType: TokenType,
		ExpiresIn: ttl,
		ExpiresAt: now.Add(ttl),
	}, nil
}

// rehash stores a fresh hash for userID. Failures are logged only, the
// login itself already succeeded.
func (s *AccountService) rehash(ctx context.Context, userID, password string) {
	log := slogx.FromContext(ctx)

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		log.Warn("failed to rehash password", slog.String("user_id", userID), slog.Any("error", err))
		return
	}
	if err := s.Store.Users().UpdatePasswordHash(ctx, userID, hash, s.Clock.Now()); err != nil {
		log.Warn("failed to store rehashed password", slog.String("user_id", userID), slog.Any("error", err))
		return
	}
	log.Info("password hash upgraded", slog.String("user_id", userID))
}
