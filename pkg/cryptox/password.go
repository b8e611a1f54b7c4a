package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Supported password hashing schemes. The scheme only decides how new hashes
// are produced, Verify accepts every scheme listed here.
const (
	SchemeBcrypt   = "bcrypt"
	SchemeArgon2id = "argon2id"
)

// MaxPasswordBytes is the longest password Hash accepts. bcrypt ignores
// everything past 72 bytes so longer input is refused rather than truncated.
const MaxPasswordBytes = 72

// Configuration for Argon2id hashing.
const (
	memory      = 19 * 1024 // Memory usage in KiB (19 MiB)
	iterations  = 2         // Iteration count
	parallelism = 1         // Number of threads
	keyLength   = 32        // Length of the generated hash
	saltLength  = 16        // Length of the salt

	// Upper bound on the memory parameter we are willing to honour when
	// verifying a stored hash (256 MiB).
	maxMemory = 256 * 1024
)

var (
	ErrPasswordTooLong = errors.New("cryptox: password exceeds 72 bytes")
	ErrUnknownScheme   = errors.New("cryptox: unknown password hash scheme")
	ErrCostTooLow      = errors.New("cryptox: bcrypt cost below minimum")
)

// HasherConfig is fixed at startup and handed to NewHasher.
type HasherConfig struct {
	// Scheme used for new hashes (bcrypt or argon2id). Empty means bcrypt.
	Scheme string

	// BcryptCost for new bcrypt hashes. Zero means bcrypt.DefaultCost, lower
	// values are rejected so the cost never goes down between releases.
	BcryptCost int
}

// Hasher hashes and verifies passwords. It holds no mutable state after
// construction and is safe for concurrent use.
type Hasher struct {
	scheme string
	cost   int

	// dummy is a hash of a random secret, used to burn the same amount of
	// time on unknown accounts as on real ones.
	dummy string
}

// NewHasher validates cfg and returns a ready Hasher.
func NewHasher(cfg HasherConfig) (*Hasher, error) {
	scheme := strings.ToLower(strings.TrimSpace(cfg.Scheme))
	if scheme == "" {
		scheme = SchemeBcrypt
	}
	if scheme != SchemeBcrypt && scheme != SchemeArgon2id {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, cfg.Scheme)
	}

	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.DefaultCost {
		return nil, fmt.Errorf("%w: %d < %d", ErrCostTooLow, cost, bcrypt.DefaultCost)
	}
	if cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("cryptox: bcrypt cost %d above maximum %d", cost, bcrypt.MaxCost)
	}

	h := &Hasher{scheme: scheme, cost: cost}

	secret, err := RandomSecret(SecretBytes)
	if err != nil {
		return nil, err
	}
	// A base64url token of 32 bytes is 43 chars, well inside the bcrypt limit.
	if h.dummy, err = h.Hash(secret); err != nil {
		return nil, fmt.Errorf("cryptox: build dummy hash: %w", err)
	}

	return h, nil
}

// Scheme reports the scheme used for new hashes.
func (h *Hasher) Scheme() string { return h.scheme }

// Hash produces a self-describing, self-salted hash of password.
func (h *Hasher) Hash(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	switch h.scheme {
	case SchemeArgon2id:
		return hashArgon2id(password)
	default:
		b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
		if err != nil {
			return "", fmt.Errorf("cryptox: bcrypt: %w", err)
		}
		return string(b), nil
	}
}

// Verify reports whether password matches encoded. The scheme is taken from
// the hash itself, so hashes written under an older configuration keep
// working. Malformed hashes never match.
func (h *Hasher) Verify(password, encoded string) bool {
	switch {
	case isBcrypt(encoded):
		return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password)) == nil
	case strings.HasPrefix(encoded, "$argon2id$"):
		return verifyArgon2id(password, encoded) == nil
	default:
		return false
	}
}

// VerifyDummy runs a verification that always fails. Call it when the
// account does not exist so the response time does not reveal that.
func (h *Hasher) VerifyDummy(password string) {
	_ = h.Verify(password, h.dummy)
}

// NeedsRehash reports whether encoded was produced with a different scheme
// or weaker parameters than the current configuration.
func (h *Hasher) NeedsRehash(encoded string) bool {
	switch {
	case isBcrypt(encoded):
		if h.scheme != SchemeBcrypt {
			return true
		}
		cost, err := bcrypt.Cost([]byte(encoded))
		return err != nil || cost < h.cost
	case strings.HasPrefix(encoded, "$argon2id$"):
		if h.scheme != SchemeArgon2id {
			return true
		}
		p, err := parseArgon2id(encoded)
		return err != nil || p.memory < memory || p.iterations < iterations
	default:
		return true
	}
}

func isBcrypt(encoded string) bool {
	return strings.HasPrefix(encoded, "$2a$") ||
		strings.HasPrefix(encoded, "$2b$") ||
		strings.HasPrefix(encoded, "$2y$")
}

// hashArgon2id generates a PHC-format Argon2id hash string including salt and parameters.
func hashArgon2id(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	hash := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, keyLength)

	return fmt.Sprintf(
		"$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		memory,
		iterations,
		parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

type argon2Params struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	salt        []byte
	hash        []byte
}

// parseArgon2id parses $argon2id$v=19$m=X,t=Y,p=Z$salt$hash.
func parseArgon2id(encoded string) (argon2Params, error) {
	var p argon2Params

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return p, errors.New("invalid hash format: expected 6 parts")
	}
	if parts[1] != "argon2id" {
		return p, errors.New("invalid hash format: not argon2id")
	}
	if parts[2] != "v=19" {
		return p, errors.New("invalid hash format: wrong version")
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.iterations, &p.parallelism); err != nil {
		return p, fmt.Errorf("invalid hash format: failed to parse parameters: %w", err)
	}
	// argon2.IDKey panics on zero rounds or threads.
	if p.iterations < 1 || p.parallelism < 1 || p.memory < 1 || p.memory > maxMemory {
		return p, errors.New("invalid hash format: parameters out of range")
	}

	var err error
	if p.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return p, fmt.Errorf("invalid hash format: failed to decode salt: %w", err)
	}
	if p.hash, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return p, fmt.Errorf("invalid hash format: failed to decode hash: %w", err)
	}
	if len(p.salt) == 0 || len(p.hash) == 0 {
		return p, errors.New("invalid hash format: empty salt or hash")
	}

	return p, nil
}

func verifyArgon2id(password, encoded string) error {
	p, err := parseArgon2id(encoded)
	if err != nil {
		return err
	}

	computed := argon2.IDKey(
		[]byte(password),
		p.salt,
		p.iterations,
		p.memory,
		p.parallelism,
		uint32(len(p.hash)), // #nosec G115 - bounded by the decoded hash length
	)

	if subtle.ConstantTimeCompare(computed, p.hash) == 1 {
		return nil
	}
	return errors.New("password does not match")
}
