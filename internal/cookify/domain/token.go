package domain

import "time"

// AccessToken is what a successful login hands back to the client.
type AccessToken struct {
	Token     string
	TokenType string // always "Bearer"
	ExpiresIn time.Duration
	ExpiresAt time.Time
}
