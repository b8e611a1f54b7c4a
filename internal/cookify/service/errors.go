package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrUserNotFound       = errors.New("user_not_found")
	ErrDuplicateEmail     = errors.New("email_already_registered")
	ErrServiceUnavailable = errors.New("service_unavailable")
	ErrInvalidInput       = errors.New("invalid_input")
	ErrNotFound           = errors.New("not_found")
	ErrBadAIResponse      = errors.New("bad_ai_response")
)

// ErrNoCredentials is the ErrUnauthenticated case where no Authorization
// header was sent.
var ErrNoCredentials = fmt.Errorf("no_credentials: %w", ErrUnauthenticated)
