package domain

import "time"

type User struct {
	ID           string
	Email        string // trimmed and lower-cased, unique
	PasswordHash string // bcrypt or argon2id encoded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
