package models

import "time"

// User is a field worker account on the server side.
// PasswordHash is an argon2id PHC string, never the password itself.
type User struct {
	CreatedAt    time.Time
	LastLogin    *time.Time
	ID           string
	Username     string
	FullName     string
	PasswordHash string
}
