package entity

import "time"

// User represents a registered account. The username is the primary
// identifier; the password is only ever held as a bcrypt hash.
type User struct {
	Username     string    // Unique login identifier, matched case-sensitively.
	PasswordHash string    // Salted one-way hash of the password. Never the plaintext.
	CreatedAt    time.Time // Timestamp of when this account was registered.
}
