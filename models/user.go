package models

import "time"

// User represents an account entity used for authentication and for scoping
// task record sets. Each user owns an independent replica set; sync
// operations never cross user boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Password carries the plaintext password on inbound register/login
	// payloads only. The persistence layer stores the argon2id encoding,
	// never this value.
	Password string `json:"password,omitempty"`

	// PasswordHash is the argon2id encoding persisted in the database.
	// Never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
