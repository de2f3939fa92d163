package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`                // Primary key
	Username     string    `json:"username" db:"username"`         // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`           // Hashed password, never serialized
	AccessToken  string    `json:"accessToken" db:"access_token"`  // Opaque bearer credential, unique
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}

// UserPublic is the projection of a user returned to clients.
// The password hash never leaves the service.
type UserPublic struct {
	UserID      uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	AccessToken string    `json:"accessToken"`
}

// Public returns the client-facing projection of the user.
func (u *UserDB) Public() *UserPublic {
	return &UserPublic{
		UserID:      u.UserID,
		Username:    u.Username,
		AccessToken: u.AccessToken,
	}
}
