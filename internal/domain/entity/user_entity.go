package entity

import (
	"time"
)

// Image is a stored media reference: the storage object path (public id) plus
// the HTTPS URL it is served from. The zero value means "no image".
type Image struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
}

// User is the aggregate root for the user domain.
// Passwords are stored as bcrypt hashes in Password field.
type User struct {
	ID         string
	Email      string
	Password   string
	Name       string
	Bio        string
	Avatar     Image
	IsVerified bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
