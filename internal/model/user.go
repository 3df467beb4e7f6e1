package model

import "time"

// User is an admin account able to access the protected API surface.
// The password hash never leaves the persistence layer in responses.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

const RoleAdmin = "admin"
