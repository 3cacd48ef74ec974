package entity

import "time"

// User is the aggregate root for accounts.
// Password hashes are never part of the entity; they live in the credential store.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	Username  string    `json:"username,omitempty"`
	Specialty string    `json:"specialty,omitempty"`
	IsOnline  bool      `json:"isOnline"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RegisterRequest carries the fields accepted on sign up.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username,omitempty"`
}

// Credential maps an email to a bcrypt hash.
type Credential struct {
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// Session is the persisted auth state of the installation.
type Session struct {
	UserID     string    `json:"userId"`
	LoggedInAt time.Time `json:"loggedInAt"`
}
