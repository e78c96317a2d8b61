package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User represents a platform user
type User struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"-"`
	DisplayName       string    `json:"display_name,omitempty"`
	PreferredLanguage string    `json:"preferred_language"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// UserCreate represents user registration data
type UserCreate struct {
	Email             string `json:"email" validate:"required,email,max=255"`
	Password          string `json:"password" validate:"required,min=8,max=72"`
	DisplayName       string `json:"display_name" validate:"max=100"`
	PreferredLanguage string `json:"preferred_language" validate:"omitempty,len=2"`
}

// UserLogin represents login credentials
type UserLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserUpdate carries the mutable profile fields; nil means "leave unchanged"
type UserUpdate struct {
	DisplayName       *string `json:"display_name" validate:"omitempty,max=100"`
	PreferredLanguage *string `json:"preferred_language" validate:"omitempty,len=2"`
}

// TokenPair represents JWT token pair
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uuid.UUID) error
}
