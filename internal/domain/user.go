package domain

import (
	"context"
	"time"
)

type User struct {
	ID           string    `json:"id"`
	Nombre       string    `json:"nombre"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type RegisterInput struct {
	Nombre               string `json:"nombre" validate:"required,max=255"`
	Email                string `json:"email" validate:"required,max=255,email"`
	Password             string `json:"password" validate:"required,min=8,max=72,eqfield=PasswordConfirmation"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileInput struct {
	Nombre *string `json:"nombre" validate:"required,max=255"`
	Email  *string `json:"email" validate:"required,max=255,email"`
}

type ChangePasswordInput struct {
	CurrentPassword      string `json:"current_password" validate:"required"`
	Password             string `json:"password" validate:"required,min=8,max=72,eqfield=PasswordConfirmation"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required"`
}

// ClientInfo describes the caller for security logging.
type ClientInfo struct {
	IP        string
	UserAgent string
	RequestID string
}

type AuthResult struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
	User      *User     `json:"user"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
}

type AuthUsecase interface {
	Register(ctx context.Context, input map[string]any, client ClientInfo) (*AuthResult, error)
	Login(ctx context.Context, input map[string]any, client ClientInfo) (*AuthResult, error)
	// Logout revokes the token until it would have expired.
	Logout(ctx context.Context, token string, client ClientInfo) error
	GetCurrentUser(ctx context.Context, id string) (*User, error)
	UpdateProfile(ctx context.Context, id string, input map[string]any) (*User, error)
	ChangePassword(ctx context.Context, id string, input map[string]any) error
}
