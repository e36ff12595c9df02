package service

import (
	"context"
	"time"

	"potager/entities"
)

type RegisterInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is what register/login/admin-login hand back to the client.
type Session struct {
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"`
	ExpiresAt   time.Time      `json:"expires_at"`
	User        *entities.User `json:"user"`
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*Session, error)
	Login(ctx context.Context, in LoginInput) (*Session, error)
	AdminLogin(ctx context.Context) (*Session, error)
	// Authenticate resolves a bearer token to a live, active user.
	Authenticate(ctx context.Context, rawToken string) (*entities.User, error)
}
