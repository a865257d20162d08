package domain

import "context"

// AuthUser is the identity the auth provider knows about.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthSession is returned by register/login. Token is empty when the provider
// still requires email confirmation. Profile is nil until the user completes
// profile setup.
type AuthSession struct {
	Token        string       `json:"token,omitempty"`
	RefreshToken string       `json:"refresh_token,omitempty"`
	User         AuthUser     `json:"user"`
	Profile      *UserProfile `json:"profile"`
}

// AuthStatus is the introspection result for a bearer token.
type AuthStatus struct {
	Authenticated bool         `json:"authenticated"`
	User          *AuthUser    `json:"user,omitempty"`
	Profile       *UserProfile `json:"profile,omitempty"`
	UserType      string       `json:"user_type,omitempty"`
}

type AuthUsecase interface {
	Register(ctx context.Context, email, password string) (*AuthSession, error)
	Login(ctx context.Context, email, password string) (*AuthSession, error)
	GetCurrentUser(ctx context.Context, token string) (*AuthStatus, error)
	// CheckAuth never errors; an invalid or missing token is simply false.
	CheckAuth(ctx context.Context, token string) bool
}
