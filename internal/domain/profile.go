package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("duplicate resource")
)

// User types. user_type is fixed at profile creation and drives role gating.
const (
	UserTypeCandidate = "candidate"
	UserTypeCompany   = "company"
)

// UserProfile is the per-user profile row; exactly one per auth identity.
type UserProfile struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"` // Supabase UUID
	UserType  string    `json:"user_type"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *UserProfile) error
	GetByUserID(ctx context.Context, userID string) (*UserProfile, error)
	Update(ctx context.Context, profile *UserProfile) error
}

type ProfileUsecase interface {
	CreateProfile(ctx context.Context, userID string, profile *UserProfile) (*UserProfile, error)
	GetMyProfile(ctx context.Context, userID string) (*UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, profile *UserProfile) (*UserProfile, error)
	// GetUserType returns the caller's user_type, or "" when no profile exists.
	GetUserType(ctx context.Context, userID string) (string, error)
}
