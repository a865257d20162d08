package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/supabase"
)

func TestNormalizeEmail(t *testing.T) {
	cases := map[string]string{
		"  User@Example.COM ":  "user@example.com",
		`"quoted@example.com"`: "quoted@example.com",
		"'single@example.com'": "single@example.com",
		"plain@example.com":    "plain@example.com",
	}
	for in, want := range cases {
		assert.Equal(t, want, usecase.NormalizeEmail(in))
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	session := &supabase.Session{
		AccessToken:  "tok",
		RefreshToken: "ref",
		User:         supabase.User{ID: "uid-1", Email: "user@example.com"},
	}

	t.Run("rejects malformed email before calling the provider", func(t *testing.T) {
		provider := new(MockAuthProvider)
		uc := usecase.NewAuthUsecase(provider, new(MockProfileRepo))

		_, err := uc.Register(ctx, "not-an-email", "secret1")
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
		provider.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects short password", func(t *testing.T) {
		provider := new(MockAuthProvider)
		uc := usecase.NewAuthUsecase(provider, new(MockProfileRepo))

		_, err := uc.Register(ctx, "user@example.com", "123")
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})

	t.Run("admin path creates a confirmed user and logs in", func(t *testing.T) {
		provider := new(MockAuthProvider)
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewAuthUsecase(provider, profileRepo)

		provider.On("HasAdminAccess").Return(true)
		provider.On("AdminCreateUser", ctx, "user@example.com", "secret1").
			Return(&supabase.User{ID: "uid-1", Email: "user@example.com"}, nil)
		provider.On("PasswordGrant", ctx, "user@example.com", "secret1").Return(session, nil)
		profileRepo.On("GetByUserID", ctx, "uid-1").Return(nil, domain.ErrNotFound)

		out, err := uc.Register(ctx, " User@Example.com ", "secret1")
		assert.NoError(t, err)
		assert.Equal(t, "tok", out.Token)
		assert.Nil(t, out.Profile)
		provider.AssertExpectations(t)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		provider := new(MockAuthProvider)
		uc := usecase.NewAuthUsecase(provider, new(MockProfileRepo))

		provider.On("HasAdminAccess").Return(true)
		provider.On("AdminCreateUser", ctx, "user@example.com", "secret1").
			Return(nil, &supabase.Error{Status: 422, Code: "user_already_exists", Message: "User already registered"})

		_, err := uc.Register(ctx, "user@example.com", "secret1")
		assert.True(t, apperror.IsKind(err, apperror.KindConflict))
	})

	t.Run("login failure after admin signup still returns the account", func(t *testing.T) {
		provider := new(MockAuthProvider)
		uc := usecase.NewAuthUsecase(provider, new(MockProfileRepo))

		provider.On("HasAdminAccess").Return(true)
		provider.On("AdminCreateUser", ctx, "user@example.com", "secret1").
			Return(&supabase.User{ID: "uid-1", Email: "user@example.com"}, nil)
		provider.On("PasswordGrant", ctx, "user@example.com", "secret1").
			Return(nil, &supabase.Error{Status: 500, Message: "grant failed"})

		out, err := uc.Register(ctx, "user@example.com", "secret1")
		assert.NoError(t, err)
		assert.Empty(t, out.Token)
		assert.Equal(t, "uid-1", out.User.ID)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("bad credentials are unauthorized", func(t *testing.T) {
		provider := new(MockAuthProvider)
		uc := usecase.NewAuthUsecase(provider, new(MockProfileRepo))
		provider.On("PasswordGrant", ctx, "user@example.com", "wrong").
			Return(nil, &supabase.Error{Status: 400, Code: "invalid_credentials", Message: "Invalid login credentials"})

		_, err := uc.Login(ctx, "user@example.com", "wrong")
		assert.True(t, apperror.IsKind(err, apperror.KindAuthentication))
	})

	t.Run("successful login attaches the profile when one exists", func(t *testing.T) {
		provider := new(MockAuthProvider)
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewAuthUsecase(provider, profileRepo)

		provider.On("PasswordGrant", ctx, "user@example.com", "secret1").Return(&supabase.Session{
			AccessToken: "tok",
			User:        supabase.User{ID: "uid-1", Email: "user@example.com"},
		}, nil)
		profileRepo.On("GetByUserID", ctx, "uid-1").
			Return(&domain.UserProfile{UserID: "uid-1", UserType: domain.UserTypeCandidate}, nil)

		out, err := uc.Login(ctx, "user@example.com", "secret1")
		assert.NoError(t, err)
		assert.NotNil(t, out.Profile)
		assert.Equal(t, domain.UserTypeCandidate, out.Profile.UserType)
	})
}

func TestGetCurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid token is unauthorized", func(t *testing.T) {
		provider := new(MockAuthProvider)
		uc := usecase.NewAuthUsecase(provider, new(MockProfileRepo))
		provider.On("GetUser", ctx, "bad").Return(nil, &supabase.Error{Status: 401, Message: "invalid JWT"})

		_, err := uc.GetCurrentUser(ctx, "bad")
		assert.True(t, apperror.IsKind(err, apperror.KindAuthentication))
	})

	t.Run("profile-less user is authenticated with empty type", func(t *testing.T) {
		provider := new(MockAuthProvider)
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewAuthUsecase(provider, profileRepo)
		provider.On("GetUser", ctx, "tok").Return(&supabase.User{ID: "uid-1", Email: "u@e.com"}, nil)
		profileRepo.On("GetByUserID", ctx, "uid-1").Return(nil, domain.ErrNotFound)

		status, err := uc.GetCurrentUser(ctx, "tok")
		assert.NoError(t, err)
		assert.True(t, status.Authenticated)
		assert.Nil(t, status.Profile)
		assert.Empty(t, status.UserType)
	})
}

func TestCheckAuth(t *testing.T) {
	ctx := context.Background()
	provider := new(MockAuthProvider)
	uc := usecase.NewAuthUsecase(provider, new(MockProfileRepo))

	assert.False(t, uc.CheckAuth(ctx, ""))

	provider.On("GetUser", ctx, "tok").Return(&supabase.User{ID: "uid-1"}, nil)
	assert.True(t, uc.CheckAuth(ctx, "tok"))
}
