package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/supabase"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthProvider is the slice of the Supabase client the auth flow needs.
type AuthProvider interface {
	HasAdminAccess() bool
	SignUp(ctx context.Context, email, password string) (*supabase.Session, error)
	AdminCreateUser(ctx context.Context, email, password string) (*supabase.User, error)
	PasswordGrant(ctx context.Context, email, password string) (*supabase.Session, error)
	GetUser(ctx context.Context, token string) (*supabase.User, error)
}

type authUsecase struct {
	provider    AuthProvider
	profileRepo domain.ProfileRepository
}

func NewAuthUsecase(provider AuthProvider, profileRepo domain.ProfileRepository) domain.AuthUsecase {
	return &authUsecase{provider: provider, profileRepo: profileRepo}
}

// NormalizeEmail strips stray quotes and whitespace that copy-pasted emails
// tend to carry, then lowercases.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	email = strings.Trim(email, `"'`)
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *authUsecase) Register(ctx context.Context, email, password string) (*domain.AuthSession, error) {
	email = NormalizeEmail(email)
	if !emailPattern.MatchString(email) {
		return nil, apperror.BadRequest("E-mail inválido")
	}
	if len(password) < 6 {
		return nil, apperror.BadRequest("A senha deve ter pelo menos 6 caracteres")
	}

	if u.provider.HasAdminAccess() {
		// Service-role path: the account comes back pre-confirmed, so we can
		// log the user in right away.
		user, err := u.provider.AdminCreateUser(ctx, email, password)
		if err != nil {
			return nil, mapSignupError(err)
		}
		session, err := u.provider.PasswordGrant(ctx, email, password)
		if err != nil {
			logger.Log.Error("post-signup login failed", "email", email, "error", err)
			return &domain.AuthSession{User: domain.AuthUser{ID: user.ID, Email: user.Email}}, nil
		}
		return u.sessionFrom(ctx, session), nil
	}

	session, err := u.provider.SignUp(ctx, email, password)
	if err != nil {
		return nil, mapSignupError(err)
	}
	return u.sessionFrom(ctx, session), nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.AuthSession, error) {
	email = NormalizeEmail(email)
	session, err := u.provider.PasswordGrant(ctx, email, password)
	if err != nil {
		if supabase.IsRateLimited(err) {
			return nil, apperror.BadRequest("Muitas tentativas. Aguarde um momento e tente novamente.")
		}
		return nil, apperror.Unauthorized("E-mail ou senha incorretos")
	}
	return u.sessionFrom(ctx, session), nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, token string) (*domain.AuthStatus, error) {
	user, err := u.provider.GetUser(ctx, token)
	if err != nil {
		return nil, apperror.Unauthorized("Token inválido ou expirado")
	}
	authUser := &domain.AuthUser{ID: user.ID, Email: user.Email}
	status := &domain.AuthStatus{Authenticated: true, User: authUser}
	if profile := u.lookupProfile(ctx, user.ID); profile != nil {
		status.Profile = profile
		status.UserType = profile.UserType
	}
	return status, nil
}

func (u *authUsecase) CheckAuth(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	_, err := u.provider.GetUser(ctx, token)
	return err == nil
}

func (u *authUsecase) sessionFrom(ctx context.Context, session *supabase.Session) *domain.AuthSession {
	out := &domain.AuthSession{
		Token:        session.AccessToken,
		RefreshToken: session.RefreshToken,
		User:         domain.AuthUser{ID: session.User.ID, Email: session.User.Email},
	}
	out.Profile = u.lookupProfile(ctx, session.User.ID)
	return out
}

func (u *authUsecase) lookupProfile(ctx context.Context, userID string) *domain.UserProfile {
	if userID == "" {
		return nil
	}
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Log.Error("profile lookup failed", "user_id", userID, "error", err)
		}
		return nil
	}
	return profile
}

func mapSignupError(err error) error {
	if supabase.IsAlreadyRegistered(err) {
		return apperror.Conflict("Este e-mail já está cadastrado. Faça login para continuar.")
	}
	if supabase.IsRateLimited(err) {
		return apperror.BadRequest("Muitas tentativas. Aguarde um momento e tente novamente.")
	}
	logger.Log.Error("signup failed", "error", err)
	return apperror.New(apperror.KindInternal, "Não foi possível concluir o cadastro. Tente novamente.", err)
}
