package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
}

func NewProfileUsecase(profileRepo domain.ProfileRepository) domain.ProfileUsecase {
	return &profileUsecase{profileRepo: profileRepo}
}

// CreateProfile creates the caller's profile. One profile per user; a second
// attempt is a conflict.
func (u *profileUsecase) CreateProfile(ctx context.Context, userID string, profile *domain.UserProfile) (*domain.UserProfile, error) {
	existing, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("Perfil já cadastrado para este usuário")
	}

	profile.UserID = userID
	if err := u.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("Perfil já cadastrado para este usuário")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *profileUsecase) GetMyProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Perfil não encontrado")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

// UpdateProfile updates the caller's own profile. user_type never changes
// after creation; the repository does not write it.
func (u *profileUsecase) UpdateProfile(ctx context.Context, userID string, profile *domain.UserProfile) (*domain.UserProfile, error) {
	profile.UserID = userID
	if err := u.profileRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Perfil não encontrado")
		}
		return nil, apperror.Internal(err)
	}
	return u.GetMyProfile(ctx, userID)
}

// GetUserType returns "" without error when the user has no profile yet.
func (u *profileUsecase) GetUserType(ctx context.Context, userID string) (string, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil
		}
		return "", apperror.Internal(err)
	}
	return profile.UserType, nil
}
