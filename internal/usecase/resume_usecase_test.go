package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
)

func TestGetResumeVisibility(t *testing.T) {
	ctx := context.Background()
	owner := domain.Actor{UserID: "cand-1", UserType: domain.UserTypeCandidate}
	stranger := domain.Actor{UserID: "company-1", UserType: domain.UserTypeCompany}

	t.Run("owner sees an unpublished resume", func(t *testing.T) {
		repo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(repo)
		repo.On("GetByID", ctx, int64(1)).Return(&domain.Resume{ID: 1, UserID: "cand-1", IsPublished: false}, nil)

		resume, err := uc.GetResume(ctx, owner, 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), resume.ID)
	})

	t.Run("non-owner sees a published resume", func(t *testing.T) {
		repo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(repo)
		repo.On("GetByID", ctx, int64(1)).Return(&domain.Resume{ID: 1, UserID: "cand-1", IsPublished: true}, nil)

		resume, err := uc.GetResume(ctx, stranger, 1)
		assert.NoError(t, err)
		assert.Equal(t, "cand-1", resume.UserID)
	})

	t.Run("unpublished resume reads as absent to non-owners", func(t *testing.T) {
		repo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(repo)
		repo.On("GetByID", ctx, int64(1)).Return(&domain.Resume{ID: 1, UserID: "cand-1", IsPublished: false}, nil)

		_, err := uc.GetResume(ctx, stranger, 1)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
		assert.False(t, apperror.IsKind(err, apperror.KindAuthorization))
	})
}

func TestUpdateResumeOwnership(t *testing.T) {
	ctx := context.Background()

	t.Run("someone else's resume reads as absent on update", func(t *testing.T) {
		repo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(repo)
		// Owner-scoped UPDATE matches zero rows for a non-owner.
		repo.On("Update", ctx, &domain.Resume{ID: 1, UserID: "cand-2", FullName: "X"}).Return(domain.ErrNotFound)

		_, err := uc.UpdateResume(ctx, 1, "cand-2", &domain.Resume{FullName: "X"})
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}

func TestGetPublishedResumesLimit(t *testing.T) {
	ctx := context.Background()

	t.Run("zero limit becomes the default", func(t *testing.T) {
		repo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(repo)
		repo.On("GetPublished", ctx, 50).Return([]domain.Resume{}, nil)

		_, err := uc.GetPublishedResumes(ctx, 0)
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("oversized limit is clamped", func(t *testing.T) {
		repo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(repo)
		repo.On("GetPublished", ctx, 500).Return([]domain.Resume{}, nil)

		_, err := uc.GetPublishedResumes(ctx, 10000)
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}
