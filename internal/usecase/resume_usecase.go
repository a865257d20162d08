package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/pdf"
)

const publishedResumesMaxLimit = 500

type resumeUsecase struct {
	resumeRepo domain.ResumeRepository
}

func NewResumeUsecase(resumeRepo domain.ResumeRepository) domain.ResumeUsecase {
	return &resumeUsecase{resumeRepo: resumeRepo}
}

func (u *resumeUsecase) CreateResume(ctx context.Context, userID string, resume *domain.Resume) (*domain.Resume, error) {
	resume.UserID = userID
	if err := u.resumeRepo.Create(ctx, resume); err != nil {
		return nil, apperror.Internal(err)
	}
	return resume, nil
}

func (u *resumeUsecase) GetMyResumes(ctx context.Context, userID string) ([]domain.Resume, error) {
	resumes, err := u.resumeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return resumes, nil
}

// GetResume enforces the visibility rule: the owner always sees the résumé,
// anyone else only when it is published. A hidden résumé reads as absent so
// existence never leaks.
func (u *resumeUsecase) GetResume(ctx context.Context, actor domain.Actor, id int64) (*domain.Resume, error) {
	resume, err := u.resumeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Currículo não encontrado")
		}
		return nil, apperror.Internal(err)
	}
	if resume.UserID != actor.UserID && !resume.IsPublished {
		return nil, apperror.NotFound("Currículo não encontrado")
	}
	return resume, nil
}

func (u *resumeUsecase) GetPublishedResumes(ctx context.Context, limit int) ([]domain.Resume, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > publishedResumesMaxLimit {
		limit = publishedResumesMaxLimit
	}

	resumes, err := u.resumeRepo.GetPublished(ctx, limit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return resumes, nil
}

func (u *resumeUsecase) UpdateResume(ctx context.Context, id int64, userID string, resume *domain.Resume) (*domain.Resume, error) {
	resume.ID = id
	resume.UserID = userID
	if err := u.resumeRepo.Update(ctx, resume); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Covers both a missing row and someone else's row
			return nil, apperror.NotFound("Currículo não encontrado")
		}
		return nil, apperror.Internal(err)
	}
	return resume, nil
}

func (u *resumeUsecase) DeleteResume(ctx context.Context, id int64, userID string) error {
	if err := u.resumeRepo.Delete(ctx, id, userID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// ExportPDF renders the résumé under the same visibility rule as GetResume.
func (u *resumeUsecase) ExportPDF(ctx context.Context, actor domain.Actor, id int64) ([]byte, error) {
	resume, err := u.GetResume(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	doc, err := pdf.RenderResume(resume)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return doc, nil
}
