package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

const activeJobsMaxLimit = 500

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

func (u *jobUsecase) CreateJob(ctx context.Context, userID string, job *domain.JobPosting) (*domain.JobPosting, error) {
	job.UserID = userID
	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) GetMyJobs(ctx context.Context, userID string) ([]domain.JobPosting, error) {
	jobs, err := u.jobRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

// GetActiveJobs is the candidate-facing view; inactive postings never appear.
func (u *jobUsecase) GetActiveJobs(ctx context.Context, limit int) ([]domain.JobPosting, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > activeJobsMaxLimit {
		limit = activeJobsMaxLimit
	}

	jobs, err := u.jobRepo.GetActive(ctx, limit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

// GetJob has no ownership rule; postings are readable by any authenticated user.
func (u *jobUsecase) GetJob(ctx context.Context, id int64) (*domain.JobPosting, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Vaga não encontrada")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, id int64, userID string, job *domain.JobPosting) (*domain.JobPosting, error) {
	job.ID = id
	job.UserID = userID
	if err := u.jobRepo.Update(ctx, job); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Vaga não encontrada")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id int64, userID string) error {
	if err := u.jobRepo.Delete(ctx, id, userID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
