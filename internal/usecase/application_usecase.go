package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	resumeRepo      domain.ResumeRepository
	notificationUC  domain.NotificationUsecase
}

func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	resumeRepo domain.ResumeRepository,
	notificationUC domain.NotificationUsecase,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
		resumeRepo:      resumeRepo,
		notificationUC:  notificationUC,
	}
}

// CreateApplication submits one résumé to one job posting. The (candidate,
// job, résumé) triple is unique; the advisory check here gives a clean
// conflict message and the storage constraint closes the race window.
func (uc *applicationUsecase) CreateApplication(ctx context.Context, candidateID string, jobID, resumeID int64) (*domain.Application, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Vaga não encontrada")
		}
		return nil, apperror.Internal(err)
	}
	if !job.IsActive {
		return nil, apperror.BadRequest("Esta vaga não está mais ativa")
	}

	resume, err := uc.resumeRepo.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Currículo não encontrado")
		}
		return nil, apperror.Internal(err)
	}
	if resume.UserID != candidateID {
		// Someone else's résumé reads as absent
		return nil, apperror.NotFound("Currículo não encontrado")
	}

	exists, err := uc.applicationRepo.Exists(ctx, candidateID, jobID, resumeID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("Você já se candidatou a esta vaga")
	}

	app := &domain.Application{
		UserID:   candidateID,
		JobID:    jobID,
		ResumeID: resumeID,
		Status:   domain.ApplicationStatusPending,
	}
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("Você já se candidatou a esta vaga")
		}
		return nil, apperror.Internal(err)
	}

	// Best effort, same policy as the status-change notification.
	message := fmt.Sprintf(domain.NotificationMsgNewApplication, job.Title)
	if _, err := uc.notificationUC.Create(ctx, job.UserID, message, domain.NotificationTypeApplication); err != nil {
		logger.Log.Error("Failed to create application notification",
			"job_id", jobID, "company_id", job.UserID, "error", err)
	}

	return app, nil
}

func (uc *applicationUsecase) GetMyApplications(ctx context.Context, candidateID string) ([]domain.Application, error) {
	applications, err := uc.applicationRepo.GetByUserID(ctx, candidateID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return applications, nil
}

// GetJobApplications lists a posting's applications for its owning company.
// A posting owned by someone else reads as absent.
func (uc *applicationUsecase) GetJobApplications(ctx context.Context, companyID string, jobID int64) ([]domain.Application, error) {
	if err := uc.checkJobOwnership(ctx, companyID, jobID); err != nil {
		return nil, err
	}

	applications, err := uc.applicationRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return applications, nil
}

// UpdateStatus moves an application out of pending. approved and rejected are
// terminal; once decided, further transitions are conflicts. On success a
// notification is written for the candidate, best effort: a failed
// notification is logged and never rolls back the status update.
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, companyID string, applicationID int64, status string) (*domain.Application, error) {
	if status != domain.ApplicationStatusApproved && status != domain.ApplicationStatusRejected {
		return nil, apperror.BadRequest("Status inválido. Use: approved ou rejected")
	}

	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidatura não encontrada")
		}
		return nil, apperror.Internal(err)
	}

	if err := uc.checkJobOwnership(ctx, companyID, app.JobID); err != nil {
		return nil, err
	}

	if app.Status != domain.ApplicationStatusPending {
		return nil, apperror.Conflict("Candidatura ja foi decidida")
	}

	updated, err := uc.applicationRepo.UpdateStatus(ctx, applicationID, status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidatura não encontrada para atualização")
		}
		return nil, apperror.Internal(err)
	}

	message := domain.NotificationMsgReviewed
	if status == domain.ApplicationStatusApproved {
		message = domain.NotificationMsgApproved
	}
	if _, err := uc.notificationUC.Create(ctx, app.UserID, message, domain.NotificationTypeApproval); err != nil {
		logger.Log.Error("Failed to create status notification",
			"application_id", applicationID, "candidate_id", app.UserID, "error", err)
	}

	return updated, nil
}

// checkJobOwnership fails as not-found for both a missing posting and one
// owned by another company, so existence never leaks.
func (uc *applicationUsecase) checkJobOwnership(ctx context.Context, companyID string, jobID int64) error {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Vaga não encontrada ou sem permissão")
		}
		return apperror.Internal(err)
	}
	if job.UserID != companyID {
		return apperror.NotFound("Vaga não encontrada ou sem permissão")
	}
	return nil
}
