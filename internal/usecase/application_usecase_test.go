package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
)

func newApplicationFixture() (*MockApplicationRepo, *MockJobRepo, *MockResumeRepo, *MockNotificationUC, domain.ApplicationUsecase) {
	appRepo := new(MockApplicationRepo)
	jobRepo := new(MockJobRepo)
	resumeRepo := new(MockResumeRepo)
	notifUC := new(MockNotificationUC)
	uc := usecase.NewApplicationUsecase(appRepo, jobRepo, resumeRepo, notifUC)
	return appRepo, jobRepo, resumeRepo, notifUC, uc
}

func TestCreateApplication(t *testing.T) {
	ctx := context.Background()
	activeJob := &domain.JobPosting{ID: 10, UserID: "company-1", Title: "Dev Backend", IsActive: true}
	ownedResume := &domain.Resume{ID: 20, UserID: "cand-1", FullName: "Maria Silva"}

	t.Run("creates pending application and notifies the company", func(t *testing.T) {
		appRepo, jobRepo, resumeRepo, notifUC, uc := newApplicationFixture()
		jobRepo.On("GetByID", ctx, int64(10)).Return(activeJob, nil)
		resumeRepo.On("GetByID", ctx, int64(20)).Return(ownedResume, nil)
		appRepo.On("Exists", ctx, "cand-1", int64(10), int64(20)).Return(false, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil)
		notifUC.On("Create", ctx, "company-1", mock.MatchedBy(func(msg string) bool {
			return strings.Contains(msg, "Dev Backend")
		}), domain.NotificationTypeApplication).Return(&domain.Notification{ID: 1}, nil).Once()

		app, err := uc.CreateApplication(ctx, "cand-1", 10, 20)
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		assert.Equal(t, "cand-1", app.UserID)
		appRepo.AssertExpectations(t)
		notifUC.AssertExpectations(t)
	})

	t.Run("rejects inactive job", func(t *testing.T) {
		_, jobRepo, _, _, uc := newApplicationFixture()
		jobRepo.On("GetByID", ctx, int64(10)).Return(&domain.JobPosting{ID: 10, IsActive: false}, nil)

		_, err := uc.CreateApplication(ctx, "cand-1", 10, 20)
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})

	t.Run("someone else's resume reads as not found", func(t *testing.T) {
		_, jobRepo, resumeRepo, _, uc := newApplicationFixture()
		jobRepo.On("GetByID", ctx, int64(10)).Return(activeJob, nil)
		resumeRepo.On("GetByID", ctx, int64(20)).Return(&domain.Resume{ID: 20, UserID: "cand-2"}, nil)

		_, err := uc.CreateApplication(ctx, "cand-1", 10, 20)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})

	t.Run("duplicate application conflicts", func(t *testing.T) {
		appRepo, jobRepo, resumeRepo, _, uc := newApplicationFixture()
		jobRepo.On("GetByID", ctx, int64(10)).Return(activeJob, nil)
		resumeRepo.On("GetByID", ctx, int64(20)).Return(ownedResume, nil)
		appRepo.On("Exists", ctx, "cand-1", int64(10), int64(20)).Return(true, nil)

		_, err := uc.CreateApplication(ctx, "cand-1", 10, 20)
		assert.True(t, apperror.IsKind(err, apperror.KindConflict))
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("constraint violation on the race window still conflicts", func(t *testing.T) {
		appRepo, jobRepo, resumeRepo, _, uc := newApplicationFixture()
		jobRepo.On("GetByID", ctx, int64(10)).Return(activeJob, nil)
		resumeRepo.On("GetByID", ctx, int64(20)).Return(ownedResume, nil)
		appRepo.On("Exists", ctx, "cand-1", int64(10), int64(20)).Return(false, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(domain.ErrDuplicate)

		_, err := uc.CreateApplication(ctx, "cand-1", 10, 20)
		assert.True(t, apperror.IsKind(err, apperror.KindConflict))
	})
}

func TestGetJobApplicationsOwnership(t *testing.T) {
	ctx := context.Background()

	t.Run("owner lists applications", func(t *testing.T) {
		appRepo, jobRepo, _, _, uc := newApplicationFixture()
		jobRepo.On("GetByID", ctx, int64(10)).Return(&domain.JobPosting{ID: 10, UserID: "company-1"}, nil)
		appRepo.On("GetByJobID", ctx, int64(10)).Return([]domain.Application{{ID: 1, JobID: 10}}, nil)

		apps, err := uc.GetJobApplications(ctx, "company-1", 10)
		assert.NoError(t, err)
		assert.Len(t, apps, 1)
	})

	t.Run("non-owner gets not found, never forbidden", func(t *testing.T) {
		appRepo, jobRepo, _, _, uc := newApplicationFixture()
		jobRepo.On("GetByID", ctx, int64(10)).Return(&domain.JobPosting{ID: 10, UserID: "company-1"}, nil)

		_, err := uc.GetJobApplications(ctx, "company-2", 10)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
		assert.False(t, apperror.IsKind(err, apperror.KindAuthorization))
		appRepo.AssertNotCalled(t, "GetByJobID", mock.Anything, mock.Anything)
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	ctx := context.Background()
	pending := func() *domain.Application {
		return &domain.Application{ID: 1, UserID: "cand-1", JobID: 10, Status: domain.ApplicationStatusPending}
	}
	job := &domain.JobPosting{ID: 10, UserID: "company-1"}

	t.Run("approval notifies the candidate once", func(t *testing.T) {
		appRepo, jobRepo, _, notifUC, uc := newApplicationFixture()
		jobRepo.On("GetByID", ctx, int64(10)).Return(job, nil)
		appRepo.On("GetByID", ctx, int64(1)).Return(pending(), nil)
		approved := &domain.Application{ID: 1, UserID: "cand-1", JobID: 10, Status: domain.ApplicationStatusApproved}
		appRepo.On("UpdateStatus", ctx, int64(1), domain.ApplicationStatusApproved).Return(approved, nil)
		notifUC.On("Create", ctx, "cand-1", domain.NotificationMsgApproved, domain.NotificationTypeApproval).
			Return(&domain.Notification{ID: 99}, nil).Once()

		updated, err := uc.UpdateStatus(ctx, "company-1", 1, domain.ApplicationStatusApproved)
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusApproved, updated.Status)
		notifUC.AssertExpectations(t)
	})

	t.Run("rejection uses the reviewed message", func(t *testing.T) {
		appRepo, jobRepo, _, notifUC, uc := newApplicationFixture()
		jobRepo.On("GetByID", ctx, int64(10)).Return(job, nil)
		appRepo.On("GetByID", ctx, int64(1)).Return(pending(), nil)
		rejected := &domain.Application{ID: 1, UserID: "cand-1", JobID: 10, Status: domain.ApplicationStatusRejected}
		appRepo.On("UpdateStatus", ctx, int64(1), domain.ApplicationStatusRejected).Return(rejected, nil)
		notifUC.On("Create", ctx, "cand-1", domain.NotificationMsgReviewed, domain.NotificationTypeApproval).
			Return(&domain.Notification{ID: 100}, nil).Once()

		_, err := uc.UpdateStatus(ctx, "company-1", 1, domain.ApplicationStatusRejected)
		assert.NoError(t, err)
		notifUC.AssertExpectations(t)
	})

	t.Run("notification failure does not roll back the decision", func(t *testing.T) {
		appRepo, jobRepo, _, notifUC, uc := newApplicationFixture()
		jobRepo.On("GetByID", ctx, int64(10)).Return(job, nil)
		appRepo.On("GetByID", ctx, int64(1)).Return(pending(), nil)
		approved := &domain.Application{ID: 1, UserID: "cand-1", JobID: 10, Status: domain.ApplicationStatusApproved}
		appRepo.On("UpdateStatus", ctx, int64(1), domain.ApplicationStatusApproved).Return(approved, nil)
		notifUC.On("Create", ctx, "cand-1", domain.NotificationMsgApproved, domain.NotificationTypeApproval).
			Return(nil, errors.New("notification store down"))

		updated, err := uc.UpdateStatus(ctx, "company-1", 1, domain.ApplicationStatusApproved)
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusApproved, updated.Status)
	})

	t.Run("invalid status is rejected before any read", func(t *testing.T) {
		appRepo, _, _, _, uc := newApplicationFixture()
		_, err := uc.UpdateStatus(ctx, "company-1", 1, "archived")
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
		appRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("pending is the status that never arrives via update", func(t *testing.T) {
		_, _, _, _, uc := newApplicationFixture()
		_, err := uc.UpdateStatus(ctx, "company-1", 1, domain.ApplicationStatusPending)
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})

	t.Run("already decided application conflicts", func(t *testing.T) {
		appRepo, jobRepo, _, notifUC, uc := newApplicationFixture()
		jobRepo.On("GetByID", ctx, int64(10)).Return(job, nil)
		decided := &domain.Application{ID: 1, UserID: "cand-1", JobID: 10, Status: domain.ApplicationStatusApproved}
		appRepo.On("GetByID", ctx, int64(1)).Return(decided, nil)

		_, err := uc.UpdateStatus(ctx, "company-1", 1, domain.ApplicationStatusRejected)
		assert.True(t, apperror.IsKind(err, apperror.KindConflict))
		appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		notifUC.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("company that does not own the job gets not found and no change", func(t *testing.T) {
		appRepo, jobRepo, _, _, uc := newApplicationFixture()
		jobRepo.On("GetByID", ctx, int64(10)).Return(job, nil)
		appRepo.On("GetByID", ctx, int64(1)).Return(pending(), nil)

		_, err := uc.UpdateStatus(ctx, "company-2", 1, domain.ApplicationStatusApproved)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
		appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}
