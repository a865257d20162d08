package domain

import (
	"context"
	"time"
)

// Application status constants. pending is the initial state; approved and
// rejected are terminal.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusApproved = "approved"
	ApplicationStatusRejected = "rejected"
)

// Application is a candidate's submission of one résumé to one job posting.
type Application struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"` // candidate
	JobID     int64     `json:"job_id"`
	ResumeID  int64     `json:"resume_id"`
	Status    string    `json:"status"`
	AppliedAt time.Time `json:"applied_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByUserID(ctx context.Context, userID string) ([]Application, error)
	GetByJobID(ctx context.Context, jobID int64) ([]Application, error)
	Exists(ctx context.Context, userID string, jobID, resumeID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*Application, error)
}

type ApplicationUsecase interface {
	// Candidate operations
	CreateApplication(ctx context.Context, candidateID string, jobID, resumeID int64) (*Application, error)
	GetMyApplications(ctx context.Context, candidateID string) ([]Application, error)

	// Company operations
	GetJobApplications(ctx context.Context, companyID string, jobID int64) ([]Application, error)
	UpdateStatus(ctx context.Context, companyID string, applicationID int64, status string) (*Application, error)
}
