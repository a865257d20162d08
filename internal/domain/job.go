package domain

import (
	"context"
	"time"
)

// JobPosting belongs to a company user. Candidates only see it while is_active.
type JobPosting struct {
	ID             int64     `json:"id"`
	UserID         string    `json:"user_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Requirements   *string   `json:"requirements,omitempty"`
	SkillsRequired *string   `json:"skills_required,omitempty"`
	Location       *string   `json:"location,omitempty"`
	ContactInfo    *string   `json:"contact_info,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type JobRepository interface {
	Create(ctx context.Context, job *JobPosting) error
	GetByID(ctx context.Context, id int64) (*JobPosting, error)
	GetByUserID(ctx context.Context, userID string) ([]JobPosting, error)
	GetActive(ctx context.Context, limit int) ([]JobPosting, error)
	GetIDsByUserID(ctx context.Context, userID string) ([]int64, error)
	Update(ctx context.Context, job *JobPosting) error
	Delete(ctx context.Context, id int64, userID string) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, userID string, job *JobPosting) (*JobPosting, error)
	GetMyJobs(ctx context.Context, userID string) ([]JobPosting, error)
	GetActiveJobs(ctx context.Context, limit int) ([]JobPosting, error)
	GetJob(ctx context.Context, id int64) (*JobPosting, error)
	UpdateJob(ctx context.Context, id int64, userID string, job *JobPosting) (*JobPosting, error)
	DeleteJob(ctx context.Context, id int64, userID string) error
}
