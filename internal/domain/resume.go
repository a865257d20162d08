package domain

import (
	"context"
	"time"
)

// Resume is a candidate's résumé. Skills is a comma-separated list; the PDF
// exporter splits it into chips.
type Resume struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"user_id"`
	FullName     string    `json:"full_name"`
	Age          int       `json:"age"`
	Objective    string    `json:"objective"`
	Education    string    `json:"education"`
	Experience   string    `json:"experience"`
	Skills       string    `json:"skills"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone"`
	IsPublished  bool      `json:"is_published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) error
	GetByID(ctx context.Context, id int64) (*Resume, error)
	GetByUserID(ctx context.Context, userID string) ([]Resume, error)
	GetPublished(ctx context.Context, limit int) ([]Resume, error)
	Update(ctx context.Context, resume *Resume) error
	Delete(ctx context.Context, id int64, userID string) error
}

type ResumeUsecase interface {
	CreateResume(ctx context.Context, userID string, resume *Resume) (*Resume, error)
	GetMyResumes(ctx context.Context, userID string) ([]Resume, error)
	// GetResume applies the visibility rule: owners always see their résumé,
	// everyone else only when it is published. Hidden résumés read as absent.
	GetResume(ctx context.Context, actor Actor, id int64) (*Resume, error)
	GetPublishedResumes(ctx context.Context, limit int) ([]Resume, error)
	UpdateResume(ctx context.Context, id int64, userID string, resume *Resume) (*Resume, error)
	DeleteResume(ctx context.Context, id int64, userID string) error
	ExportPDF(ctx context.Context, actor Actor, id int64) ([]byte, error)
}
