package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

const applicationColumns = `id, user_id, job_id, resume_id, status, applied_at, updated_at`

// Create inserts a new application. The applications table carries a unique
// constraint on (user_id, job_id, resume_id); a violation surfaces as
// domain.ErrDuplicate so concurrent identical submissions cannot both land.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (user_id, job_id, resume_id, status, applied_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	now := time.Now()
	app.AppliedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	err := r.db.QueryRow(ctx, query,
		app.UserID, app.JobID, app.ResumeID, app.Status, app.AppliedAt, app.UpdatedAt,
	).Scan(&app.ID)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.UserID, &app.JobID, &app.ResumeID,
		&app.Status, &app.AppliedAt, &app.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) GetByUserID(ctx context.Context, userID string) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications
		WHERE user_id = $1 ORDER BY applied_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectApplications(rows)
}

func (r *applicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications
		WHERE job_id = $1 ORDER BY applied_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectApplications(rows)
}

func collectApplications(rows pgx.Rows) ([]domain.Application, error) {
	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.UserID, &app.JobID, &app.ResumeID,
			&app.Status, &app.AppliedAt, &app.UpdatedAt,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

func (r *applicationRepo) Exists(ctx context.Context, userID string, jobID, resumeID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications
		WHERE user_id = $1 AND job_id = $2 AND resume_id = $3)`

	var exists bool
	err := r.db.QueryRow(ctx, query, userID, jobID, resumeID).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Application, error) {
	query := `
		UPDATE applications SET status = $2, updated_at = $3
		WHERE id = $1
		RETURNING ` + applicationColumns

	var app domain.Application
	err := r.db.QueryRow(ctx, query, id, status, time.Now()).Scan(
		&app.ID, &app.UserID, &app.JobID, &app.ResumeID,
		&app.Status, &app.AppliedAt, &app.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}
