package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, user_id, title, description, requirements, skills_required,
	location, contact_info, is_active, created_at, updated_at`

func (r *jobRepo) Create(ctx context.Context, job *domain.JobPosting) error {
	query := `
		INSERT INTO job_postings (user_id, title, description, requirements,
			skills_required, location, contact_info, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		job.UserID, job.Title, job.Description, job.Requirements,
		job.SkillsRequired, job.Location, job.ContactInfo, job.IsActive,
		job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings WHERE id = $1`

	var job domain.JobPosting
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.UserID, &job.Title, &job.Description, &job.Requirements,
		&job.SkillsRequired, &job.Location, &job.ContactInfo, &job.IsActive,
		&job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) GetByUserID(ctx context.Context, userID string) ([]domain.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}

func (r *jobRepo) GetActive(ctx context.Context, limit int) ([]domain.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings WHERE is_active = true
		ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}

func (r *jobRepo) GetIDsByUserID(ctx context.Context, userID string) ([]int64, error) {
	query := `SELECT id FROM job_postings WHERE user_id = $1`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func collectJobs(rows pgx.Rows) ([]domain.JobPosting, error) {
	var jobs []domain.JobPosting
	for rows.Next() {
		var job domain.JobPosting
		if err := rows.Scan(
			&job.ID, &job.UserID, &job.Title, &job.Description, &job.Requirements,
			&job.SkillsRequired, &job.Location, &job.ContactInfo, &job.IsActive,
			&job.CreatedAt, &job.UpdatedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, job *domain.JobPosting) error {
	query := `
		UPDATE job_postings
		SET title = $3, description = $4, requirements = $5, skills_required = $6,
			location = $7, contact_info = $8, is_active = $9, updated_at = $10
		WHERE id = $1 AND user_id = $2`

	job.UpdatedAt = time.Now()

	result, err := r.db.Exec(ctx, query,
		job.ID, job.UserID, job.Title, job.Description, job.Requirements,
		job.SkillsRequired, job.Location, job.ContactInfo, job.IsActive, job.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64, userID string) error {
	query := `DELETE FROM job_postings WHERE id = $1 AND user_id = $2`
	_, err := r.db.Exec(ctx, query, id, userID)
	return err
}
