package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type resumeRepo struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

const resumeColumns = `id, user_id, full_name, age, objective, education, experience,
	skills, contact_email, contact_phone, is_published, created_at, updated_at`

func scanResume(row pgx.Row) (*domain.Resume, error) {
	var res domain.Resume
	err := row.Scan(
		&res.ID, &res.UserID, &res.FullName, &res.Age, &res.Objective,
		&res.Education, &res.Experience, &res.Skills, &res.ContactEmail,
		&res.ContactPhone, &res.IsPublished, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &res, nil
}

func (r *resumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	query := `
		INSERT INTO resumes (user_id, full_name, age, objective, education, experience,
			skills, contact_email, contact_phone, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	now := time.Now()
	resume.CreatedAt = now
	resume.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		resume.UserID, resume.FullName, resume.Age, resume.Objective,
		resume.Education, resume.Experience, resume.Skills, resume.ContactEmail,
		resume.ContactPhone, resume.IsPublished, resume.CreatedAt, resume.UpdatedAt,
	).Scan(&resume.ID)
}

func (r *resumeRepo) GetByID(ctx context.Context, id int64) (*domain.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1`
	return scanResume(r.db.QueryRow(ctx, query, id))
}

func (r *resumeRepo) GetByUserID(ctx context.Context, userID string) ([]domain.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE user_id = $1 ORDER BY updated_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectResumes(rows)
}

func (r *resumeRepo) GetPublished(ctx context.Context, limit int) ([]domain.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE is_published = true
		ORDER BY updated_at DESC LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectResumes(rows)
}

func collectResumes(rows pgx.Rows) ([]domain.Resume, error) {
	var resumes []domain.Resume
	for rows.Next() {
		var res domain.Resume
		if err := rows.Scan(
			&res.ID, &res.UserID, &res.FullName, &res.Age, &res.Objective,
			&res.Education, &res.Experience, &res.Skills, &res.ContactEmail,
			&res.ContactPhone, &res.IsPublished, &res.CreatedAt, &res.UpdatedAt,
		); err != nil {
			return nil, err
		}
		resumes = append(resumes, res)
	}
	return resumes, rows.Err()
}

func (r *resumeRepo) Update(ctx context.Context, resume *domain.Resume) error {
	// Ownership filter alongside the id so a non-owner's write hits zero rows
	query := `
		UPDATE resumes
		SET full_name = $3, age = $4, objective = $5, education = $6, experience = $7,
			skills = $8, contact_email = $9, contact_phone = $10, is_published = $11,
			updated_at = $12
		WHERE id = $1 AND user_id = $2`

	resume.UpdatedAt = time.Now()

	result, err := r.db.Exec(ctx, query,
		resume.ID, resume.UserID, resume.FullName, resume.Age, resume.Objective,
		resume.Education, resume.Experience, resume.Skills, resume.ContactEmail,
		resume.ContactPhone, resume.IsPublished, resume.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *resumeRepo) Delete(ctx context.Context, id int64, userID string) error {
	query := `DELETE FROM resumes WHERE id = $1 AND user_id = $2`
	_, err := r.db.Exec(ctx, query, id, userID)
	return err
}
