package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

// isUniqueViolation reports a Postgres unique constraint failure.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *profileRepo) Create(ctx context.Context, profile *domain.UserProfile) error {
	query := `
		INSERT INTO user_profiles (user_id, user_type, full_name, email, phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	profile.CreatedAt = time.Now()

	err := r.db.QueryRow(ctx, query,
		profile.UserID,
		profile.UserType,
		profile.FullName,
		profile.Email,
		profile.Phone,
		profile.CreatedAt,
	).Scan(&profile.ID)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	query := `
		SELECT id, user_id, user_type, full_name, email, phone, created_at
		FROM user_profiles
		WHERE user_id = $1`

	var p domain.UserProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.UserType, &p.FullName, &p.Email, &p.Phone, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Update(ctx context.Context, profile *domain.UserProfile) error {
	// user_type deliberately not updatable; it is fixed at creation
	query := `
		UPDATE user_profiles
		SET full_name = $2, email = $3, phone = $4
		WHERE user_id = $1`

	result, err := r.db.Exec(ctx, query,
		profile.UserID,
		profile.FullName,
		profile.Email,
		profile.Phone,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
