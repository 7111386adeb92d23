package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aaryan/councilhub/internal/app/models"
	"github.com/aaryan/councilhub/internal/pkg/apperrors"
)

const uniqueViolationCode = "23505"

// RegistrationRepository handles database operations for member
// registrations. Each user may hold at most one registration; the
// submitted_by column carries a unique constraint.
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
	}
}

// Insert creates a registration in pending state. A second registration by
// the same user is rejected.
func (r *RegistrationRepository) Insert(ctx context.Context, registration *models.Registration) (int64, error) {
	query := `
		INSERT INTO registrations (name, branch, year, skills, interest_area, status, submitted_by, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		registration.Name,
		registration.Branch,
		registration.Year,
		registration.Skills,
		registration.InterestArea,
		registration.Status,
		registration.SubmittedBy,
		registration.SubmittedAt,
	).Scan(&registration.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return 0, apperrors.ErrAlreadyRegistered
		}
		return 0, err
	}
	return registration.ID, nil
}

// UpdateStatus moves a registration through the review workflow
func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	err := execAffectingOne(ctx, r.db, `UPDATE registrations SET status = $2 WHERE id = $1`, id, status)
	if errors.Is(err, apperrors.ErrContentNotFound) {
		return apperrors.ErrRegistrationNotFound
	}
	return err
}

// Delete removes a registration permanently
func (r *RegistrationRepository) Delete(ctx context.Context, id int64) error {
	err := execAffectingOne(ctx, r.db, `DELETE FROM registrations WHERE id = $1`, id)
	if errors.Is(err, apperrors.ErrContentNotFound) {
		return apperrors.ErrRegistrationNotFound
	}
	return err
}

const registrationColumns = `id, name, branch, year, skills, interest_area, status, submitted_by, submitted_at`

func scanRegistration(row pgx.Row) (models.Registration, error) {
	var reg models.Registration
	err := row.Scan(
		&reg.ID,
		&reg.Name,
		&reg.Branch,
		&reg.Year,
		&reg.Skills,
		&reg.InterestArea,
		&reg.Status,
		&reg.SubmittedBy,
		&reg.SubmittedAt,
	)
	return reg, err
}

// GetByID retrieves a registration by ID
func (r *RegistrationRepository) GetByID(ctx context.Context, id int64) (*models.Registration, error) {
	query := fmt.Sprintf(`SELECT %s FROM registrations WHERE id = $1`, registrationColumns)

	reg, err := scanRegistration(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return nil, err
	}
	return &reg, nil
}

// GetBySubmitter retrieves the registration a user has submitted, if any
func (r *RegistrationRepository) GetBySubmitter(ctx context.Context, userID int64) (*models.Registration, error) {
	query := fmt.Sprintf(`SELECT %s FROM registrations WHERE submitted_by = $1`, registrationColumns)

	reg, err := scanRegistration(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return nil, err
	}
	return &reg, nil
}

// GetAll retrieves every registration for admin review, newest first
func (r *RegistrationRepository) GetAll(ctx context.Context) ([]models.Registration, error) {
	query := fmt.Sprintf(`SELECT %s FROM registrations ORDER BY submitted_at DESC`, registrationColumns)

	return collectList(ctx, r.db, query, nil, func(rows pgx.Rows) (models.Registration, error) {
		return scanRegistration(rows)
	})
}
