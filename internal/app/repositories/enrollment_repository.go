package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jkta/athletereg/internal/app/models"
	"github.com/jkta/athletereg/internal/pkg/apperrors"
)

// Enrollment numbers start above this base offset.
const enrollmentNumberBase = 1000

// EnrollmentNumberPrefix is prepended to every enrollment number.
const EnrollmentNumberPrefix = "JKTA"

// IEnrollmentRepository defines data access for enrollments
type IEnrollmentRepository interface {
	// CreateNext allocates the next enrollment number and creates the
	// record for the given registration, atomically.
	CreateNext(ctx context.Context, registrationID int64) (*models.Enrollment, error)
	GetByRegistrationID(ctx context.Context, registrationID int64) (*models.Enrollment, error)
	GetAll(ctx context.Context, page, pageSize int) ([]*models.Enrollment, int64, error)
	Count(ctx context.Context) (int64, error)
}

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// CreateNext counts existing enrollments and inserts the next record in
// one transaction. The table lock serializes concurrent allocations so
// numbers are neither duplicated nor skipped; the unique constraint on
// registration_id rejects a second enrollment for the same registration.
func (r *EnrollmentRepository) CreateNext(ctx context.Context, registrationID int64) (*models.Enrollment, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `LOCK TABLE enrollments IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return nil, fmt.Errorf("failed to lock enrollments: %w", err)
	}

	var count int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM enrollments`).Scan(&count); err != nil {
		return nil, fmt.Errorf("error counting enrollments: %w", err)
	}

	enrollment := &models.Enrollment{
		EnrollmentNumber: fmt.Sprintf("%s%d", EnrollmentNumberPrefix, enrollmentNumberBase+count+1),
		RegistrationID:   registrationID,
	}

	query := `
		INSERT INTO enrollments (enrollment_number, registration_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err = tx.QueryRow(ctx, query, enrollment.EnrollmentNumber, enrollment.RegistrationID).
		Scan(&enrollment.ID, &enrollment.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrAlreadyEnrolled
		}
		return nil, fmt.Errorf("error creating enrollment: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return enrollment, nil
}

// GetByRegistrationID retrieves the enrollment for a registration
func (r *EnrollmentRepository) GetByRegistrationID(ctx context.Context, registrationID int64) (*models.Enrollment, error) {
	query := `
		SELECT id, enrollment_number, registration_id, created_at
		FROM enrollments
		WHERE registration_id = $1
	`

	var enrollment models.Enrollment
	err := r.db.QueryRow(ctx, query, registrationID).Scan(
		&enrollment.ID,
		&enrollment.EnrollmentNumber,
		&enrollment.RegistrationID,
		&enrollment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return &enrollment, nil
}

// GetAll retrieves enrollments ordered by creation time, newest first,
// with 0-based pagination.
func (r *EnrollmentRepository) GetAll(ctx context.Context, page, pageSize int) ([]*models.Enrollment, int64, error) {
	total, err := r.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, enrollment_number, registration_id, created_at
		FROM enrollments
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, pageSize, page*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		if err := rows.Scan(
			&enrollment.ID,
			&enrollment.EnrollmentNumber,
			&enrollment.RegistrationID,
			&enrollment.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		enrollments = append(enrollments, &enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return enrollments, total, nil
}

// Count returns the number of enrollment records
func (r *EnrollmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM enrollments`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting enrollments: %w", err)
	}
	return count, nil
}
