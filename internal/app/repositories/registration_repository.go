package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jkta/athletereg/internal/app/models"
	"github.com/jkta/athletereg/internal/pkg/apperrors"
)

// IRegistrationRepository defines data access for registrations
type IRegistrationRepository interface {
	Create(ctx context.Context, registration *models.Registration) error
	GetByID(ctx context.Context, id int64) (*models.Registration, error)
	GetByRegNo(ctx context.Context, regNo string) (*models.Registration, error)
	MarkPaid(ctx context.Context, id int64) error
	SetCardURL(ctx context.Context, id int64, cardURL string) error
	GetAll(ctx context.Context, page, pageSize int) ([]*models.Registration, int64, error)
}

const registrationColumns = `
	id, reg_no, athlete_name, father_name, mother_name, dob, gender, district,
	mobile, email, adhar_number, address, pin, pan_number, academy_name, coach_name,
	photo_url, certificate_url, resident_certificate_url, adhar_front_url, adhar_back_url,
	payment, card_url, created_at, updated_at`

// RegistrationRepository handles database operations for registrations
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
	}
}

// Create inserts a new registration and fills in its generated fields
func (r *RegistrationRepository) Create(ctx context.Context, registration *models.Registration) error {
	query := `
		INSERT INTO registrations (
			reg_no, athlete_name, father_name, mother_name, dob, gender, district,
			mobile, email, adhar_number, address, pin, pan_number, academy_name, coach_name,
			photo_url, certificate_url, resident_certificate_url, adhar_front_url, adhar_back_url
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id, payment, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		registration.RegNo,
		registration.AthleteName,
		registration.FatherName,
		registration.MotherName,
		registration.DOB,
		registration.Gender,
		registration.District,
		registration.Mobile,
		registration.Email,
		registration.AdharNumber,
		registration.Address,
		registration.Pin,
		registration.PanNumber,
		registration.AcademyName,
		registration.CoachName,
		registration.PhotoURL,
		registration.CertificateURL,
		registration.ResidentCertificateURL,
		registration.AdharFrontURL,
		registration.AdharBackURL,
	).Scan(&registration.ID, &registration.Payment, &registration.CreatedAt, &registration.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating registration: %w", err)
	}

	return nil
}

// GetByID retrieves a registration by its database ID
func (r *RegistrationRepository) GetByID(ctx context.Context, id int64) (*models.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// GetByRegNo retrieves a registration by its registration number
func (r *RegistrationRepository) GetByRegNo(ctx context.Context, regNo string) (*models.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE reg_no = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, regNo))
}

func (r *RegistrationRepository) scanOne(row pgx.Row) (*models.Registration, error) {
	var reg models.Registration
	err := row.Scan(
		&reg.ID,
		&reg.RegNo,
		&reg.AthleteName,
		&reg.FatherName,
		&reg.MotherName,
		&reg.DOB,
		&reg.Gender,
		&reg.District,
		&reg.Mobile,
		&reg.Email,
		&reg.AdharNumber,
		&reg.Address,
		&reg.Pin,
		&reg.PanNumber,
		&reg.AcademyName,
		&reg.CoachName,
		&reg.PhotoURL,
		&reg.CertificateURL,
		&reg.ResidentCertificateURL,
		&reg.AdharFrontURL,
		&reg.AdharBackURL,
		&reg.Payment,
		&reg.CardURL,
		&reg.CreatedAt,
		&reg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("error retrieving registration: %w", err)
	}

	return &reg, nil
}

// MarkPaid sets the payment flag on a registration
func (r *RegistrationRepository) MarkPaid(ctx context.Context, id int64) error {
	query := `UPDATE registrations SET payment = TRUE, updated_at = NOW() WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error marking registration paid: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRegistrationNotFound
	}

	return nil
}

// SetCardURL records the content-store URL of the rendered ID card
func (r *RegistrationRepository) SetCardURL(ctx context.Context, id int64, cardURL string) error {
	query := `UPDATE registrations SET card_url = $1, updated_at = NOW() WHERE id = $2`

	cmdTag, err := r.db.Exec(ctx, query, cardURL, id)
	if err != nil {
		return fmt.Errorf("error setting card URL: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRegistrationNotFound
	}

	return nil
}

// GetAll retrieves registrations ordered by creation time, newest first,
// with 0-based pagination. Returns the page and the total row count.
func (r *RegistrationRepository) GetAll(ctx context.Context, page, pageSize int) ([]*models.Registration, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM registrations`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting registrations: %w", err)
	}

	query := `SELECT ` + registrationColumns + `
		FROM registrations
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, pageSize, page*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing registrations: %w", err)
	}
	defer rows.Close()

	var registrations []*models.Registration
	for rows.Next() {
		var reg models.Registration
		if err := rows.Scan(
			&reg.ID,
			&reg.RegNo,
			&reg.AthleteName,
			&reg.FatherName,
			&reg.MotherName,
			&reg.DOB,
			&reg.Gender,
			&reg.District,
			&reg.Mobile,
			&reg.Email,
			&reg.AdharNumber,
			&reg.Address,
			&reg.Pin,
			&reg.PanNumber,
			&reg.AcademyName,
			&reg.CoachName,
			&reg.PhotoURL,
			&reg.CertificateURL,
			&reg.ResidentCertificateURL,
			&reg.AdharFrontURL,
			&reg.AdharBackURL,
			&reg.Payment,
			&reg.CardURL,
			&reg.CreatedAt,
			&reg.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		registrations = append(registrations, &reg)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return registrations, total, nil
}
