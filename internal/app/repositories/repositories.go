package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all repository instances
type Repositories struct {
	Registrations IRegistrationRepository
	Enrollments   IEnrollmentRepository
	Admins        IAdminRepository
}

// NewRepositories creates all repositories backed by the given pool
func NewRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Registrations: NewRegistrationRepository(dbPool),
		Enrollments:   NewEnrollmentRepository(dbPool),
		Admins:        NewAdminRepository(dbPool),
	}
}
