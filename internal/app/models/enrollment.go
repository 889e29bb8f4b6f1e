package models

import (
	"time"
)

// Enrollment defines the enrollment record based on the 'enrollments'
// table. Created once per successfully paid registration, never mutated.
type Enrollment struct {
	ID               int64     `json:"id" db:"id" example:"1"`
	EnrollmentNumber string    `json:"enrollmentNumber" db:"enrollment_number" example:"JKTA1001"`
	RegistrationID   int64     `json:"registrationId" db:"registration_id" example:"1"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`

	Registration *Registration `json:"registration,omitempty"` // Relation, no db tag
}
