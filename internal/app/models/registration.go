package models

import (
	"time"
)

// Registration defines the applicant record based on the 'registrations'
// table. One row per applicant; the payment flag is flipped exactly once
// by the fulfillment flow after signature verification.
type Registration struct {
	ID          int64  `json:"id" db:"id" example:"1"`
	RegNo       string `json:"regNo" db:"reg_no" example:"ATH1714482000000"` // Unique registration number, assigned at creation
	AthleteName string `json:"athleteName" db:"athlete_name" example:"Arjun Sharma"`
	FatherName  string `json:"fatherName" db:"father_name" example:"Rakesh Sharma"`
	MotherName  string `json:"motherName" db:"mother_name" example:"Sunita Sharma"`
	DOB         string `json:"dob" db:"dob" example:"2004-03-12"`
	Gender      string `json:"gender" db:"gender" example:"Male"`
	District    string `json:"district" db:"district" example:"Jammu"`
	Mobile      string `json:"mob" db:"mobile" example:"9419100000"`
	Email       string `json:"email" db:"email" example:"arjun@example.com"`
	AdharNumber string `json:"adharNumber" db:"adhar_number" example:"123412341234"`
	Address     string `json:"address" db:"address" example:"12 Residency Road, Jammu"`
	Pin         string `json:"pin" db:"pin" example:"180001"`
	PanNumber   string `json:"panNumber,omitempty" db:"pan_number"`
	AcademyName string `json:"academyName,omitempty" db:"academy_name"`
	CoachName   string `json:"coachName,omitempty" db:"coach_name"`

	// Document references (content store URLs, nullable)
	PhotoURL               *string `json:"photoUrl,omitempty" db:"photo_url"`
	CertificateURL         *string `json:"certificateUrl,omitempty" db:"certificate_url"`
	ResidentCertificateURL *string `json:"residentCertificateUrl,omitempty" db:"resident_certificate_url"`
	AdharFrontURL          *string `json:"adharFrontUrl,omitempty" db:"adhar_front_url"`
	AdharBackURL           *string `json:"adharBackUrl,omitempty" db:"adhar_back_url"`

	// Payment is false until a verified gateway callback marks it paid.
	Payment bool `json:"payment" db:"payment" example:"false"`
	// CardURL is the content-store URL of the rendered ID card, set at
	// fulfillment. Lets duplicate callbacks answer without re-rendering.
	CardURL *string `json:"cardUrl,omitempty" db:"card_url"`

	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`
}
