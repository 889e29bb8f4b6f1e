// Package idcard produces the printable membership card artifact for a
// paid registration.
package idcard

import "fmt"

// Card holds the fields printed on a membership card.
type Card struct {
	ID           string // registration number, keys the artifact filename
	EnrollmentNo string
	Type         string
	Name         string
	Parentage    string
	Gender       string
	Valid        string // formatted expiry date
	District     string
	DOB          string
}

// Renderer defines the interface for the card rendering component.
type Renderer interface {
	// Generate renders the card and returns the path of the written
	// artifact, named "<id>-identity-card.pdf".
	Generate(card Card) (string, error)

	// DeleteFiles removes all local artifacts for the given registration
	// number. It is idempotent.
	DeleteFiles(id string) error
}

// ArtifactName returns the deterministic artifact filename for a
// registration number.
func ArtifactName(id string) string {
	return fmt.Sprintf("%s-identity-card.pdf", id)
}
