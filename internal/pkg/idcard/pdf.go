package idcard

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog"
)

// PDFRenderer implements Renderer by writing card PDFs into a local
// work directory.
type PDFRenderer struct {
	workDir string
	logger  zerolog.Logger
}

// NewPDFRenderer creates a renderer writing into workDir, creating the
// directory if needed.
func NewPDFRenderer(workDir string, logger zerolog.Logger) (*PDFRenderer, error) {
	if err := os.MkdirAll(workDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create card work directory %s: %w", workDir, err)
	}

	return &PDFRenderer{
		workDir: workDir,
		logger:  logger,
	}, nil
}

// Generate renders the membership card and returns the artifact path.
func (r *PDFRenderer) Generate(card Card) (string, error) {
	pdf := fpdf.New("L", "mm", "A5", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, "J&K Taekwondo Association", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, "Athlete Identity Card", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	rows := []struct {
		label, value string
	}{
		{"Registration No", card.ID},
		{"Enrollment No", card.EnrollmentNo},
		{"Type", card.Type},
		{"Name", card.Name},
		{"Parentage", card.Parentage},
		{"Gender", card.Gender},
		{"Date of Birth", card.DOB},
		{"District", card.District},
		{"Valid Upto", card.Valid},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(45, 7, row.label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 7, row.value, "", 1, "L", false, 0, "")
	}

	path := filepath.Join(r.workDir, ArtifactName(card.ID))
	if err := pdf.OutputFileAndClose(path); err != nil {
		r.logger.Error().Err(err).Str("path", path).Msg("Failed to write card artifact")
		return "", fmt.Errorf("failed to write card artifact: %w", err)
	}

	r.logger.Info().Str("path", path).Str("enrollmentNo", card.EnrollmentNo).Msg("Card artifact rendered")
	return path, nil
}

// DeleteFiles removes all local artifacts for the given registration
// number. Missing files are not an error.
func (r *PDFRenderer) DeleteFiles(id string) error {
	if id == "" {
		return nil
	}

	matches, err := filepath.Glob(filepath.Join(r.workDir, id+"-*"))
	if err != nil {
		return fmt.Errorf("failed to list card artifacts: %w", err)
	}

	for _, path := range matches {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			r.logger.Error().Err(err).Str("path", path).Msg("Failed to delete card artifact")
			return fmt.Errorf("failed to delete card artifact: %w", err)
		}
	}

	return nil
}
