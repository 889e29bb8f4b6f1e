package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jkta/athletereg/internal/app/models"
	"github.com/jkta/athletereg/internal/pkg/apperrors"
	"github.com/jkta/athletereg/internal/pkg/idcard"
	"github.com/jkta/athletereg/internal/pkg/payment"
)

// fakeRegistrationRepo is an in-memory registration store.
type fakeRegistrationRepo struct {
	registrations map[int64]*models.Registration
	nextID        int64
	createErr     error
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{
		registrations: make(map[int64]*models.Registration),
		nextID:        1,
	}
}

func (f *fakeRegistrationRepo) Create(_ context.Context, registration *models.Registration) error {
	if f.createErr != nil {
		return f.createErr
	}
	registration.ID = f.nextID
	registration.CreatedAt = time.Now()
	registration.UpdatedAt = registration.CreatedAt
	f.nextID++
	f.registrations[registration.ID] = registration
	return nil
}

func (f *fakeRegistrationRepo) GetByID(_ context.Context, id int64) (*models.Registration, error) {
	reg, ok := f.registrations[id]
	if !ok {
		return nil, apperrors.ErrRegistrationNotFound
	}
	copied := *reg
	return &copied, nil
}

func (f *fakeRegistrationRepo) GetByRegNo(_ context.Context, regNo string) (*models.Registration, error) {
	for _, reg := range f.registrations {
		if reg.RegNo == regNo {
			copied := *reg
			return &copied, nil
		}
	}
	return nil, apperrors.ErrRegistrationNotFound
}

func (f *fakeRegistrationRepo) MarkPaid(_ context.Context, id int64) error {
	reg, ok := f.registrations[id]
	if !ok {
		return apperrors.ErrRegistrationNotFound
	}
	reg.Payment = true
	return nil
}

func (f *fakeRegistrationRepo) SetCardURL(_ context.Context, id int64, cardURL string) error {
	reg, ok := f.registrations[id]
	if !ok {
		return apperrors.ErrRegistrationNotFound
	}
	reg.CardURL = &cardURL
	return nil
}

func (f *fakeRegistrationRepo) GetAll(_ context.Context, page, pageSize int) ([]*models.Registration, int64, error) {
	var all []*models.Registration
	for _, reg := range f.registrations {
		copied := *reg
		all = append(all, &copied)
	}
	return all, int64(len(f.registrations)), nil
}

// fakeEnrollmentRepo mirrors the transactional numbering of the real
// repository: count plus base plus one, one enrollment per registration.
type fakeEnrollmentRepo struct {
	enrollments map[int64]*models.Enrollment
	nextID      int64
	createErr   error
}

func newFakeEnrollmentRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{
		enrollments: make(map[int64]*models.Enrollment),
		nextID:      1,
	}
}

func (f *fakeEnrollmentRepo) CreateNext(_ context.Context, registrationID int64) (*models.Enrollment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, exists := f.enrollments[registrationID]; exists {
		return nil, apperrors.ErrAlreadyEnrolled
	}
	enrollment := &models.Enrollment{
		ID:               f.nextID,
		EnrollmentNumber: fmt.Sprintf("JKTA%d", 1000+len(f.enrollments)+1),
		RegistrationID:   registrationID,
		CreatedAt:        time.Now(),
	}
	f.nextID++
	f.enrollments[registrationID] = enrollment
	return enrollment, nil
}

func (f *fakeEnrollmentRepo) GetByRegistrationID(_ context.Context, registrationID int64) (*models.Enrollment, error) {
	enrollment, ok := f.enrollments[registrationID]
	if !ok {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	return enrollment, nil
}

func (f *fakeEnrollmentRepo) GetAll(_ context.Context, page, pageSize int) ([]*models.Enrollment, int64, error) {
	var all []*models.Enrollment
	for _, enrollment := range f.enrollments {
		all = append(all, enrollment)
	}
	return all, int64(len(all)), nil
}

func (f *fakeEnrollmentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.enrollments)), nil
}

// fakeContentStore records uploads and hands back predictable URLs.
type fakeContentStore struct {
	uploads       []string // folders of stream uploads
	uploadedFiles []string // paths of file uploads
	uploadErr     error
	fileErr       error
}

func (f *fakeContentStore) Upload(_ context.Context, r io.Reader, folder string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploads = append(f.uploads, folder)
	return fmt.Sprintf("https://cdn.test/%s/doc%d", folder, len(f.uploads)), nil
}

func (f *fakeContentStore) UploadFile(_ context.Context, path, folder string) (string, error) {
	if f.fileErr != nil {
		return "", f.fileErr
	}
	f.uploadedFiles = append(f.uploadedFiles, path)
	return fmt.Sprintf("https://cdn.test/%s/card%d", folder, len(f.uploadedFiles)), nil
}

// fakeGateway records order creation calls.
type fakeGateway struct {
	amounts  []int64
	receipts []string
	err      error
}

func (f *fakeGateway) CreateOrder(_ context.Context, amount int64, currency, receipt string) (*payment.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.amounts = append(f.amounts, amount)
	f.receipts = append(f.receipts, receipt)
	return &payment.Order{
		ID:       fmt.Sprintf("order_%d", len(f.amounts)),
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	}, nil
}

// fakeRenderer records card generation and cleanup calls.
type fakeRenderer struct {
	generated   []idcard.Card
	deleted     []string // card IDs cleaned up
	generateErr error
}

func (f *fakeRenderer) Generate(card idcard.Card) (string, error) {
	if f.generateErr != nil {
		return "", f.generateErr
	}
	f.generated = append(f.generated, card)
	return "/tmp/cards/" + idcard.ArtifactName(card.ID), nil
}

func (f *fakeRenderer) DeleteFiles(id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeMailer records sent messages.
type fakeMailer struct {
	sent    []sentMail
	sendErr error
}

type sentMail struct {
	to             string
	subject        string
	attachmentName string
	attachmentPath string
}

func (f *fakeMailer) SendWithAttachment(toEmail, subject, textBody, htmlBody, attachmentName, attachmentPath string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentMail{
		to:             toEmail,
		subject:        subject,
		attachmentName: attachmentName,
		attachmentPath: attachmentPath,
	})
	return nil
}
