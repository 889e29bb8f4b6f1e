package services

import (
	"context"
	"fmt"

	"github.com/jkta/athletereg/internal/app/models"
	"github.com/jkta/athletereg/internal/app/models/dto"
	"github.com/jkta/athletereg/internal/app/repositories"
	"github.com/jkta/athletereg/internal/pkg/apperrors"
	"github.com/jkta/athletereg/internal/pkg/contentstore"
	"github.com/jkta/athletereg/internal/pkg/email"
	"github.com/jkta/athletereg/internal/pkg/helpers"
	"github.com/jkta/athletereg/internal/pkg/idcard"
	"github.com/jkta/athletereg/internal/pkg/logger"
	"github.com/jkta/athletereg/internal/pkg/payment"
)

const (
	cardEmailSubject  = "Here is your ID card from JKTA"
	cardEmailTextBody = "Please find your id card attatched below"
	cardEmailHTMLBody = "<p>Please find your id card attatched below</p>"
)

// PaymentService handles payment verification and fulfillment: once a
// callback checks out the registration is marked paid, enrolled, its ID
// card rendered, uploaded and mailed to the athlete.
type PaymentService struct {
	registrationRepo repositories.IRegistrationRepository
	enrollmentRepo   repositories.IEnrollmentRepository
	store            contentstore.ContentStore
	renderer         idcard.Renderer
	mailer           email.Mailer
	keySecret        string
	cardFolder       string
}

// NewPaymentService creates a new PaymentService instance
func NewPaymentService(
	registrationRepo repositories.IRegistrationRepository,
	enrollmentRepo repositories.IEnrollmentRepository,
	store contentstore.ContentStore,
	renderer idcard.Renderer,
	mailer email.Mailer,
	keySecret string,
	cardFolder string,
) *PaymentService {
	return &PaymentService{
		registrationRepo: registrationRepo,
		enrollmentRepo:   enrollmentRepo,
		store:            store,
		renderer:         renderer,
		mailer:           mailer,
		keySecret:        keySecret,
		cardFolder:       cardFolder,
	}
}

// VerifyAndFulfill checks the gateway signature for a payment callback
// and, on success, runs the fulfillment pipeline. A callback for a
// registration that is already paid returns the stored result without
// repeating any side effect.
func (s *PaymentService) VerifyAndFulfill(ctx context.Context, req *dto.PaymentVerificationRequest) (*dto.FulfillmentResponse, error) {
	if !payment.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, s.keySecret) {
		logger.Warn().
			Str("orderId", req.RazorpayOrderID).
			Str("paymentId", req.RazorpayPaymentID).
			Int64("registrationId", req.UserID).
			Msg("Payment signature mismatch")
		return nil, apperrors.ErrSignatureMismatch
	}

	registration, err := s.registrationRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load registration: %w", err)
	}

	if registration.Payment {
		logger.Info().
			Int64("registrationId", registration.ID).
			Str("paymentId", req.RazorpayPaymentID).
			Msg("Duplicate payment callback, returning stored result")
		return s.storedResponse(registration, req.RazorpayPaymentID), nil
	}

	if err := s.registrationRepo.MarkPaid(ctx, registration.ID); err != nil {
		return nil, fmt.Errorf("failed to mark registration paid: %w", err)
	}
	registration.Payment = true

	enrollment, err := s.enrollmentRepo.CreateNext(ctx, registration.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create enrollment: %w", err)
	}

	cardURL, err := s.deliverCard(ctx, registration, enrollment)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int64("registrationId", registration.ID).
		Str("enrollmentNumber", enrollment.EnrollmentNumber).
		Str("email", registration.Email).
		Msg("Payment fulfilled and ID card delivered")

	return &dto.FulfillmentResponse{
		Message:   "Email Sent successfully",
		Success:   true,
		PaymentID: req.RazorpayPaymentID,
		Email:     registration.Email,
		RegNo:     registration.RegNo,
		Name:      registration.AthleteName,
		PDFURL:    cardURL,
	}, nil
}

// deliverCard renders the ID card, uploads it, records its URL and
// mails it to the athlete. Local artifacts are removed once rendering
// succeeded, even when a later step fails.
func (s *PaymentService) deliverCard(ctx context.Context, registration *models.Registration, enrollment *models.Enrollment) (string, error) {
	card := idcard.Card{
		ID:           registration.RegNo,
		EnrollmentNo: enrollment.EnrollmentNumber,
		Type:         "A",
		Name:         registration.AthleteName,
		Parentage:    registration.FatherName,
		Gender:       registration.Gender,
		Valid:        helpers.ExpiryDate(registration.CreatedAt),
		District:     registration.District,
		DOB:          registration.DOB,
	}

	path, err := s.renderer.Generate(card)
	if err != nil {
		return "", fmt.Errorf("failed to render ID card: %w", err)
	}
	defer func() {
		if err := s.renderer.DeleteFiles(registration.RegNo); err != nil {
			logger.Warn().
				Err(err).
				Str("regNo", registration.RegNo).
				Msg("Failed to remove local card artifacts")
		}
	}()

	cardURL, err := s.store.UploadFile(ctx, path, s.cardFolder)
	if err != nil {
		return "", fmt.Errorf("failed to upload ID card: %w", err)
	}

	if err := s.registrationRepo.SetCardURL(ctx, registration.ID, cardURL); err != nil {
		return "", fmt.Errorf("failed to store card URL: %w", err)
	}
	registration.CardURL = &cardURL

	err = s.mailer.SendWithAttachment(
		registration.Email,
		cardEmailSubject,
		cardEmailTextBody,
		cardEmailHTMLBody,
		idcard.ArtifactName(registration.RegNo),
		path,
	)
	if err != nil {
		return "", fmt.Errorf("failed to send ID card email: %w", err)
	}

	return cardURL, nil
}

func (s *PaymentService) storedResponse(registration *models.Registration, paymentID string) *dto.FulfillmentResponse {
	var cardURL string
	if registration.CardURL != nil {
		cardURL = *registration.CardURL
	}
	return &dto.FulfillmentResponse{
		Message:   "Email Sent successfully",
		Success:   true,
		PaymentID: paymentID,
		Email:     registration.Email,
		RegNo:     registration.RegNo,
		Name:      registration.AthleteName,
		PDFURL:    cardURL,
	}
}

// ListEnrollments retrieves enrollments with pagination
func (s *PaymentService) ListEnrollments(ctx context.Context, page, pageSize int) ([]*models.Enrollment, int64, error) {
	return s.enrollmentRepo.GetAll(ctx, page, pageSize)
}
