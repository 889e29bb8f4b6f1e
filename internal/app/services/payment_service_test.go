package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkta/athletereg/internal/app/models"
	"github.com/jkta/athletereg/internal/app/models/dto"
	"github.com/jkta/athletereg/internal/pkg/apperrors"
	"github.com/jkta/athletereg/internal/pkg/idcard"
	"github.com/jkta/athletereg/internal/pkg/payment"
)

const testKeySecret = "rzp_test_secret"

type paymentFixture struct {
	svc      *PaymentService
	regRepo  *fakeRegistrationRepo
	enrRepo  *fakeEnrollmentRepo
	store    *fakeContentStore
	renderer *fakeRenderer
	mailer   *fakeMailer
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()
	f := &paymentFixture{
		regRepo:  newFakeRegistrationRepo(),
		enrRepo:  newFakeEnrollmentRepo(),
		store:    &fakeContentStore{},
		renderer: &fakeRenderer{},
		mailer:   &fakeMailer{},
	}
	f.svc = NewPaymentService(f.regRepo, f.enrRepo, f.store, f.renderer, f.mailer, testKeySecret, "idcards")
	return f
}

func (f *paymentFixture) seedRegistration(t *testing.T) *models.Registration {
	t.Helper()
	reg := &models.Registration{
		RegNo:       "ATH1700000000000",
		AthleteName: "Arjun Kumar",
		FatherName:  "Rajesh Kumar",
		MotherName:  "Sunita Devi",
		DOB:         "2005-04-12",
		Gender:      "Male",
		District:    "Srinagar",
		Mobile:      "9876543210",
		Email:       "arjun@example.com",
		AdharNumber: "123412341234",
		Address:     "12 Lake Road",
		Pin:         "190001",
	}
	require.NoError(t, f.regRepo.Create(context.Background(), reg))
	return reg
}

func signedCallback(registrationID int64) *dto.PaymentVerificationRequest {
	orderID := "order_test_1"
	paymentID := "pay_test_1"
	return &dto.PaymentVerificationRequest{
		RazorpayOrderID:   orderID,
		RazorpayPaymentID: paymentID,
		RazorpaySignature: payment.Signature(orderID, paymentID, testKeySecret),
		UserID:            registrationID,
	}
}

func TestVerifyAndFulfillHappyPath(t *testing.T) {
	f := newPaymentFixture(t)
	reg := f.seedRegistration(t)

	resp, err := f.svc.VerifyAndFulfill(context.Background(), signedCallback(reg.ID))
	require.NoError(t, err)

	assert.Equal(t, "Email Sent successfully", resp.Message)
	assert.True(t, resp.Success)
	assert.Equal(t, "pay_test_1", resp.PaymentID)
	assert.Equal(t, "arjun@example.com", resp.Email)
	assert.Equal(t, reg.RegNo, resp.RegNo)
	assert.Equal(t, "Arjun Kumar", resp.Name)
	assert.Contains(t, resp.PDFURL, "https://cdn.test/idcards/")

	stored, err := f.regRepo.GetByID(context.Background(), reg.ID)
	require.NoError(t, err)
	assert.True(t, stored.Payment)
	require.NotNil(t, stored.CardURL)
	assert.Equal(t, resp.PDFURL, *stored.CardURL)

	enrollment, err := f.enrRepo.GetByRegistrationID(context.Background(), reg.ID)
	require.NoError(t, err)
	assert.Equal(t, "JKTA1001", enrollment.EnrollmentNumber)

	require.Len(t, f.renderer.generated, 1)
	card := f.renderer.generated[0]
	assert.Equal(t, reg.RegNo, card.ID)
	assert.Equal(t, "JKTA1001", card.EnrollmentNo)
	assert.Equal(t, "A", card.Type)

	require.Len(t, f.mailer.sent, 1)
	mail := f.mailer.sent[0]
	assert.Equal(t, "arjun@example.com", mail.to)
	assert.Equal(t, idcard.ArtifactName(reg.RegNo), mail.attachmentName)

	// Local artifacts cleaned up after delivery.
	assert.Equal(t, []string{reg.RegNo}, f.renderer.deleted)
}

func TestVerifyAndFulfillEnrollmentNumbersIncrement(t *testing.T) {
	f := newPaymentFixture(t)

	for i := 0; i < 3; i++ {
		reg := f.seedRegistration(t)
		callback := signedCallback(reg.ID)
		_, err := f.svc.VerifyAndFulfill(context.Background(), callback)
		require.NoError(t, err)
	}

	numbers := make(map[string]bool)
	for _, enrollment := range f.enrRepo.enrollments {
		numbers[enrollment.EnrollmentNumber] = true
	}
	assert.Equal(t, map[string]bool{
		"JKTA1001": true,
		"JKTA1002": true,
		"JKTA1003": true,
	}, numbers)
}

func TestVerifyAndFulfillRejectsBadSignature(t *testing.T) {
	f := newPaymentFixture(t)
	reg := f.seedRegistration(t)

	callback := signedCallback(reg.ID)
	callback.RazorpaySignature = "0000000000000000000000000000000000000000000000000000000000000000"

	_, err := f.svc.VerifyAndFulfill(context.Background(), callback)
	require.ErrorIs(t, err, apperrors.ErrSignatureMismatch)

	// No side effects on rejection.
	stored, err := f.regRepo.GetByID(context.Background(), reg.ID)
	require.NoError(t, err)
	assert.False(t, stored.Payment)
	assert.Empty(t, f.enrRepo.enrollments)
	assert.Empty(t, f.renderer.generated)
	assert.Empty(t, f.mailer.sent)
}

func TestVerifyAndFulfillUnknownRegistration(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.svc.VerifyAndFulfill(context.Background(), signedCallback(404))
	require.ErrorIs(t, err, apperrors.ErrRegistrationNotFound)
}

func TestVerifyAndFulfillDuplicateCallback(t *testing.T) {
	f := newPaymentFixture(t)
	reg := f.seedRegistration(t)

	first, err := f.svc.VerifyAndFulfill(context.Background(), signedCallback(reg.ID))
	require.NoError(t, err)

	second, err := f.svc.VerifyAndFulfill(context.Background(), signedCallback(reg.ID))
	require.NoError(t, err)

	assert.Equal(t, first.PDFURL, second.PDFURL)
	assert.Equal(t, first.RegNo, second.RegNo)

	// The repeat does not enroll, render or mail again.
	assert.Len(t, f.enrRepo.enrollments, 1)
	assert.Len(t, f.renderer.generated, 1)
	assert.Len(t, f.mailer.sent, 1)
}

func TestVerifyAndFulfillCleansUpWhenEmailFails(t *testing.T) {
	f := newPaymentFixture(t)
	reg := f.seedRegistration(t)
	f.mailer.sendErr = assert.AnError

	_, err := f.svc.VerifyAndFulfill(context.Background(), signedCallback(reg.ID))
	require.Error(t, err)

	// Rendered artifacts are removed even though delivery failed.
	assert.Equal(t, []string{reg.RegNo}, f.renderer.deleted)
}

func TestVerifyAndFulfillRenderFailureSkipsUploadAndMail(t *testing.T) {
	f := newPaymentFixture(t)
	reg := f.seedRegistration(t)
	f.renderer.generateErr = assert.AnError

	_, err := f.svc.VerifyAndFulfill(context.Background(), signedCallback(reg.ID))
	require.Error(t, err)

	assert.Empty(t, f.store.uploadedFiles)
	assert.Empty(t, f.mailer.sent)
	// Nothing rendered, nothing to clean up.
	assert.Empty(t, f.renderer.deleted)
}
