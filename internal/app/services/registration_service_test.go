package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkta/athletereg/internal/app/models/dto"
	"github.com/jkta/athletereg/internal/config"
	"github.com/jkta/athletereg/internal/pkg/regno"
)

func testPricing() config.PricingConfig {
	return config.PricingConfig{
		StandardAmount: 30000,
		ExemptAmount:   100,
		ExemptEmail:    "info@jkta.in",
		Currency:       "INR",
	}
}

func validIntakeRequest() *dto.RegistrationRequest {
	return &dto.RegistrationRequest{
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
}

// multipartFiles builds real multipart file headers for the given part names.
func multipartFiles(t *testing.T, names ...string) map[string]*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, name := range names {
		part, err := writer.CreateFormFile(name, name+".jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes for " + name))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	files := make(map[string]*multipart.FileHeader, len(names))
	for name, headers := range form.File {
		require.NotEmpty(t, headers)
		files[name] = headers[0]
	}
	return files
}

func newRegistrationService(repo *fakeRegistrationRepo, store *fakeContentStore, gateway *fakeGateway) *RegistrationService {
	return NewRegistrationService(repo, store, gateway, regno.NewGenerator(), testPricing(), "uploads")
}

func TestRegisterCreatesRecordAndOrder(t *testing.T) {
	repo := newFakeRegistrationRepo()
	store := &fakeContentStore{}
	gateway := &fakeGateway{}
	svc := newRegistrationService(repo, store, gateway)

	files := multipartFiles(t, dto.DocumentFieldNames...)
	resp, err := svc.Register(context.Background(), validIntakeRequest(), files)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "order_1", resp.OrderID)
	assert.Equal(t, int64(30000), resp.Amount)
	assert.Equal(t, "INR", resp.Currency)
	require.Equal(t, int64(1), resp.UserID)

	reg, err := repo.GetByID(context.Background(), resp.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Arjun Kumar", reg.AthleteName)
	assert.True(t, strings.HasPrefix(reg.RegNo, regno.Prefix))
	assert.False(t, reg.Payment)

	// All five documents uploaded and recorded.
	assert.Len(t, store.uploads, 5)
	require.NotNil(t, reg.PhotoURL)
	require.NotNil(t, reg.CertificateURL)
	require.NotNil(t, reg.ResidentCertificateURL)
	require.NotNil(t, reg.AdharFrontURL)
	require.NotNil(t, reg.AdharBackURL)
	assert.Contains(t, *reg.PhotoURL, "https://cdn.test/uploads/")

	require.Len(t, gateway.receipts, 1)
	assert.Equal(t, "order_rcptid_1", gateway.receipts[0])
}

func TestRegisterWithoutDocuments(t *testing.T) {
	repo := newFakeRegistrationRepo()
	store := &fakeContentStore{}
	svc := newRegistrationService(repo, store, &fakeGateway{})

	resp, err := svc.Register(context.Background(), validIntakeRequest(), nil)
	require.NoError(t, err)

	reg, err := repo.GetByID(context.Background(), resp.UserID)
	require.NoError(t, err)
	assert.Nil(t, reg.PhotoURL)
	assert.Nil(t, reg.AdharBackURL)
	assert.Empty(t, store.uploads)
}

func TestRegisterExemptEmailPaysReducedAmount(t *testing.T) {
	repo := newFakeRegistrationRepo()
	gateway := &fakeGateway{}
	svc := newRegistrationService(repo, &fakeContentStore{}, gateway)

	req := validIntakeRequest()
	req.Email = "info@jkta.in"

	resp, err := svc.Register(context.Background(), req, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.Amount)

	// Case-insensitive match on the exempt address.
	req2 := validIntakeRequest()
	req2.Email = "INFO@JKTA.IN"
	resp2, err := svc.Register(context.Background(), req2, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(100), resp2.Amount)
}

func TestRegisterUploadFailureAbortsIntake(t *testing.T) {
	repo := newFakeRegistrationRepo()
	store := &fakeContentStore{uploadErr: assert.AnError}
	svc := newRegistrationService(repo, store, &fakeGateway{})

	files := multipartFiles(t, "photo")
	_, err := svc.Register(context.Background(), validIntakeRequest(), files)
	require.Error(t, err)

	// Nothing persisted when a document upload fails.
	assert.Empty(t, repo.registrations)
}

func TestRegisterGatewayFailure(t *testing.T) {
	repo := newFakeRegistrationRepo()
	gateway := &fakeGateway{err: assert.AnError}
	svc := newRegistrationService(repo, &fakeContentStore{}, gateway)

	_, err := svc.Register(context.Background(), validIntakeRequest(), nil)
	require.Error(t, err)
}
