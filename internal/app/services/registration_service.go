package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/jkta/athletereg/internal/app/models"
	"github.com/jkta/athletereg/internal/app/models/dto"
	"github.com/jkta/athletereg/internal/app/repositories"
	"github.com/jkta/athletereg/internal/config"
	"github.com/jkta/athletereg/internal/pkg/contentstore"
	"github.com/jkta/athletereg/internal/pkg/logger"
	"github.com/jkta/athletereg/internal/pkg/payment"
	"github.com/jkta/athletereg/internal/pkg/regno"
)

// RegistrationService handles athlete intake: document uploads, record
// creation and payment order placement.
type RegistrationService struct {
	registrationRepo repositories.IRegistrationRepository
	store            contentstore.ContentStore
	gateway          payment.Gateway
	regNoGen         *regno.Generator
	pricing          config.PricingConfig
	uploadFolder     string
}

// NewRegistrationService creates a new RegistrationService instance
func NewRegistrationService(
	registrationRepo repositories.IRegistrationRepository,
	store contentstore.ContentStore,
	gateway payment.Gateway,
	regNoGen *regno.Generator,
	pricing config.PricingConfig,
	uploadFolder string,
) *RegistrationService {
	return &RegistrationService{
		registrationRepo: registrationRepo,
		store:            store,
		gateway:          gateway,
		regNoGen:         regNoGen,
		pricing:          pricing,
		uploadFolder:     uploadFolder,
	}
}

// Register uploads the submitted documents, persists the registration
// and places a payment order for it. Documents are optional; a missing
// part leaves the corresponding URL unset.
func (s *RegistrationService) Register(
	ctx context.Context,
	req *dto.RegistrationRequest,
	files map[string]*multipart.FileHeader,
) (*dto.RegistrationOrderResponse, error) {
	urls := make(map[string]*string, len(dto.DocumentFieldNames))
	for _, field := range dto.DocumentFieldNames {
		header, ok := files[field]
		if !ok || header == nil {
			continue
		}
		url, err := s.uploadDocument(ctx, header)
		if err != nil {
			return nil, fmt.Errorf("failed to upload %s: %w", field, err)
		}
		urls[field] = &url
	}

	registration := &models.Registration{
		RegNo:                 s.regNoGen.Next(),
		AthleteName:           req.AthleteName,
		FatherName:            req.FatherName,
		MotherName:            req.MotherName,
		DOB:                   req.DOB,
		Gender:                req.Gender,
		District:              req.District,
		Mobile:                req.Mobile,
		Email:                 req.Email,
		AdharNumber:           req.AdharNumber,
		Address:               req.Address,
		Pin:                   req.Pin,
		PanNumber:             req.PanNumber,
		AcademyName:           req.AcademyName,
		CoachName:             req.CoachName,
		PhotoURL:              urls["photo"],
		CertificateURL:        urls["certificate"],
		ResidentCertificateURL: urls["residentCertificate"],
		AdharFrontURL:         urls["adharFrontPhoto"],
		AdharBackURL:          urls["adharBackPhoto"],
	}

	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	amount := s.amountFor(registration.Email)
	receipt := fmt.Sprintf("order_rcptid_%d", registration.ID)

	order, err := s.gateway.CreateOrder(ctx, amount, s.pricing.Currency, receipt)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment order: %w", err)
	}

	logger.Info().
		Int64("registrationId", registration.ID).
		Str("regNo", registration.RegNo).
		Str("orderId", order.ID).
		Int64("amount", order.Amount).
		Msg("Registration created and payment order placed")

	return &dto.RegistrationOrderResponse{
		Success:  true,
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		UserID:   registration.ID,
	}, nil
}

// GetRegistration retrieves a registration by ID
func (s *RegistrationService) GetRegistration(ctx context.Context, id int64) (*models.Registration, error) {
	return s.registrationRepo.GetByID(ctx, id)
}

// ListRegistrations retrieves registrations with pagination
func (s *RegistrationService) ListRegistrations(ctx context.Context, page, pageSize int) (*dto.RegistrationListResponse, error) {
	registrations, total, err := s.registrationRepo.GetAll(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}

	return &dto.RegistrationListResponse{
		Items: registrations,
		Pagination: dto.PaginationInfo{
			Page:       page,
			PageSize:   pageSize,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}, nil
}

// amountFor returns the order amount in the smallest currency unit.
// The exempt address pays the reduced amount.
func (s *RegistrationService) amountFor(email string) int64 {
	if strings.EqualFold(email, s.pricing.ExemptEmail) {
		return s.pricing.ExemptAmount
	}
	return s.pricing.StandardAmount
}

func (s *RegistrationService) uploadDocument(ctx context.Context, header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	return s.store.Upload(ctx, file, s.uploadFolder)
}
