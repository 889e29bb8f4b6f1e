package contentstore

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/rs/zerolog"
)

// CloudinaryStore implements ContentStore on top of the Cloudinary
// upload API.
type CloudinaryStore struct {
	client *cloudinary.Cloudinary
	logger zerolog.Logger
}

// NewCloudinaryStore creates a content store client from API credentials.
func NewCloudinaryStore(cloudName, apiKey, apiSecret string, logger zerolog.Logger) (*CloudinaryStore, error) {
	client, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}

	return &CloudinaryStore{
		client: client,
		logger: logger,
	}, nil
}

// Upload stores the contents of r under the given folder namespace.
func (s *CloudinaryStore) Upload(ctx context.Context, r io.Reader, folder string) (string, error) {
	return s.upload(ctx, r, folder)
}

// UploadFile stores a local file under the given folder namespace.
func (s *CloudinaryStore) UploadFile(ctx context.Context, path string, folder string) (string, error) {
	return s.upload(ctx, path, folder)
}

func (s *CloudinaryStore) upload(ctx context.Context, file interface{}, folder string) (string, error) {
	resp, err := s.client.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: folder,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("folder", folder).Msg("Failed to upload to content store")
		return "", fmt.Errorf("failed to upload to content store: %w", err)
	}
	if resp.Error.Message != "" {
		s.logger.Error().Str("folder", folder).Str("error", resp.Error.Message).Msg("Content store rejected upload")
		return "", fmt.Errorf("content store rejected upload: %s", resp.Error.Message)
	}

	s.logger.Info().Str("folder", folder).Str("url", resp.SecureURL).Msg("Uploaded to content store")
	return resp.SecureURL, nil
}
