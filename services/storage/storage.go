package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const uploadFolder = "motorent/cars"

// CloudinaryStorageService implements StorageService using Cloudinary.
type CloudinaryStorageService struct {
	client *cloudinary.Cloudinary
}

// NewCloudinaryStorageService initializes the Cloudinary client from the
// given credentials.
func NewCloudinaryStorageService(cloudName, apiKey, apiSecret string) (*CloudinaryStorageService, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStorageService{client: cld}, nil
}

// UploadImage uploads a listing image and returns its secure URL.
func (s *CloudinaryStorageService) UploadImage(ctx context.Context, file io.Reader) (string, error) {
	resp, err := s.client.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: uploadFolder,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if resp.SecureURL == "" {
		return "", fmt.Errorf("upload returned no URL: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}
