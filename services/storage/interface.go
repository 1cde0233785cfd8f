package storage

import (
	"context"
	"io"
)

// StorageService stores listing images and returns a retrievable URL.
type StorageService interface {
	UploadImage(ctx context.Context, file io.Reader) (string, error)
}
