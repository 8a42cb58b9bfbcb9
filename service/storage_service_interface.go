package service

import "context"

// StorageServiceInterface defines the contract for storing uploaded logo
// images and issuing their public URLs
type StorageServiceInterface interface {
	UploadLogo(ctx context.Context, filename, contentType string, data []byte) (string, error)
}
