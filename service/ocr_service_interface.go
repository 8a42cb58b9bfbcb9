package service

import "context"

// OCRServiceInterface defines the contract for extracting text from an
// uploaded business-card image
type OCRServiceInterface interface {
	ExtractText(ctx context.Context, imagePath string) (string, error)
}
