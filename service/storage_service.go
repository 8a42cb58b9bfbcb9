package service

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// StorageService stores uploaded logos in a Google Drive folder and makes
// them publicly readable
type StorageService struct {
	client   *drive.Service
	folderID string
}

// NewStorageService creates a new StorageService instance.
// credentialsPath should be the path to the Service Account JSON file;
// folderID is the Drive folder that receives the uploads.
func NewStorageService(credentialsPath, folderID string) (*StorageService, error) {
	ctx := context.Background()

	// option.WithCredentialsFile automatically handles Service Account authentication
	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &StorageService{
		client:   driveService,
		folderID: folderID,
	}, nil
}

// Ensure StorageService implements StorageServiceInterface
var _ StorageServiceInterface = (*StorageService)(nil)

// UploadLogo uploads the logo bytes, shares the file with anyone holding
// the link, and returns the public URL
func (s *StorageService) UploadLogo(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	meta := &drive.File{Name: filename}
	if s.folderID != "" {
		meta.Parents = []string{s.folderID}
	}

	created, err := s.client.Files.Create(meta).
		Media(bytes.NewReader(data), googleapi.ContentType(contentType)).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload logo: %w", err)
	}

	// Anyone with the link can view; the URL ends up inside an email body.
	perm := &drive.Permission{Role: "reader", Type: "anyone"}
	if _, err := s.client.Permissions.Create(created.Id, perm).Context(ctx).Do(); err != nil {
		return "", fmt.Errorf("failed to make logo public: %w", err)
	}

	url := fmt.Sprintf("https://drive.google.com/uc?export=view&id=%s", created.Id)
	log.Printf("✅ UploadLogo: Uploaded %s -> %s", filename, url)
	return url, nil
}
