package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"

	"formulario-clientes/utils"
)

// OCRService extracts text from images by shelling out to the tesseract
// binary. TESSERACT_PATH overrides the binary location; the recognition
// language defaults to English.
type OCRService struct {
	binary   string
	language string
}

// NewOCRService creates a new OCRService
func NewOCRService() *OCRService {
	binary := os.Getenv("TESSERACT_PATH")
	if binary == "" {
		binary = "tesseract"
	}
	language := os.Getenv("TESSERACT_LANG")
	if language == "" {
		language = "eng"
	}
	return &OCRService{binary: binary, language: language}
}

// Ensure OCRService implements OCRServiceInterface
var _ OCRServiceInterface = (*OCRService)(nil)

// ExtractText runs tesseract over the image and returns the cleaned-up text
func (s *OCRService) ExtractText(ctx context.Context, imagePath string) (string, error) {
	cmd := exec.CommandContext(ctx, s.binary, imagePath, "stdout", "-l", s.language)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("tesseract failed: %w (stderr: %s)", err, stderr.String())
	}

	text := utils.CleanExtractedText(stdout.String())
	log.Printf("✓ ExtractText: Recognized %d characters from %s", len(text), imagePath)
	return text, nil
}
