package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"formulario-clientes/models"
	"formulario-clientes/repository"
	"formulario-clientes/service"
	"formulario-clientes/utils"
)

const (
	// maxFileSize limits each uploaded file to 5 MB
	maxFileSize = 5 << 20
	// maxFormSize bounds the whole multipart body (card photo + logo + fields)
	maxFormSize = 12 << 20
)

// IntakeController handles public form submissions
type IntakeController struct {
	repository repository.ClientRepositoryInterface
	ocr        service.OCRServiceInterface
	storage    service.StorageServiceInterface
	products   service.ProductsServiceInterface
	email      service.EmailServiceInterface
}

// NewIntakeController creates a new IntakeController
func NewIntakeController(
	repo repository.ClientRepositoryInterface,
	ocr service.OCRServiceInterface,
	storage service.StorageServiceInterface,
	products service.ProductsServiceInterface,
	email service.EmailServiceInterface,
) *IntakeController {
	return &IntakeController{
		repository: repo,
		ocr:        ocr,
		storage:    storage,
		products:   products,
		email:      email,
	}
}

// UploadCard handles POST /upload (business-card photo intake)
func (c *IntakeController) UploadCard(w http.ResponseWriter, r *http.Request) {
	c.handlePhotoUpload(w, r, models.ChannelCard)
}

// UploadJulian handles POST /upload/julian (the named variant channel;
// identical flow, different record tag)
func (c *IntakeController) UploadJulian(w http.ResponseWriter, r *http.Request) {
	c.handlePhotoUpload(w, r, models.ChannelJulian)
}

// handlePhotoUpload processes a card-photo submission: OCR the card image,
// store the optional logo, save the record and send the thank-you email.
func (c *IntakeController) handlePhotoUpload(w http.ResponseWriter, r *http.Request, channel string) {
	log.Printf("📥 Upload(%s): Received %s request to %s", channel, r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)
	if err := r.ParseMultipartForm(maxFormSize); err != nil {
		log.Printf("❌ Upload(%s): Failed to parse multipart form: %v", channel, err)
		http.Error(w, "Invalid or oversized form data", http.StatusBadRequest)
		return
	}

	// The card image is mandatory on photo channels.
	imageData, imageExt, err := readImageFile(r, "image")
	if err != nil {
		log.Printf("❌ Upload(%s): %v", channel, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if imageData == nil {
		http.Error(w, "No image uploaded for text extraction", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	// OCR works on files, so spill the upload to a temp path first.
	imagePath, err := writeTempUpload(imageData, imageExt)
	if err != nil {
		log.Printf("❌ Upload(%s): Failed to stage image: %v", channel, err)
		http.Error(w, "There was an error processing your request", http.StatusInternalServerError)
		return
	}
	defer os.Remove(imagePath)

	extractedText, err := c.ocr.ExtractText(ctx, imagePath)
	if err != nil {
		log.Printf("❌ Upload(%s): OCR failed: %v", channel, err)
		http.Error(w, "Failed to extract text from the image", http.StatusInternalServerError)
		return
	}
	log.Printf("✓ Upload(%s): Extracted text: %q", channel, extractedText)

	client := &models.Client{
		Channel:         channel,
		Name:            strings.TrimSpace(r.FormValue("name")),
		Phone:           strings.TrimSpace(r.FormValue("phone")),
		Email:           strings.TrimSpace(r.FormValue("email")),
		ExtractedText:   extractedText,
		AdditionalNotes: strings.TrimSpace(r.FormValue("additionalNotes")),
	}

	// Fall back to contact details found on the card itself.
	if client.Email == "" {
		client.Email = utils.SniffEmail(extractedText)
	}
	if client.Phone == "" {
		client.Phone = utils.SniffPhone(extractedText)
	}

	c.finishSubmission(ctx, w, r, client, extractedText)
}

// SubmitManual handles POST /upload/manual (typed contact details, no OCR)
func (c *IntakeController) SubmitManual(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 SubmitManual: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)
	// The manual form may arrive as multipart (with a logo) or urlencoded.
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxFormSize); err != nil {
			log.Printf("❌ SubmitManual: Failed to parse multipart form: %v", err)
			http.Error(w, "Invalid or oversized form data", http.StatusBadRequest)
			return
		}
	} else if err := r.ParseForm(); err != nil {
		log.Printf("❌ SubmitManual: Failed to parse form: %v", err)
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	client := &models.Client{
		Channel:         models.ChannelManual,
		Name:            strings.TrimSpace(r.FormValue("name")),
		Phone:           strings.TrimSpace(r.FormValue("phone")),
		Email:           strings.TrimSpace(r.FormValue("email")),
		AdditionalNotes: strings.TrimSpace(r.FormValue("additionalNotes")),
	}

	if client.Name == "" && client.Phone == "" {
		http.Error(w, "name or phone is required", http.StatusBadRequest)
		return
	}

	c.finishSubmission(r.Context(), w, r, client, "")
}

// finishSubmission runs the channel-agnostic tail of every intake: optional
// logo storage, record insert, thank-you email, JSON response.
func (c *IntakeController) finishSubmission(ctx context.Context, w http.ResponseWriter, r *http.Request, client *models.Client, extractedText string) {
	// Optional logo: optimize, store, remember the public URL.
	if r.MultipartForm != nil {
		logoData, _, err := readImageFile(r, "logo")
		if err != nil {
			log.Printf("❌ Upload(%s): %v", client.Channel, err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if logoData != nil {
			optimized, err := service.OptimizeImage(logoData, "medium")
			if err != nil {
				log.Printf("❌ Upload(%s): Failed to optimize logo: %v", client.Channel, err)
				http.Error(w, "Failed to process the logo image", http.StatusBadRequest)
				return
			}
			filename := fmt.Sprintf("logo_%s.jpg", uuid.NewString())
			logoURL, err := c.storage.UploadLogo(ctx, filename, "image/jpeg", optimized)
			if err != nil {
				log.Printf("❌ Upload(%s): Failed to store logo: %v", client.Channel, err)
				http.Error(w, "There was an error uploading the files", http.StatusInternalServerError)
				return
			}
			client.LogoURL = logoURL
		}
	}

	if err := c.repository.Insert(ctx, client); err != nil {
		log.Printf("❌ Upload(%s): Failed to save record: %v", client.Channel, err)
		http.Error(w, "There was an error processing your request", http.StatusInternalServerError)
		return
	}

	// The thank-you email is best-effort: a delivery problem must never
	// fail a submission that is already stored.
	if client.Email != "" {
		productsHTML := c.products.BuildProductsFragment(ctx)
		if err := c.email.SendThankYou(ctx, client, productsHTML); err != nil {
			log.Printf("⚠️  Upload(%s): Thank-you email not sent to client %d: %v", client.Channel, client.ID, err)
		}
	} else {
		log.Printf("⚠️  Upload(%s): Client %d has no email address, skipping thank-you email", client.Channel, client.ID)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	resp := models.UploadResponse{
		ID:            client.ID,
		Message:       "Form submitted successfully.",
		ExtractedText: extractedText,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("❌ Upload(%s): Error encoding response: %v", client.Channel, err)
	}
}

// readImageFile pulls one optional file field from the multipart form,
// enforcing the JPEG/PNG filter and the per-file size limit. Returns
// (nil, "", nil) when the field is absent.
func readImageFile(r *http.Request, field string) ([]byte, string, error) {
	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s upload: %w", field, err)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return nil, "", fmt.Errorf("only JPEG and PNG images are allowed for %s", field)
	}

	data, err := readLimited(file, maxFileSize)
	if err != nil {
		return nil, "", fmt.Errorf("%s upload exceeds the %d MB limit", field, maxFileSize>>20)
	}
	return data, ext, nil
}

// readLimited reads at most limit bytes and errors if the source has more
func readLimited(file multipart.File, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("file too large")
	}
	return data, nil
}

// writeTempUpload stages uploaded bytes into a temp file for tools that
// only take paths (tesseract)
func writeTempUpload(data []byte, ext string) (string, error) {
	f, err := os.CreateTemp("", "upload_*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	return f.Name(), nil
}
