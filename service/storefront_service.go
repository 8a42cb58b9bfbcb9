package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"formulario-clientes/models"
)

const (
	storefrontPageSize = 100
	// Hard stop for the pagination walk so a misbehaving endpoint that
	// keeps returning full pages cannot loop us forever.
	storefrontMaxPages = 200
)

// StorefrontService fetches products from the external storefront API
type StorefrontService struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewStorefrontService creates a new StorefrontService.
// baseURL is the API root (e.g. "https://store.example.com/api");
// token, when non-empty, is sent as a Bearer credential.
func NewStorefrontService(baseURL, token string) *StorefrontService {
	return &StorefrontService{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Ensure StorefrontService implements StorefrontServiceInterface
var _ StorefrontServiceInterface = (*StorefrontService)(nil)

// FetchCatalog retrieves every page of the products endpoint and returns
// the aggregated, unordered snapshot. Callers own ordering and filtering.
func (s *StorefrontService) FetchCatalog(ctx context.Context) ([]models.CatalogItem, error) {
	if s.baseURL == "" {
		return nil, fmt.Errorf("storefront API URL is not configured")
	}

	var all []models.CatalogItem
	for pageNum := 1; pageNum <= storefrontMaxPages; pageNum++ {
		page, err := s.fetchPage(ctx, pageNum)
		if err != nil {
			return nil, err
		}

		all = append(all, page.Items...)

		// Stop on the last page: either the endpoint told us the page
		// count, or it returned fewer items than a full page.
		if len(page.Items) == 0 || len(page.Items) < storefrontPageSize {
			break
		}
		if page.TotalPages > 0 && pageNum >= page.TotalPages {
			break
		}
	}

	log.Printf("✓ FetchCatalog: Retrieved %d products from storefront", len(all))
	return all, nil
}

func (s *StorefrontService) fetchPage(ctx context.Context, pageNum int) (*models.CatalogPage, error) {
	url := fmt.Sprintf("%s/products?page=%d&limit=%d", s.baseURL, pageNum, storefrontPageSize)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog page %d: %w", pageNum, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("storefront returned status %d for page %d", resp.StatusCode, pageNum)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog page %d: %w", pageNum, err)
	}

	page, err := models.ParseCatalogPage(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog page %d: %w", pageNum, err)
	}
	return page, nil
}
