package service

import (
	"context"

	"formulario-clientes/models"
)

// StorefrontServiceInterface defines the contract for fetching the live
// product catalog from the external storefront
type StorefrontServiceInterface interface {
	// FetchCatalog returns the full catalog snapshot, aggregating every
	// page of the storefront products endpoint.
	FetchCatalog(ctx context.Context) ([]models.CatalogItem, error)
}
