package service

import (
	"context"

	"formulario-clientes/models"
)

// EmailServiceInterface defines the contract for outbound email delivery
type EmailServiceInterface interface {
	// SendThankYou renders the thank-you template for the given client,
	// embedding the pre-rendered products fragment, and delivers it to the
	// client's email address.
	SendThankYou(ctx context.Context, client *models.Client, productsHTML string) error
}
