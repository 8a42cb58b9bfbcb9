package repository

import (
	"context"

	"formulario-clientes/models"
)

// ClientRepositoryInterface defines the contract for client record storage
type ClientRepositoryInterface interface {
	Insert(ctx context.Context, client *models.Client) error
	ListByChannel(ctx context.Context, channel string) ([]models.Client, error)
	GetByID(ctx context.Context, id int64) (*models.Client, error)
	Update(ctx context.Context, id int64, req *models.ClientUpdateRequest) (*models.Client, error)
	Delete(ctx context.Context, id int64) error
	SetPriority(ctx context.Context, id int64, priority int) error
	BackfillPriority(ctx context.Context) (int64, error)
}
