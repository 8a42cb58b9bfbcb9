package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"formulario-clientes/db"
	"formulario-clientes/models"
)

// ClientRepository handles database operations for client records
type ClientRepository struct{}

// NewClientRepository creates a new ClientRepository
func NewClientRepository() *ClientRepository {
	return &ClientRepository{}
}

// Ensure ClientRepository implements ClientRepositoryInterface
var _ ClientRepositoryInterface = (*ClientRepository)(nil)

const clientColumns = `id, channel, name, phone, email, extracted_text, additional_notes, logo_url, COALESCE(priority, 0), submission_date`

func scanClient(row interface{ Scan(dest ...any) error }) (*models.Client, error) {
	var c models.Client
	err := row.Scan(
		&c.ID,
		&c.Channel,
		&c.Name,
		&c.Phone,
		&c.Email,
		&c.ExtractedText,
		&c.AdditionalNotes,
		&c.LogoURL,
		&c.Priority,
		&c.SubmissionDate,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Insert stores a new client record and fills in its ID and submission date
func (r *ClientRepository) Insert(ctx context.Context, client *models.Client) error {
	if !models.ValidChannel(client.Channel) {
		return fmt.Errorf("unknown channel: %q", client.Channel)
	}

	query := `
		INSERT INTO clients (channel, name, phone, email, extracted_text, additional_notes, logo_url, priority)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, submission_date
	`
	err := db.DB.QueryRowContext(ctx, query,
		client.Channel,
		client.Name,
		client.Phone,
		client.Email,
		client.ExtractedText,
		client.AdditionalNotes,
		client.LogoURL,
		client.Priority,
	).Scan(&client.ID, &client.SubmissionDate)
	if err != nil {
		log.Printf("❌ Insert: Error inserting client (channel=%s): %v", client.Channel, err)
		return fmt.Errorf("failed to insert client: %w", err)
	}

	log.Printf("✅ Insert: Stored client %d on channel %s", client.ID, client.Channel)
	return nil
}

// ListByChannel retrieves all records of one intake channel, highest
// priority first, newest first within the same priority
func (r *ClientRepository) ListByChannel(ctx context.Context, channel string) ([]models.Client, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM clients
		WHERE channel = $1
		ORDER BY COALESCE(priority, 0) DESC, submission_date DESC
	`, clientColumns)

	rows, err := db.DB.QueryContext(ctx, query, channel)
	if err != nil {
		log.Printf("❌ ListByChannel: Error querying clients (channel=%s): %v", channel, err)
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	var clients []models.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			log.Printf("❌ ListByChannel: Error scanning client: %v", err)
			continue
		}
		clients = append(clients, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clients: %w", err)
	}

	log.Printf("✓ ListByChannel: Fetched %d clients (channel=%s)", len(clients), channel)
	return clients, nil
}

// GetByID retrieves one client record
func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*models.Client, error) {
	query := fmt.Sprintf(`SELECT %s FROM clients WHERE id = $1`, clientColumns)

	c, err := scanClient(db.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("client %d does not exist", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return c, nil
}

// Update applies the non-nil fields of req to a client record and returns
// the updated record
func (r *ClientRepository) Update(ctx context.Context, id int64, req *models.ClientUpdateRequest) (*models.Client, error) {
	query := fmt.Sprintf(`
		UPDATE clients
		SET name = COALESCE($2, name),
		    phone = COALESCE($3, phone),
		    email = COALESCE($4, email),
		    extracted_text = COALESCE($5, extracted_text),
		    additional_notes = COALESCE($6, additional_notes)
		WHERE id = $1
		RETURNING %s
	`, clientColumns)

	c, err := scanClient(db.DB.QueryRowContext(ctx, query, id,
		req.Name, req.Phone, req.Email, req.ExtractedText, req.AdditionalNotes))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("client %d does not exist", id)
	}
	if err != nil {
		log.Printf("❌ Update: Error updating client %d: %v", id, err)
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	log.Printf("✅ Update: Updated client %d", id)
	return c, nil
}

// Delete removes a client record
func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	result, err := db.DB.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("client %d does not exist", id)
	}

	log.Printf("✅ Delete: Removed client %d", id)
	return nil
}

// SetPriority updates the ordering weight of one record
func (r *ClientRepository) SetPriority(ctx context.Context, id int64, priority int) error {
	result, err := db.DB.ExecContext(ctx, `UPDATE clients SET priority = $1 WHERE id = $2`, priority, id)
	if err != nil {
		return fmt.Errorf("failed to update priority: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check priority update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("client %d does not exist", id)
	}

	log.Printf("✅ SetPriority: Client %d priority set to %d", id, priority)
	return nil
}

// BackfillPriority sets priority = 0 on records that predate the reorder
// feature and returns how many rows were touched
func (r *ClientRepository) BackfillPriority(ctx context.Context) (int64, error) {
	result, err := db.DB.ExecContext(ctx, `UPDATE clients SET priority = 0 WHERE priority IS NULL`)
	if err != nil {
		return 0, fmt.Errorf("failed to backfill priority: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check backfill result: %w", err)
	}
	return affected, nil
}
