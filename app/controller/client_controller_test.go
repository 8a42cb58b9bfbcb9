package controller_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formulario-clientes/app/controller"
	"formulario-clientes/models"
	"formulario-clientes/repository"
)

// mockClientRepo is an in-memory ClientRepositoryInterface for handler tests
type mockClientRepo struct {
	clients  map[int64]*models.Client
	nextID   int64
	inserted []*models.Client
}

func newMockClientRepo() *mockClientRepo {
	return &mockClientRepo{clients: make(map[int64]*models.Client), nextID: 1}
}

var _ repository.ClientRepositoryInterface = (*mockClientRepo)(nil)

func (m *mockClientRepo) Insert(ctx context.Context, client *models.Client) error {
	client.ID = m.nextID
	m.nextID++
	m.clients[client.ID] = client
	m.inserted = append(m.inserted, client)
	return nil
}

func (m *mockClientRepo) ListByChannel(ctx context.Context, channel string) ([]models.Client, error) {
	var out []models.Client
	for _, c := range m.clients {
		if c.Channel == channel {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockClientRepo) GetByID(ctx context.Context, id int64) (*models.Client, error) {
	c, ok := m.clients[id]
	if !ok {
		return nil, fmt.Errorf("client %d does not exist", id)
	}
	return c, nil
}

func (m *mockClientRepo) Update(ctx context.Context, id int64, req *models.ClientUpdateRequest) (*models.Client, error) {
	c, ok := m.clients[id]
	if !ok {
		return nil, fmt.Errorf("client %d does not exist", id)
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.AdditionalNotes != nil {
		c.AdditionalNotes = *req.AdditionalNotes
	}
	return c, nil
}

func (m *mockClientRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.clients[id]; !ok {
		return fmt.Errorf("client %d does not exist", id)
	}
	delete(m.clients, id)
	return nil
}

func (m *mockClientRepo) SetPriority(ctx context.Context, id int64, priority int) error {
	c, ok := m.clients[id]
	if !ok {
		return fmt.Errorf("client %d does not exist", id)
	}
	c.Priority = priority
	return nil
}

func (m *mockClientRepo) BackfillPriority(ctx context.Context) (int64, error) {
	return 0, nil
}

func TestListClientsRejectsUnknownChannel(t *testing.T) {
	c := controller.NewClientController(newMockClientRepo())

	req := httptest.NewRequest(http.MethodGet, "/admin/clients?channel=bogus", nil)
	rec := httptest.NewRecorder()
	c.ListClients(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListClientsDefaultsToCardChannel(t *testing.T) {
	repo := newMockClientRepo()
	repo.Insert(context.Background(), &models.Client{Channel: models.ChannelCard, Name: "Card Client"})
	repo.Insert(context.Background(), &models.Client{Channel: models.ChannelManual, Name: "Manual Client"})
	c := controller.NewClientController(repo)

	req := httptest.NewRequest(http.MethodGet, "/admin/clients", nil)
	rec := httptest.NewRecorder()
	c.ListClients(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"channel":"card"`)
	assert.Contains(t, body, "Card Client")
	assert.NotContains(t, body, "Manual Client")
}

func TestUpdateClientNotFound(t *testing.T) {
	c := controller.NewClientController(newMockClientRepo())

	req := httptest.NewRequest(http.MethodPut, "/admin/clients/99", strings.NewReader(`{"name":"New"}`))
	rec := httptest.NewRecorder()
	c.UpdateClient(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateClientAppliesPartialUpdate(t *testing.T) {
	repo := newMockClientRepo()
	repo.Insert(context.Background(), &models.Client{Channel: models.ChannelCard, Name: "Old", Phone: "123"})
	c := controller.NewClientController(repo)

	req := httptest.NewRequest(http.MethodPut, "/admin/clients/1", strings.NewReader(`{"name":"New"}`))
	rec := httptest.NewRecorder()
	c.UpdateClient(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "New", repo.clients[1].Name)
	// Fields absent from the request stay untouched.
	assert.Equal(t, "123", repo.clients[1].Phone)
}

func TestDeleteClient(t *testing.T) {
	repo := newMockClientRepo()
	repo.Insert(context.Background(), &models.Client{Channel: models.ChannelCard})
	c := controller.NewClientController(repo)

	req := httptest.NewRequest(http.MethodDelete, "/admin/clients/1", nil)
	rec := httptest.NewRecorder()
	c.DeleteClient(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, repo.clients)
}

func TestUpdatePriority(t *testing.T) {
	repo := newMockClientRepo()
	repo.Insert(context.Background(), &models.Client{Channel: models.ChannelJulian})
	c := controller.NewClientController(repo)

	req := httptest.NewRequest(http.MethodPatch, "/admin/clients/1/priority", strings.NewReader(`{"priority":5}`))
	rec := httptest.NewRecorder()
	c.UpdatePriority(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, repo.clients[1].Priority)
}

func TestClientIDValidation(t *testing.T) {
	c := controller.NewClientController(newMockClientRepo())

	req := httptest.NewRequest(http.MethodDelete, "/admin/clients/not-a-number", nil)
	rec := httptest.NewRecorder()
	c.DeleteClient(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
