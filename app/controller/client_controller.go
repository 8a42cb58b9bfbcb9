package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"formulario-clientes/models"
	"formulario-clientes/repository"
)

// ClientController handles the admin API for stored client records
type ClientController struct {
	repository repository.ClientRepositoryInterface
}

// NewClientController creates a new ClientController
func NewClientController(repo repository.ClientRepositoryInterface) *ClientController {
	return &ClientController{
		repository: repo,
	}
}

// ListClients handles GET /admin/clients?channel=card|manual|julian
func (c *ClientController) ListClients(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListClients: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	channel := r.URL.Query().Get("channel")
	if channel == "" {
		channel = models.ChannelCard
	}
	if !models.ValidChannel(channel) {
		http.Error(w, fmt.Sprintf("Unknown channel: %s", channel), http.StatusBadRequest)
		return
	}

	clients, err := c.repository.ListByChannel(r.Context(), channel)
	if err != nil {
		log.Printf("❌ ListClients: Error fetching clients: %v", err)
		http.Error(w, "There was an error fetching the data", http.StatusInternalServerError)
		return
	}
	if clients == nil {
		clients = []models.Client{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	resp := models.ListClientsResponse{Channel: channel, Clients: clients}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("❌ ListClients: Error encoding response: %v", err)
	}
}

// UpdateClient handles PUT /admin/clients/{id}
func (c *ClientController) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, ok := c.clientID(w, r, "")
	if !ok {
		return
	}

	var req models.ClientUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateClient: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	updated, err := c.repository.Update(r.Context(), id, &req)
	if err != nil {
		log.Printf("❌ UpdateClient: Error updating client %d: %v", id, err)
		if strings.Contains(err.Error(), "does not exist") {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to update client", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(updated); err != nil {
		log.Printf("❌ UpdateClient: Error encoding response: %v", err)
	}
}

// DeleteClient handles DELETE /admin/clients/{id}
func (c *ClientController) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, ok := c.clientID(w, r, "")
	if !ok {
		return
	}

	if err := c.repository.Delete(r.Context(), id); err != nil {
		log.Printf("❌ DeleteClient: Error deleting client %d: %v", id, err)
		if strings.Contains(err.Error(), "does not exist") {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete client", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message":"Client deleted"}`))
}

// UpdatePriority handles PATCH /admin/clients/{id}/priority
func (c *ClientController) UpdatePriority(w http.ResponseWriter, r *http.Request) {
	id, ok := c.clientID(w, r, "/priority")
	if !ok {
		return
	}

	var req models.PriorityUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdatePriority: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := c.repository.SetPriority(r.Context(), id, req.Priority); err != nil {
		log.Printf("❌ UpdatePriority: Error updating client %d: %v", id, err)
		if strings.Contains(err.Error(), "does not exist") {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to update priority", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message":"Priority updated"}`))
}

// clientID extracts the record id from /admin/clients/{id}{suffix}
func (c *ClientController) clientID(w http.ResponseWriter, r *http.Request, suffix string) (int64, bool) {
	path := strings.TrimPrefix(r.URL.Path, "/admin/clients/")
	if suffix != "" {
		path = strings.TrimSuffix(path, suffix)
	}
	path = strings.Trim(path, "/")

	id, err := strconv.ParseInt(path, 10, 64)
	if err != nil || id <= 0 {
		log.Printf("❌ clientID: Invalid client id in path %s", r.URL.Path)
		http.Error(w, "Invalid client id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
