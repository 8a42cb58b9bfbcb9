package models

import "time"

// Intake channels. Each submission carries one of these tags; all channels
// share the same record shape and the same storage table.
const (
	ChannelCard   = "card"
	ChannelManual = "manual"
	ChannelJulian = "julian"
)

// ValidChannel reports whether ch is a known intake channel
func ValidChannel(ch string) bool {
	return ch == ChannelCard || ch == ChannelManual || ch == ChannelJulian
}

// Client represents one stored intake submission
type Client struct {
	ID              int64     `json:"id"`
	Channel         string    `json:"channel"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	ExtractedText   string    `json:"extractedText"`
	AdditionalNotes string    `json:"additionalNotes"`
	LogoURL         string    `json:"logoURL"`
	Priority        int       `json:"priority"`
	SubmissionDate  time.Time `json:"submissionDate"`
}

// ClientUpdateRequest represents the request body for updating a client record.
// Nil fields are left unchanged.
type ClientUpdateRequest struct {
	Name            *string `json:"name"`
	Phone           *string `json:"phone"`
	Email           *string `json:"email"`
	ExtractedText   *string `json:"extractedText"`
	AdditionalNotes *string `json:"additionalNotes"`
}

// PriorityUpdateRequest represents the request body for reordering a record
type PriorityUpdateRequest struct {
	Priority int `json:"priority"`
}

// UploadResponse is returned after a successful form submission
type UploadResponse struct {
	ID            int64  `json:"id"`
	Message       string `json:"message"`
	ExtractedText string `json:"extractedText,omitempty"`
}

// ListClientsResponse wraps the admin list endpoint payload
type ListClientsResponse struct {
	Channel string   `json:"channel"`
	Clients []Client `json:"clients"`
}
