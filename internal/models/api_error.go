package models

// APIError is the error body the server sends with non-2xx responses.
type APIError struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
