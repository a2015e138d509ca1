package models

// LoginResponse is returned by a successful login. APIKey must be sent back in
// the X-API-Key header of every protected request.
type LoginResponse struct {
	APIKey string `json:"api_key"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// RootResponse is the welcome document served at GET /.
type RootResponse struct {
	Message string `json:"message"`
	Docs    string `json:"docs"`
	Redoc   string `json:"redoc"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
