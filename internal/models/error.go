package models

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Message is the body of informational responses
type Message struct {
	Message string `json:"message"`
}

// Error code constants
const (
	// General errors
	ErrNotFound         = "NOT_FOUND"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"
	ErrUnavailable      = "SERVICE_UNAVAILABLE"

	// Resource-specific errors
	ErrPlatoNotFound   = "PLATO_NOT_FOUND"
	ErrClienteNotFound = "CLIENTE_NOT_FOUND"
	ErrPedidoNotFound  = "PEDIDO_NOT_FOUND"
	ErrIDMismatch      = "ID_MISMATCH"
	ErrEmailTaken      = "EMAIL_ALREADY_REGISTERED"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}
