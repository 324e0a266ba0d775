// Package apierror provides the standard error response envelope for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Erro string `json:"erro"`
}

func New(msg string) *APIError {
	return &APIError{Erro: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Erro   string            `json:"erro"`
	Campos map[string]string `json:"campos"`
}

func NewValidation(campos map[string]string) *ValidationError {
	return &ValidationError{Erro: "Erro de validação", Campos: campos}
}
